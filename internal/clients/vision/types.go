package vision

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/hydralabs/gear-api/internal/entities/gear"
	"github.com/hydralabs/gear-api/internal/errors"
)

// gearReport is the wire shape the vision model returns. Every field is
// best-effort: the model only reports what it can actually read from the
// screenshot, so anything here may be null or empty.
type gearReport struct {
	Name       string            `json:"name"`
	Slot       string            `json:"slot"`
	Rarity     string            `json:"rarity"`
	Type       string            `json:"type"`
	ItemPower  *int32            `json:"item_power"`
	Armor      *int32            `json:"armor"`
	Aspect     *aspectReport     `json:"aspect"`
	Affixes    []affixReport     `json:"affixes"`
	Masterwork *masterworkReport `json:"masterwork"`
	Tempers    *tempersReport    `json:"tempers"`
	Sockets    int32             `json:"sockets"`
	Gems       []string          `json:"gems"`
	Confidence *float64          `json:"confidence"`
}

type aspectReport struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Text   string `json:"text"`
}

type masterworkReport struct {
	Rank int32 `json:"rank"`
	Max  int32 `json:"max"`
}

type tempersReport struct {
	Used int32 `json:"used"`
	Max  int32 `json:"max"`
}

// affixReport tolerates both shapes the extractor has historically produced:
// a full {stat, val, unit, greater, tempered} object or a bare stat-name
// string. Both normalize to the same record here, at the boundary, so the
// scoring code only ever sees one shape.
type affixReport struct {
	Stat     string   `json:"stat"`
	Val      flexible `json:"val"`
	Unit     *string  `json:"unit"`
	Greater  bool     `json:"greater"`
	Tempered bool     `json:"tempered"`
}

// UnmarshalJSON accepts either an object or a legacy plain string
func (a *affixReport) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var stat string
		if err := json.Unmarshal(trimmed, &stat); err != nil {
			return err
		}
		*a = affixReport{Stat: stat}
		return nil
	}

	type alias affixReport
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*a = affixReport(decoded)
	return nil
}

// flexible is a numeric value that may arrive as a JSON number, a string
// like "12.5%" or "+3", or null
type flexible struct {
	Value *float64
}

// UnmarshalJSON coerces number/string/null into an optional float
func (f *flexible) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		f.Value = nil
		return nil
	}

	if trimmed[0] == '"' {
		var raw string
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(raw, "+"), "%"))
		if raw == "" {
			f.Value = nil
			return nil
		}
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			// unreadable values degrade to "unknown", not an error
			f.Value = nil
			return nil
		}
		f.Value = &parsed
		return nil
	}

	var parsed float64
	if err := json.Unmarshal(trimmed, &parsed); err != nil {
		return err
	}
	f.Value = &parsed
	return nil
}

// parseReport decodes the model's JSON payload and converts it to an item.
// The raw detected slot is returned separately because it may be the
// ambiguous "ring" hint, which is not a valid SlotID.
func parseReport(content string) (*gear.Item, string, error) {
	var report gearReport
	if err := json.Unmarshal([]byte(content), &report); err != nil {
		return nil, "", errors.WrapWithCode(err, errors.CodeUnavailable,
			"vision backend returned malformed analysis payload")
	}

	item := &gear.Item{
		Name:       strings.TrimSpace(report.Name),
		Rarity:     report.Rarity,
		Type:       report.Type,
		ItemLevel:  report.ItemPower,
		Armor:      report.Armor,
		Sockets:    report.Sockets,
		Gems:       report.Gems,
		Confidence: report.Confidence,
	}

	if slot, ok := gear.ParseSlot(report.Slot); ok {
		item.Slot = slot
	}

	for _, affix := range report.Affixes {
		stat := strings.TrimSpace(affix.Stat)
		if stat == "" {
			continue
		}
		converted := gear.Affix{
			StatName:      stat,
			Value:         affix.Val.Value,
			IsGreaterRoll: affix.Greater,
			IsTempered:    affix.Tempered,
		}
		if unit := parseUnit(affix.Unit, affix.Val.Value); unit != nil {
			converted.Unit = unit
		}
		item.Affixes = append(item.Affixes, converted)
	}

	if report.Aspect != nil && strings.TrimSpace(report.Aspect.Name) != "" {
		name := strings.TrimSpace(report.Aspect.Name)
		item.Aspect = &gear.Aspect{
			Name:        &name,
			Origin:      parseOrigin(report.Aspect.Source),
			Description: report.Aspect.Text,
		}
	}

	if report.Masterwork != nil {
		item.Masterwork = &gear.MasterworkInfo{Rank: report.Masterwork.Rank, Max: report.Masterwork.Max}
	}
	if report.Tempers != nil {
		item.Tempers = &gear.TemperInfo{Used: report.Tempers.Used, Max: report.Tempers.Max}
	}

	return item, strings.TrimSpace(report.Slot), nil
}

func parseUnit(unit *string, value *float64) *gear.AffixUnit {
	if unit == nil {
		if value == nil {
			return nil
		}
		flat := gear.UnitFlat
		return &flat
	}

	switch strings.ToLower(strings.TrimSpace(*unit)) {
	case "%", "percent":
		percent := gear.UnitPercent
		return &percent
	case "", "flat":
		flat := gear.UnitFlat
		return &flat
	default:
		flat := gear.UnitFlat
		return &flat
	}
}

func parseOrigin(source string) gear.AspectOrigin {
	switch strings.ToLower(strings.TrimSpace(source)) {
	case "imprinted":
		return gear.AspectImprinted
	case "innate_unique", "unique":
		return gear.AspectInnateUnique
	default:
		return gear.AspectUnknown
	}
}
