// Package gear implements the parsed-item entities
package gear

// AffixUnit describes how an affix value is denominated
type AffixUnit string

// Affix units
const (
	UnitPercent AffixUnit = "percent"
	UnitFlat    AffixUnit = "flat"
)

// Affix is a single rolled stat line on an item
// NOTE: This is a data-only struct. Matching against rulepack affixes
// is done by the engine, not here.
type Affix struct {
	StatName      string     `json:"stat_name"`
	Value         *float64   `json:"value"`
	Unit          *AffixUnit `json:"unit,omitempty"`
	IsGreaterRoll bool       `json:"is_greater_roll"`
	IsTempered    bool       `json:"is_tempered"`
}

// AspectOrigin describes how an aspect ended up on an item
type AspectOrigin string

// Aspect origins
const (
	AspectImprinted    AspectOrigin = "imprinted"
	AspectInnateUnique AspectOrigin = "innate_unique"
	AspectUnknown      AspectOrigin = "unknown"
)

// Aspect is a named special effect attached to an item.
// At most one aspect is active per item.
type Aspect struct {
	Name        *string      `json:"name"`
	Origin      AspectOrigin `json:"origin"`
	Description string       `json:"description"`
}

// MasterworkInfo tracks masterworking progress. Informational only,
// never a scoring input.
type MasterworkInfo struct {
	Rank int32 `json:"rank"`
	Max  int32 `json:"max"`
}

// TemperInfo tracks tempering slots used. Informational only.
type TemperInfo struct {
	Used int32 `json:"used"`
	Max  int32 `json:"max"`
}

// Item is the structured record for one piece of equipment as extracted
// from a screenshot or entered manually. Score and Tier are absent until
// the engine has evaluated the item; once Score is set, Tier must agree
// with the classifier's thresholds.
type Item struct {
	ID         string   `json:"id,omitempty"`
	Name       string   `json:"name"`
	Slot       SlotID   `json:"slot"`
	Rarity     string   `json:"rarity,omitempty"`
	Type       string   `json:"type,omitempty"`
	Affixes    []Affix  `json:"affixes"`
	Aspect     *Aspect  `json:"aspect,omitempty"`
	ItemLevel  *int32   `json:"item_level,omitempty"`
	Armor      *int32   `json:"armor,omitempty"`
	Score      *float64 `json:"score,omitempty"`
	Tier       *Tier    `json:"tier,omitempty"`
	EquippedAt int64    `json:"equipped_at,omitempty"`

	// Extraction metadata, carried through for display
	Masterwork *MasterworkInfo `json:"masterwork,omitempty"`
	Tempers    *TemperInfo     `json:"tempers,omitempty"`
	Sockets    int32           `json:"sockets,omitempty"`
	Gems       []string        `json:"gems,omitempty"`
	Confidence *float64        `json:"confidence,omitempty"`
}

// HasAspect reports whether the item carries a named aspect
func (i *Item) HasAspect() bool {
	return i.Aspect != nil && i.Aspect.Name != nil && *i.Aspect.Name != ""
}

// AspectName returns the aspect name or empty string
func (i *Item) AspectName() string {
	if !i.HasAspect() {
		return ""
	}
	return *i.Aspect.Name
}

// ScoreValue returns the computed score or 0 if the item has not been scored.
// Use Score != nil to distinguish "scored zero" from "not scored".
func (i *Item) ScoreValue() float64 {
	if i.Score == nil {
		return 0
	}
	return *i.Score
}

// IsScored reports whether the item has been through the scoring pipeline
func (i *Item) IsScored() bool {
	return i.Score != nil && i.Tier != nil
}
