// Package rulepack implements the build rulepack: per-slot affix and aspect
// rules loaded from external configuration and used for scoring.
package rulepack

import (
	"encoding/json"

	"github.com/hydralabs/gear-api/internal/entities/gear"
	"github.com/hydralabs/gear-api/internal/errors"
)

// SlotRule holds the scoring configuration for one equipment slot.
// The three affix/aspect lists drive scoring; everything else on the
// slot entry is informational.
type SlotRule struct {
	MandatoryAffixes []string `json:"mandatoryAffixes"`
	PreferredAffixes []string `json:"preferredAffixes"`
	PreferredAspects []string `json:"preferredAspects"`
}

// IsEmpty reports whether no rules are configured. An empty rule means the
// slot cannot be scored meaningfully; the engine refuses to invent a number
// for it.
func (r SlotRule) IsEmpty() bool {
	return len(r.MandatoryAffixes) == 0 &&
		len(r.PreferredAffixes) == 0 &&
		len(r.PreferredAspects) == 0
}

// SlotEntry is the full per-slot configuration as it appears in the
// rulepack file: the scoring rules plus descriptive guidance that the
// UI renders but scoring ignores.
type SlotEntry struct {
	SlotRule
	BestInSlot []string `json:"bestInSlot,omitempty"`
	Tempering  []string `json:"tempering,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

// Sources describes where the rulepack content came from
type Sources struct {
	Updated string   `json:"updated,omitempty"`
	Guides  []string `json:"guides,omitempty"`
}

// Pack is one complete parsed rulepack. Immutable after parsing; the store
// replaces the whole pack on reload.
type Pack struct {
	Sources Sources
	Slots   map[gear.SlotID]SlotEntry
}

// rawPack mirrors the on-disk rulepack shape before slot-key normalization
type rawPack struct {
	Sources Sources              `json:"sources"`
	Slots   map[string]SlotEntry `json:"slots"`
}

// Parse decodes a rulepack JSON document. Slot keys arrive in whatever
// capitalization the pack author used (Helm, Ring1, ...) and are normalized
// to canonical slot IDs; unrecognized slot keys are an error so a typo in
// the pack does not silently drop a slot's rules.
func Parse(data []byte) (*Pack, error) {
	var raw rawPack
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse rulepack")
	}

	pack := &Pack{
		Sources: raw.Sources,
		Slots:   make(map[gear.SlotID]SlotEntry, len(raw.Slots)),
	}

	for key, entry := range raw.Slots {
		slot, ok := gear.ParseSlot(key)
		if !ok {
			return nil, errors.InvalidArgumentf("rulepack contains unknown slot %q", key)
		}
		if _, exists := pack.Slots[slot]; exists {
			return nil, errors.InvalidArgumentf("rulepack defines slot %q twice", slot)
		}
		pack.Slots[slot] = entry
	}

	return pack, nil
}
