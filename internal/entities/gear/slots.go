package gear

import "strings"

// SlotID represents one of the ten fixed equipment positions
type SlotID string

// Define all equipment slots
const (
	SlotHead     SlotID = "head"
	SlotNeck     SlotID = "neck"
	SlotChest    SlotID = "chest"
	SlotHands    SlotID = "hands"
	SlotLegs     SlotID = "legs"
	SlotFeet     SlotID = "feet"
	SlotRingA    SlotID = "ring_a"
	SlotRingB    SlotID = "ring_b"
	SlotMainHand SlotID = "main_hand"
	SlotOffHand  SlotID = "off_hand"
)

// SlotRing is the ambiguous slot hint returned by the extraction collaborator
// when it detects a ring but cannot tell which finger it belongs on. It is
// resolved to ring_a or ring_b before scoring and is never a valid SlotID.
const SlotRing = "ring"

// slotAliases maps historical and in-game slot names to canonical slot IDs.
// The rulepack and the extraction collaborator both use the in-game names
// (Helm, Amulet, ...), older build exports used ring1/ring2.
var slotAliases = map[string]SlotID{
	"helm":      SlotHead,
	"helmet":    SlotHead,
	"amulet":    SlotNeck,
	"necklace":  SlotNeck,
	"gloves":    SlotHands,
	"pants":     SlotLegs,
	"boots":     SlotFeet,
	"ring1":     SlotRingA,
	"ring-a":    SlotRingA,
	"ring2":     SlotRingB,
	"ring-b":    SlotRingB,
	"weapon":    SlotMainHand,
	"mainhand":  SlotMainHand,
	"main-hand": SlotMainHand,
	"offhand":   SlotOffHand,
	"off-hand":  SlotOffHand,
}

// String returns the string representation of the slot
func (s SlotID) String() string {
	return string(s)
}

// IsValid checks if the slot is one of the ten fixed slots
func (s SlotID) IsValid() bool {
	switch s {
	case SlotHead, SlotNeck, SlotChest, SlotHands, SlotLegs,
		SlotFeet, SlotRingA, SlotRingB, SlotMainHand, SlotOffHand:
		return true
	default:
		return false
	}
}

// IsRing reports whether the slot is one of the two ring slots
func (s SlotID) IsRing() bool {
	return s == SlotRingA || s == SlotRingB
}

// AllSlots returns a slice of all ten equipment slots in display order
func AllSlots() []SlotID {
	return []SlotID{
		SlotHead,
		SlotNeck,
		SlotChest,
		SlotHands,
		SlotLegs,
		SlotFeet,
		SlotRingA,
		SlotRingB,
		SlotMainHand,
		SlotOffHand,
	}
}

// ParseSlot normalizes a slot identifier to a canonical SlotID. It tolerates
// case variants and historical aliases (Helm, Amulet, Ring1, Weapon, ...).
// Returns the slot and true if recognized, empty slot and false otherwise.
func ParseSlot(s string) (SlotID, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "_")

	slot := SlotID(normalized)
	if slot.IsValid() {
		return slot, true
	}

	if alias, ok := slotAliases[normalized]; ok {
		return alias, true
	}

	return "", false
}

// IsRingHint reports whether a raw slot string is the ambiguous "ring" hint
// that requires ring-slot assignment before scoring.
func IsRingHint(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), SlotRing)
}
