package gear_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hydralabs/gear-api/internal/entities/gear"
)

func TestParseSlot(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected gear.SlotID
		ok       bool
	}{
		{"canonical lowercase", "head", gear.SlotHead, true},
		{"canonical capitalized", "Chest", gear.SlotChest, true},
		{"canonical uppercase", "FEET", gear.SlotFeet, true},
		{"historical helm", "helm", gear.SlotHead, true},
		{"historical helm capitalized", "Helm", gear.SlotHead, true},
		{"historical amulet", "Amulet", gear.SlotNeck, true},
		{"historical gloves", "Gloves", gear.SlotHands, true},
		{"historical pants", "pants", gear.SlotLegs, true},
		{"historical boots", "Boots", gear.SlotFeet, true},
		{"historical ring1", "ring1", gear.SlotRingA, true},
		{"historical ring2", "Ring2", gear.SlotRingB, true},
		{"historical weapon", "Weapon", gear.SlotMainHand, true},
		{"historical offhand", "Offhand", gear.SlotOffHand, true},
		{"hyphenated off-hand", "off-hand", gear.SlotOffHand, true},
		{"spaced main hand", "main hand", gear.SlotMainHand, true},
		{"whitespace padded", "  neck  ", gear.SlotNeck, true},
		{"ambiguous ring hint is not a slot", "ring", "", false},
		{"unknown", "belt", "", false},
		{"empty", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			slot, ok := gear.ParseSlot(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, slot)
		})
	}
}

func TestSlotIDIsValid(t *testing.T) {
	for _, slot := range gear.AllSlots() {
		assert.True(t, slot.IsValid(), "slot %s should be valid", slot)
	}
	assert.False(t, gear.SlotID("ring").IsValid())
	assert.False(t, gear.SlotID("").IsValid())
}

func TestAllSlotsHasTenSlots(t *testing.T) {
	slots := gear.AllSlots()
	assert.Len(t, slots, 10)

	seen := make(map[gear.SlotID]bool)
	for _, slot := range slots {
		assert.False(t, seen[slot], "slot %s appears twice", slot)
		seen[slot] = true
	}
}

func TestIsRing(t *testing.T) {
	assert.True(t, gear.SlotRingA.IsRing())
	assert.True(t, gear.SlotRingB.IsRing())
	assert.False(t, gear.SlotHead.IsRing())
}

func TestIsRingHint(t *testing.T) {
	assert.True(t, gear.IsRingHint("ring"))
	assert.True(t, gear.IsRingHint("Ring"))
	assert.True(t, gear.IsRingHint(" RING "))
	assert.False(t, gear.IsRingHint("ring1"))
	assert.False(t, gear.IsRingHint("head"))
}
