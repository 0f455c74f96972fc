package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydralabs/gear-api/internal/entities/gear"
	"github.com/hydralabs/gear-api/internal/errors"
)

const fullReport = `{
	"name": "Storm Shroud",
	"slot": "Helm",
	"rarity": "Legendary",
	"type": "Ancestral Legendary Helm",
	"item_power": 925,
	"armor": 450,
	"aspect": {
		"name": "Snowveiled Aspect",
		"source": "imprinted",
		"text": "You gain 15% increased Movement Speed for 3 seconds after using Evade."
	},
	"affixes": [
		{"stat": "Cooldown Reduction", "val": 12.5, "unit": "%", "greater": false, "tempered": false},
		{"stat": "Hydra Ranks", "val": "+3", "unit": null, "greater": true, "tempered": false},
		{"stat": "Maximum Life", "val": 450, "unit": null, "greater": false, "tempered": true}
	],
	"masterwork": {"rank": 2, "max": 5},
	"tempers": {"used": 1, "max": 2},
	"sockets": 1,
	"gems": ["Royal Diamond"],
	"confidence": 0.95
}`

func TestParseReportFull(t *testing.T) {
	item, detectedSlot, err := parseReport(fullReport)
	require.NoError(t, err)

	assert.Equal(t, "Storm Shroud", item.Name)
	assert.Equal(t, gear.SlotHead, item.Slot, "Helm should normalize to head")
	assert.Equal(t, "Helm", detectedSlot)
	assert.Equal(t, "Legendary", item.Rarity)
	require.NotNil(t, item.ItemLevel)
	assert.Equal(t, int32(925), *item.ItemLevel)

	require.Len(t, item.Affixes, 3)
	cdr := item.Affixes[0]
	assert.Equal(t, "Cooldown Reduction", cdr.StatName)
	require.NotNil(t, cdr.Value)
	assert.Equal(t, 12.5, *cdr.Value)
	require.NotNil(t, cdr.Unit)
	assert.Equal(t, gear.UnitPercent, *cdr.Unit)

	hydra := item.Affixes[1]
	assert.True(t, hydra.IsGreaterRoll)
	require.NotNil(t, hydra.Value, "string value +3 should coerce to a number")
	assert.Equal(t, 3.0, *hydra.Value)

	life := item.Affixes[2]
	assert.True(t, life.IsTempered)

	require.NotNil(t, item.Aspect)
	assert.Equal(t, "Snowveiled Aspect", *item.Aspect.Name)
	assert.Equal(t, gear.AspectImprinted, item.Aspect.Origin)

	require.NotNil(t, item.Masterwork)
	assert.Equal(t, int32(2), item.Masterwork.Rank)
	require.NotNil(t, item.Tempers)
	assert.Equal(t, int32(1), item.Tempers.Used)
	assert.Equal(t, []string{"Royal Diamond"}, item.Gems)
}

func TestParseReportRingHint(t *testing.T) {
	item, detectedSlot, err := parseReport(`{"name": "Band of Snakes", "slot": "ring", "affixes": []}`)
	require.NoError(t, err)

	assert.Equal(t, "ring", detectedSlot)
	assert.Equal(t, gear.SlotID(""), item.Slot, "ambiguous ring hint must not become a slot")
}

func TestParseReportLegacyStringAffixes(t *testing.T) {
	item, _, err := parseReport(`{
		"name": "Old Export Gloves",
		"slot": "Gloves",
		"affixes": ["Attack Speed", {"stat": "Critical Strike Chance", "val": 4.2, "unit": "%"}]
	}`)
	require.NoError(t, err)

	require.Len(t, item.Affixes, 2)
	assert.Equal(t, "Attack Speed", item.Affixes[0].StatName)
	assert.Nil(t, item.Affixes[0].Value)
	assert.Equal(t, "Critical Strike Chance", item.Affixes[1].StatName)
}

func TestParseReportSparsePayload(t *testing.T) {
	// the backend is best-effort: empty arrays and missing fields are fine
	item, detectedSlot, err := parseReport(`{"name": "Mystery Item", "slot": ""}`)
	require.NoError(t, err)

	assert.Equal(t, "Mystery Item", item.Name)
	assert.Equal(t, "", detectedSlot)
	assert.Empty(t, item.Affixes)
	assert.Nil(t, item.Aspect)
}

func TestParseReportDropsUnreadableAffixes(t *testing.T) {
	item, _, err := parseReport(`{
		"name": "Smudged Chest",
		"slot": "Chest",
		"affixes": [
			{"stat": "", "val": 10},
			{"stat": "Maximum Life", "val": "unreadable"}
		]
	}`)
	require.NoError(t, err)

	require.Len(t, item.Affixes, 1)
	assert.Equal(t, "Maximum Life", item.Affixes[0].StatName)
	assert.Nil(t, item.Affixes[0].Value, "unreadable value should degrade to unknown")
}

func TestParseReportMalformedPayload(t *testing.T) {
	_, _, err := parseReport(`{"name": "Broken`)
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}

func TestParseReportAspectOrigins(t *testing.T) {
	tests := []struct {
		source   string
		expected gear.AspectOrigin
	}{
		{"imprinted", gear.AspectImprinted},
		{"innate_unique", gear.AspectInnateUnique},
		{"unique", gear.AspectInnateUnique},
		{"", gear.AspectUnknown},
		{"garbled", gear.AspectUnknown},
	}

	for _, tc := range tests {
		item, _, err := parseReport(`{
			"name": "Origin Probe",
			"slot": "Chest",
			"aspect": {"name": "Some Aspect", "source": "` + tc.source + `"}
		}`)
		require.NoError(t, err)
		require.NotNil(t, item.Aspect)
		assert.Equal(t, tc.expected, item.Aspect.Origin, "source %q", tc.source)
	}
}
