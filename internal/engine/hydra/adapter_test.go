package hydra_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hydralabs/gear-api/internal/engine"
	"github.com/hydralabs/gear-api/internal/engine/hydra"
	"github.com/hydralabs/gear-api/internal/entities/gear"
	"github.com/hydralabs/gear-api/internal/errors"
	"github.com/hydralabs/gear-api/internal/rulepack"
)

func affix(stat string) gear.Affix {
	return gear.Affix{StatName: stat}
}

func affixVal(stat string, val float64, unit gear.AffixUnit) gear.Affix {
	return gear.Affix{StatName: stat, Value: &val, Unit: &unit}
}

func itemLevel(level int32) *int32 {
	return &level
}

func aspect(name string) *gear.Aspect {
	return &gear.Aspect{Name: &name, Origin: gear.AspectImprinted}
}

var headRules = rulepack.SlotRule{
	MandatoryAffixes: []string{"Cooldown Reduction"},
	PreferredAffixes: []string{"Maximum Life"},
}

type ScorerTestSuite struct {
	suite.Suite
	adapter *hydra.Adapter
	ctx     context.Context
}

func (s *ScorerTestSuite) SetupTest() {
	s.adapter = hydra.NewAdapter()
	s.ctx = context.Background()
}

func (s *ScorerTestSuite) score(item *gear.Item, rules rulepack.SlotRule) *engine.ScoreItemOutput {
	out, err := s.adapter.ScoreItem(s.ctx, &engine.ScoreItemInput{Item: item, Rules: rules})
	s.Require().NoError(err)
	return out
}

func (s *ScorerTestSuite) TestMandatoryPreferredBreadthAndItemLevel() {
	// 35 mandatory + 12 preferred + 6 breadth (2 affixes) + 3 item level = 56
	item := &gear.Item{
		Name: "Stormcap",
		Slot: gear.SlotHead,
		Affixes: []gear.Affix{
			affixVal("Cooldown Reduction", 10, gear.UnitPercent),
			affixVal("Maximum Life", 500, gear.UnitFlat),
		},
		ItemLevel: itemLevel(900),
	}

	out := s.score(item, headRules)
	s.InDelta(56.0, out.Score, 0.001)
	s.Equal(gear.TierViable, out.Tier)
	s.Equal([]string{"Cooldown Reduction"}, out.MatchedMandatory)
	s.Equal([]string{"Maximum Life"}, out.MatchedPreferred)
	s.Empty(out.MissingMandatory)
}

func (s *ScorerTestSuite) TestJustUnderViableBoundary() {
	// 35 mandatory + 9 breadth (3 affixes) + 5 item level = 49, just under 50
	item := &gear.Item{
		Name: "Tricorne of Disappointment",
		Slot: gear.SlotHead,
		Affixes: []gear.Affix{
			affix("Cooldown Reduction"),
			affix("Thorns"),
			affix("Armor"),
		},
		ItemLevel: itemLevel(925),
	}

	out := s.score(item, headRules)
	s.InDelta(49.0, out.Score, 0.001)
	s.Equal(gear.TierReplace, out.Tier)
}

func (s *ScorerTestSuite) TestSubstringMatchingBothDirections() {
	// rule "Cooldown Reduction" matches longer extracted stat names
	item := &gear.Item{
		Name:    "Hydra Hood",
		Slot:    gear.SlotHead,
		Affixes: []gear.Affix{affix("Cooldown Reduction (Hydra)")},
	}
	out := s.score(item, headRules)
	s.Equal([]string{"Cooldown Reduction"}, out.MatchedMandatory)

	// and shorter ones: the affix name contained in the rule name
	item.Affixes = []gear.Affix{affix("cooldown")}
	out = s.score(item, headRules)
	s.Equal([]string{"Cooldown Reduction"}, out.MatchedMandatory)
}

func (s *ScorerTestSuite) TestMatchingIsCaseInsensitive() {
	item := &gear.Item{
		Name:    "Shouty Helm",
		Slot:    gear.SlotHead,
		Affixes: []gear.Affix{affix("COOLDOWN REDUCTION")},
	}
	out := s.score(item, headRules)
	s.Equal([]string{"Cooldown Reduction"}, out.MatchedMandatory)
}

func (s *ScorerTestSuite) TestAspectBonuses() {
	rules := rulepack.SlotRule{
		MandatoryAffixes: []string{"Cooldown Reduction"},
		PreferredAspects: []string{"Snowveiled"},
	}

	// matching aspect: 35 + 15 aspect match + 5 aspect presence + 3 breadth = 58
	item := &gear.Item{
		Name:    "Veiled Crown",
		Slot:    gear.SlotHead,
		Affixes: []gear.Affix{affix("Cooldown Reduction")},
		Aspect:  aspect("Snowveiled Aspect"),
	}
	out := s.score(item, rules)
	s.InDelta(58.0, out.Score, 0.001)
	s.Equal([]string{"Snowveiled"}, out.MatchedAspects)

	// non-matching aspect still earns the presence bonus: 35 + 5 + 3 = 43
	item.Aspect = aspect("Aspect of Might")
	out = s.score(item, rules)
	s.InDelta(43.0, out.Score, 0.001)
	s.Empty(out.MatchedAspects)

	// no aspect: 35 + 3 = 38
	item.Aspect = nil
	out = s.score(item, rules)
	s.InDelta(38.0, out.Score, 0.001)
}

func (s *ScorerTestSuite) TestBreadthBonusIsCapped() {
	item := &gear.Item{Name: "Porcupine", Slot: gear.SlotChest}
	for i := 0; i < 8; i++ {
		item.Affixes = append(item.Affixes, affix(fmt.Sprintf("Unrelated Stat %d", i)))
	}

	rules := rulepack.SlotRule{MandatoryAffixes: []string{"Maximum Life"}}
	out := s.score(item, rules)
	// 0 mandatory + capped breadth 15
	s.InDelta(15.0, out.Score, 0.001)
}

func (s *ScorerTestSuite) TestItemLevelBonusBracketsAreExclusive() {
	rules := rulepack.SlotRule{MandatoryAffixes: []string{"Maximum Life"}}
	base := func(level *int32) float64 {
		item := &gear.Item{
			Name:      "Level Probe",
			Slot:      gear.SlotChest,
			Affixes:   []gear.Affix{affix("Maximum Life")},
			ItemLevel: level,
		}
		return s.score(item, rules).Score
	}

	s.InDelta(38.0, base(nil), 0.001)             // 35 + 3 breadth
	s.InDelta(38.0, base(itemLevel(800)), 0.001)  // below all brackets
	s.InDelta(39.0, base(itemLevel(850)), 0.001)  // +1
	s.InDelta(39.0, base(itemLevel(899)), 0.001)  // still +1
	s.InDelta(41.0, base(itemLevel(900)), 0.001)  // +3, not +3+1
	s.InDelta(43.0, base(itemLevel(925)), 0.001)  // +5, not +5+3+1
	s.InDelta(43.0, base(itemLevel(1000)), 0.001) // still +5
}

func (s *ScorerTestSuite) TestScoreIsCappedAt100() {
	// 5 matched mandatory affixes = 175 raw, must clamp to 100
	rules := rulepack.SlotRule{
		MandatoryAffixes: []string{"Stat A", "Stat B", "Stat C", "Stat D", "Stat E"},
	}
	item := &gear.Item{
		Name: "Everything Amulet",
		Slot: gear.SlotNeck,
		Affixes: []gear.Affix{
			affix("Stat A"), affix("Stat B"), affix("Stat C"),
			affix("Stat D"), affix("Stat E"),
		},
		ItemLevel: itemLevel(925),
	}

	out := s.score(item, rules)
	s.InDelta(100.0, out.Score, 0.001)
	s.Equal(gear.TierBestInSlot, out.Tier)
}

func (s *ScorerTestSuite) TestScoringIsDeterministic() {
	item := &gear.Item{
		Name: "Repeatable Helm",
		Slot: gear.SlotHead,
		Affixes: []gear.Affix{
			affix("Cooldown Reduction"),
			affix("Maximum Life"),
		},
		ItemLevel: itemLevel(910),
	}

	first := s.score(item, headRules)
	for i := 0; i < 10; i++ {
		again := s.score(item, headRules)
		s.Equal(first.Score, again.Score)
		s.Equal(first.Tier, again.Tier)
	}
}

func (s *ScorerTestSuite) TestAddingMatchingAffixNeverDecreasesScore() {
	rules := rulepack.SlotRule{
		MandatoryAffixes: []string{"Stat A", "Stat B", "Stat C"},
	}

	item := &gear.Item{Name: "Growing Ring", Slot: gear.SlotRingA}
	prev := 0.0
	for _, stat := range []string{"Stat A", "Stat B", "Stat C"} {
		item.Affixes = append(item.Affixes, affix(stat))
		out := s.score(item, rules)
		s.GreaterOrEqual(out.Score, prev)
		prev = out.Score
	}
}

func (s *ScorerTestSuite) TestEmptyRulesYieldsUnscoredSignal() {
	item := &gear.Item{
		Name:    "Mystery Boots",
		Slot:    gear.SlotFeet,
		Affixes: []gear.Affix{affix("Movement Speed")},
	}

	out, err := s.adapter.ScoreItem(s.ctx, &engine.ScoreItemInput{
		Item:  item,
		Rules: rulepack.SlotRule{},
	})
	s.Require().Error(err)
	s.Nil(out)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal("feet", errors.GetMeta(err)["slot"])
}

func (s *ScorerTestSuite) TestMalformedItemsAreRejected() {
	_, err := s.adapter.ScoreItem(s.ctx, &engine.ScoreItemInput{
		Item:  &gear.Item{Name: "", Slot: gear.SlotHead},
		Rules: headRules,
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.adapter.ScoreItem(s.ctx, &engine.ScoreItemInput{
		Item:  &gear.Item{Name: "Slotless Wonder", Slot: "ring"},
		Rules: headRules,
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.adapter.ScoreItem(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ScorerTestSuite) TestImprovementsListMissingRules() {
	item := &gear.Item{
		Name:       "Halfway Helm",
		Slot:       gear.SlotHead,
		Affixes:    []gear.Affix{affix("Cooldown Reduction")},
		Masterwork: &gear.MasterworkInfo{Rank: 2, Max: 5},
		Tempers:    &gear.TemperInfo{Used: 1, Max: 2},
	}

	out := s.score(item, headRules)
	s.Contains(out.Improvements, "Missing preferred affix: Maximum Life")
	s.Contains(out.Improvements, "Imprint a preferred aspect")
	s.Contains(out.Improvements, "Complete masterworking (2/5)")
	s.Contains(out.Improvements, "Use remaining tempers (1/2)")
}

func (s *ScorerTestSuite) TestBestInSlotGetsNoImprovements() {
	rules := rulepack.SlotRule{
		MandatoryAffixes: []string{"Stat A", "Stat B", "Stat C"},
	}
	item := &gear.Item{
		Name:    "Perfect Chest",
		Slot:    gear.SlotChest,
		Affixes: []gear.Affix{affix("Stat A"), affix("Stat B"), affix("Stat C")},
	}

	out := s.score(item, rules)
	s.Equal(gear.TierBestInSlot, out.Tier)
	s.Empty(out.Improvements)
}

func TestScorerTestSuite(t *testing.T) {
	suite.Run(t, new(ScorerTestSuite))
}

func TestClassifyBoundaries(t *testing.T) {
	adapter := hydra.NewAdapter()

	tests := []struct {
		score    float64
		expected gear.Tier
	}{
		{100, gear.TierBestInSlot},
		{90, gear.TierBestInSlot},
		{89.999, gear.TierKeep},
		{70, gear.TierKeep},
		{69.999, gear.TierViable},
		{50, gear.TierViable},
		{49.999, gear.TierReplace},
		{0, gear.TierReplace},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%v", tc.score), func(t *testing.T) {
			if got := adapter.Classify(tc.score); got != tc.expected {
				t.Errorf("Classify(%v) = %s, want %s", tc.score, got, tc.expected)
			}
		})
	}
}
