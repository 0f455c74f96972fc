// Package hydra provides the concrete implementation of the engine interface
// for the Hydra Sorcerer build rules.
package hydra

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/hydralabs/gear-api/internal/engine"
	"github.com/hydralabs/gear-api/internal/entities/gear"
	"github.com/hydralabs/gear-api/internal/errors"
)

// Scoring weights. Mandatory affixes matter most, then preferred affixes,
// then aspect alignment, then breadth and item power as tie-breakers.
const (
	mandatoryAffixPoints = 35
	preferredAffixPoints = 12
	aspectMatchPoints    = 15
	aspectPresencePoints = 5
	aspectPresenceCap    = 10
	breadthPointsPer     = 3
	breadthCap           = 15
	maxScore             = 100

	itemLevelHigh      = 925
	itemLevelHighBonus = 5
	itemLevelMid       = 900
	itemLevelMidBonus  = 3
	itemLevelLow       = 850
	itemLevelLowBonus  = 1
)

// scoreTolerance is the band within which two same-tier items are treated
// as similar quality rather than an upgrade or downgrade.
const scoreTolerance = 2.0

// Classification thresholds. The comparator depends on these; they must not
// change independently of it.
const (
	thresholdBestInSlot = 90
	thresholdKeep       = 70
	thresholdViable     = 50
)

// Adapter implements the engine.Engine interface for the Hydra Sorcerer build
type Adapter struct{}

// NewAdapter creates a new evaluation engine adapter
func NewAdapter() *Adapter {
	return &Adapter{}
}

// statMatches reports whether an item stat name satisfies a rule affix name.
// Matching is case-insensitive and substring in both directions so that
// "Cooldown Reduction" matches "Cooldown Reduction (Hydra)" and extraction
// shorthand like "CDR to Hydra" still lines up with longer rule names.
func statMatches(statName, ruleName string) bool {
	stat := strings.ToLower(strings.TrimSpace(statName))
	rule := strings.ToLower(strings.TrimSpace(ruleName))
	if stat == "" || rule == "" {
		return false
	}
	return strings.Contains(stat, rule) || strings.Contains(rule, stat)
}

// ScoreItem scores an item against slot rules. Deterministic: the same item
// and rules always produce the same score. Returns FailedPrecondition when
// the slot has no configured rules, so callers can distinguish "scored low"
// from "could not be scored".
func (a *Adapter) ScoreItem(_ context.Context, input *engine.ScoreItemInput) (*engine.ScoreItemOutput, error) {
	if input == nil || input.Item == nil {
		return nil, errors.InvalidArgument("item is required")
	}

	item := input.Item
	if strings.TrimSpace(item.Name) == "" {
		return nil, errors.InvalidArgument("item name cannot be empty")
	}
	if !item.Slot.IsValid() {
		return nil, errors.InvalidArgumentf("item slot %q is not a valid slot", item.Slot)
	}

	rules := input.Rules
	if rules.IsEmpty() {
		return nil, errors.FailedPreconditionf("no rules configured for slot %s", item.Slot).
			WithMeta("slot", item.Slot.String())
	}

	out := &engine.ScoreItemOutput{}
	score := 0.0

	for _, ruleAffix := range rules.MandatoryAffixes {
		if itemHasAffix(item, ruleAffix) {
			score += mandatoryAffixPoints
			out.MatchedMandatory = append(out.MatchedMandatory, ruleAffix)
		} else {
			out.MissingMandatory = append(out.MissingMandatory, ruleAffix)
		}
	}

	for _, ruleAffix := range rules.PreferredAffixes {
		if itemHasAffix(item, ruleAffix) {
			score += preferredAffixPoints
			out.MatchedPreferred = append(out.MatchedPreferred, ruleAffix)
		} else {
			out.MissingPreferred = append(out.MissingPreferred, ruleAffix)
		}
	}

	if item.HasAspect() {
		for _, ruleAspect := range rules.PreferredAspects {
			if statMatches(item.AspectName(), ruleAspect) {
				score += aspectMatchPoints
				out.MatchedAspects = append(out.MatchedAspects, ruleAspect)
			}
		}
		// the model allows at most one aspect per item, so this is 0 or 5
		aspectCount := 1.0
		score += math.Min(aspectCount*aspectPresencePoints, aspectPresenceCap)
	}

	score += math.Min(float64(len(item.Affixes))*breadthPointsPer, breadthCap)
	score += itemLevelBonus(item.ItemLevel)

	out.Score = math.Min(score, maxScore)
	out.Tier = a.Classify(out.Score)
	out.Improvements = buildImprovements(item, out)

	return out, nil
}

func itemHasAffix(item *gear.Item, ruleAffix string) bool {
	for _, affix := range item.Affixes {
		if statMatches(affix.StatName, ruleAffix) {
			return true
		}
	}
	return false
}

// itemLevelBonus awards only the highest applicable bracket
func itemLevelBonus(level *int32) float64 {
	if level == nil {
		return 0
	}
	switch {
	case *level >= itemLevelHigh:
		return itemLevelHighBonus
	case *level >= itemLevelMid:
		return itemLevelMidBonus
	case *level >= itemLevelLow:
		return itemLevelLowBonus
	default:
		return 0
	}
}

// Classify maps a score to its quality tier. Boundary values belong to the
// higher tier: exactly 90 is best in slot, exactly 70 is keep, exactly 50
// is viable.
func (a *Adapter) Classify(score float64) gear.Tier {
	switch {
	case score >= thresholdBestInSlot:
		return gear.TierBestInSlot
	case score >= thresholdKeep:
		return gear.TierKeep
	case score >= thresholdViable:
		return gear.TierViable
	default:
		return gear.TierReplace
	}
}

func buildImprovements(item *gear.Item, out *engine.ScoreItemOutput) []string {
	if out.Tier == gear.TierBestInSlot {
		return nil
	}

	var improvements []string
	for _, affix := range out.MissingMandatory {
		improvements = append(improvements, fmt.Sprintf("Missing mandatory affix: %s", affix))
	}
	for _, affix := range out.MissingPreferred {
		improvements = append(improvements, fmt.Sprintf("Missing preferred affix: %s", affix))
	}
	if !item.HasAspect() {
		improvements = append(improvements, "Imprint a preferred aspect")
	}
	if item.Masterwork != nil && item.Masterwork.Rank < item.Masterwork.Max {
		improvements = append(improvements,
			fmt.Sprintf("Complete masterworking (%d/%d)", item.Masterwork.Rank, item.Masterwork.Max))
	}
	if item.Tempers != nil && item.Tempers.Used < item.Tempers.Max {
		improvements = append(improvements,
			fmt.Sprintf("Use remaining tempers (%d/%d)", item.Tempers.Used, item.Tempers.Max))
	}
	return improvements
}
