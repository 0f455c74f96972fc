package hydra

import (
	"context"
	"fmt"
	"math"

	"github.com/hydralabs/gear-api/internal/engine"
	"github.com/hydralabs/gear-api/internal/errors"
)

// Recommend applies the decision table: an empty slot is always an equip;
// otherwise tier ordering decides, and same-tier items fall back to the
// score delta with a tolerance band of ±2. Total over all inputs.
func (a *Adapter) Recommend(_ context.Context, input *engine.RecommendInput) (*engine.RecommendOutput, error) {
	if input == nil || input.Candidate == nil {
		return nil, errors.InvalidArgument("candidate item is required")
	}
	if !input.Candidate.IsScored() {
		return nil, errors.InvalidArgument("candidate item has not been scored")
	}

	candidate := input.Candidate
	current := input.Current

	if current == nil {
		return &engine.RecommendOutput{
			Decision:  engine.DecisionEquip,
			Rationale: []string{"no item currently equipped"},
		}, nil
	}

	if !current.IsScored() {
		return nil, errors.InvalidArgument("current item has not been scored")
	}

	candTier := *candidate.Tier
	currTier := *current.Tier

	if candTier.Rank() > currTier.Rank() {
		return &engine.RecommendOutput{
			Decision: engine.DecisionEquip,
			Rationale: []string{
				fmt.Sprintf("candidate tier %s beats current tier %s", candTier, currTier),
			},
		}, nil
	}

	if candTier.Rank() < currTier.Rank() {
		return &engine.RecommendOutput{
			Decision: engine.DecisionSalvage,
			Rationale: []string{
				fmt.Sprintf("candidate tier %s is below current tier %s", candTier, currTier),
			},
		}, nil
	}

	delta := candidate.ScoreValue() - current.ScoreValue()
	switch {
	case delta > scoreTolerance:
		return &engine.RecommendOutput{
			Decision: engine.DecisionEquip,
			Rationale: []string{
				fmt.Sprintf("same tier %s", candTier),
				fmt.Sprintf("candidate scores %.1f vs %.1f, +%.1f exceeds the +%.1f tolerance",
					candidate.ScoreValue(), current.ScoreValue(), delta, scoreTolerance),
			},
		}, nil
	case delta < -scoreTolerance:
		return &engine.RecommendOutput{
			Decision: engine.DecisionSalvage,
			Rationale: []string{
				fmt.Sprintf("same tier %s", candTier),
				fmt.Sprintf("candidate scores %.1f vs %.1f, -%.1f exceeds the -%.1f tolerance",
					candidate.ScoreValue(), current.ScoreValue(), math.Abs(delta), scoreTolerance),
			},
		}, nil
	default:
		return &engine.RecommendOutput{
			Decision: engine.DecisionKeepCurrent,
			Rationale: []string{
				fmt.Sprintf("same tier %s", candTier),
				fmt.Sprintf("similar quality: score delta %.1f is within the ±%.1f tolerance",
					delta, scoreTolerance),
			},
		}, nil
	}
}
