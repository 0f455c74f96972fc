// Package engine defines the gear evaluation engine: deterministic scoring,
// grade classification, and equip/keep/salvage recommendation.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/hydralabs/gear-api/internal/engine Engine

import (
	"context"

	"github.com/hydralabs/gear-api/internal/entities/gear"
)

// Engine provides gear evaluation mechanics. Implementations must be pure:
// the same inputs always produce the same outputs, with no I/O and no
// randomness. An item on a slot with no configured rules is unscoreable and
// yields a FailedPrecondition error, never an invented number.
type Engine interface {
	// ScoreItem scores an item against the slot rules and classifies the
	// result into a tier
	ScoreItem(ctx context.Context, input *ScoreItemInput) (*ScoreItemOutput, error)

	// Recommend decides equip/keep/salvage for a scored candidate against
	// the currently equipped item, if any
	Recommend(ctx context.Context, input *RecommendInput) (*RecommendOutput, error)

	// Classify maps a score in [0,100] to its quality tier
	Classify(score float64) gear.Tier
}
