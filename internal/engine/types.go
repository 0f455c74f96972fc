package engine

import (
	"github.com/hydralabs/gear-api/internal/entities/gear"
	"github.com/hydralabs/gear-api/internal/rulepack"
)

// ScoreItemInput defines the input for scoring an item
type ScoreItemInput struct {
	Item  *gear.Item
	Rules rulepack.SlotRule
}

// ScoreItemOutput defines the result of scoring an item. The matched and
// missing lists let the UI explain the score and suggest improvements.
type ScoreItemOutput struct {
	Score float64
	Tier  gear.Tier

	MatchedMandatory []string
	MissingMandatory []string
	MatchedPreferred []string
	MissingPreferred []string
	MatchedAspects   []string

	// Improvements holds upgrade advice for items short of best in slot
	Improvements []string
}

// Decision is the comparator's verdict for a candidate item
type Decision string

// Decisions
const (
	DecisionEquip       Decision = "equip"
	DecisionKeepCurrent Decision = "keep_current"
	DecisionSalvage     Decision = "salvage"
)

// RecommendInput defines the input for a recommendation. Current is nil when
// the slot is empty. Both items must already be scored.
type RecommendInput struct {
	Candidate *gear.Item
	Current   *gear.Item
}

// RecommendOutput defines a recommendation with its human-readable
// justification. Rationale always names the deciding factor.
type RecommendOutput struct {
	Decision  Decision
	Rationale []string
}
