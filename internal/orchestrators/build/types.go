package build

import (
	"github.com/hydralabs/gear-api/internal/engine"
	"github.com/hydralabs/gear-api/internal/entities/gear"
	"github.com/hydralabs/gear-api/internal/rulepack"
)

// AnalyzeGearInput defines the request for analyzing a gear screenshot
type AnalyzeGearInput struct {
	ProfileID string
	// ImageDataURL is the screenshot as a data URL
	ImageDataURL string
	// SlotHint targets a specific slot; empty or "auto" lets the extraction
	// backend detect it
	SlotHint string
}

// AnalyzeGearOutput defines the result of analyzing a screenshot. When the
// resolved slot has no configured rules, Scored is false, UnscoredReason is
// set, and no recommendation is produced; this is an explicit state the UI
// must render, never a made-up score.
type AnalyzeGearOutput struct {
	Item           *gear.Item
	ResolvedSlot   gear.SlotID
	Scored         bool
	UnscoredReason string
	Evaluation     *engine.ScoreItemOutput
	Current        *gear.Item
	Recommendation *engine.RecommendOutput
}

// EvaluateItemInput defines the request for scoring a manually entered item
type EvaluateItemInput struct {
	ProfileID string
	Item      *gear.Item
}

// EvaluateItemOutput mirrors AnalyzeGearOutput for manual entry
type EvaluateItemOutput struct {
	Item           *gear.Item
	ResolvedSlot   gear.SlotID
	Scored         bool
	UnscoredReason string
	Evaluation     *engine.ScoreItemOutput
	Current        *gear.Item
	Recommendation *engine.RecommendOutput
}

// EquipItemInput defines the request for persisting a confirmed item
type EquipItemInput struct {
	ProfileID string
	Item      *gear.Item
}

// EquipItemOutput defines the result of equipping an item
type EquipItemOutput struct {
	Item     *gear.Item
	Replaced *gear.Item
}

// GetBuildInput defines the request for reading a profile's build
type GetBuildInput struct {
	ProfileID string
}

// GetBuildOutput defines a profile's equipped set and notes
type GetBuildOutput struct {
	Slots map[gear.SlotID]*gear.Item
	Notes string
}

// ClearBuildInput defines the request for clearing a profile's build
type ClearBuildInput struct {
	ProfileID string
}

// ClearBuildOutput defines the result of clearing a build
type ClearBuildOutput struct{}

// ClearSlotInput defines the request for clearing one slot
type ClearSlotInput struct {
	ProfileID string
	Slot      gear.SlotID
}

// ClearSlotOutput defines the result of clearing one slot
type ClearSlotOutput struct{}

// UpdateNotesInput defines the request for replacing build notes
type UpdateNotesInput struct {
	ProfileID string
	Notes     string
}

// UpdateNotesOutput defines the result of updating notes
type UpdateNotesOutput struct{}

// GetRulepackInput defines the request for reading the active rulepack
type GetRulepackInput struct{}

// GetRulepackOutput defines the active rulepack content
type GetRulepackOutput struct {
	Sources rulepack.Sources
	Slots   map[gear.SlotID]rulepack.SlotEntry
}

// RefreshRulesInput defines the request for reloading the rulepack
type RefreshRulesInput struct{}

// RefreshRulesOutput defines the result of reloading the rulepack
type RefreshRulesOutput struct {
	Sources rulepack.Sources
}
