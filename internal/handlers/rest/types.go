package rest

import (
	"github.com/hydralabs/gear-api/internal/engine"
	"github.com/hydralabs/gear-api/internal/entities/gear"
	"github.com/hydralabs/gear-api/internal/rulepack"
)

// defaultProfile is used when a request does not name a build profile
const defaultProfile = "default"

type analyzeGearRequest struct {
	// Image is a data URL ("data:image/png;base64,...")
	Image string `json:"image"`
	// Slot targets a specific slot; empty or "auto" lets detection decide
	Slot    string `json:"slot,omitempty"`
	Profile string `json:"profile,omitempty"`
}

type scoreItemRequest struct {
	Item    *gear.Item `json:"item"`
	Profile string     `json:"profile,omitempty"`
}

type equipItemRequest struct {
	Item *gear.Item `json:"item"`
}

type updateNotesRequest struct {
	Notes string `json:"notes"`
}

type evaluationBody struct {
	Score            float64  `json:"score"`
	Tier             string   `json:"tier"`
	TierLabel        string   `json:"tier_label"`
	MatchedMandatory []string `json:"matched_mandatory"`
	MissingMandatory []string `json:"missing_mandatory"`
	MatchedPreferred []string `json:"matched_preferred"`
	MissingPreferred []string `json:"missing_preferred"`
	MatchedAspects   []string `json:"matched_aspects"`
	Improvements     []string `json:"improvements,omitempty"`
}

type recommendationBody struct {
	Decision  string   `json:"decision"`
	Rationale []string `json:"rationale"`
}

type evaluateResponse struct {
	Item           *gear.Item          `json:"item"`
	ResolvedSlot   gear.SlotID         `json:"resolved_slot"`
	Scored         bool                `json:"scored"`
	UnscoredReason string              `json:"unscored_reason,omitempty"`
	Evaluation     *evaluationBody     `json:"evaluation,omitempty"`
	Current        *gear.Item          `json:"current,omitempty"`
	Recommendation *recommendationBody `json:"recommendation,omitempty"`
}

type equipResponse struct {
	Item     *gear.Item `json:"item"`
	Replaced *gear.Item `json:"replaced,omitempty"`
}

type buildResponse struct {
	Slots map[gear.SlotID]*gear.Item `json:"slots"`
	Notes string                     `json:"notes,omitempty"`
}

type rulepackResponse struct {
	Sources rulepack.Sources                   `json:"sources"`
	Slots   map[gear.SlotID]rulepack.SlotEntry `json:"slots"`
}

type refreshResponse struct {
	Sources rulepack.Sources `json:"sources"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func toEvaluationBody(out *engine.ScoreItemOutput) *evaluationBody {
	if out == nil {
		return nil
	}
	return &evaluationBody{
		Score:            out.Score,
		Tier:             out.Tier.String(),
		TierLabel:        out.Tier.Label(),
		MatchedMandatory: out.MatchedMandatory,
		MissingMandatory: out.MissingMandatory,
		MatchedPreferred: out.MatchedPreferred,
		MissingPreferred: out.MissingPreferred,
		MatchedAspects:   out.MatchedAspects,
		Improvements:     out.Improvements,
	}
}

func toRecommendationBody(out *engine.RecommendOutput) *recommendationBody {
	if out == nil {
		return nil
	}
	return &recommendationBody{
		Decision:  string(out.Decision),
		Rationale: out.Rationale,
	}
}
