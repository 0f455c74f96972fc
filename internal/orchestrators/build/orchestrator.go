// Package build implements the build orchestrator: it drives gear analysis,
// scoring, recommendation, and the equipped-set state for a profile.
package build

//go:generate mockgen -destination=mock/mock_service.go -package=buildmock github.com/hydralabs/gear-api/internal/orchestrators/build Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hydralabs/gear-api/internal/clients/vision"
	"github.com/hydralabs/gear-api/internal/engine"
	"github.com/hydralabs/gear-api/internal/entities/gear"
	"github.com/hydralabs/gear-api/internal/errors"
	"github.com/hydralabs/gear-api/internal/pkg/clock"
	"github.com/hydralabs/gear-api/internal/pkg/idgen"
	buildrepo "github.com/hydralabs/gear-api/internal/repositories/build"
	"github.com/hydralabs/gear-api/internal/rulepack"
)

// Service defines the interface for build operations
type Service interface {
	// AnalyzeGear runs a screenshot through extraction, scoring, and
	// recommendation against the currently equipped item
	AnalyzeGear(ctx context.Context, input *AnalyzeGearInput) (*AnalyzeGearOutput, error)

	// EvaluateItem scores a manually entered item and recommends against
	// the currently equipped item
	EvaluateItem(ctx context.Context, input *EvaluateItemInput) (*EvaluateItemOutput, error)

	// EquipItem persists a confirmed item into its slot
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)

	// GetBuild returns the full equipped set and notes
	GetBuild(ctx context.Context, input *GetBuildInput) (*GetBuildOutput, error)

	// ClearBuild removes all equipped items and notes
	ClearBuild(ctx context.Context, input *ClearBuildInput) (*ClearBuildOutput, error)

	// ClearSlot removes the item from one slot
	ClearSlot(ctx context.Context, input *ClearSlotInput) (*ClearSlotOutput, error)

	// UpdateNotes replaces the build notes
	UpdateNotes(ctx context.Context, input *UpdateNotesInput) (*UpdateNotesOutput, error)

	// GetRulepack returns the active rulepack content
	GetRulepack(ctx context.Context, input *GetRulepackInput) (*GetRulepackOutput, error)

	// RefreshRules reloads the rulepack from its source
	RefreshRules(ctx context.Context, input *RefreshRulesInput) (*RefreshRulesOutput, error)
}

// Config holds the dependencies for the build orchestrator
type Config struct {
	Engine       engine.Engine
	BuildRepo    buildrepo.Repository
	VisionClient vision.Client
	RuleStore    rulepack.Store
	IDGenerator  idgen.Generator
	Clock        clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.BuildRepo == nil {
		vb.RequiredField("BuildRepo")
	}
	if c.VisionClient == nil {
		vb.RequiredField("VisionClient")
	}
	if c.RuleStore == nil {
		vb.RequiredField("RuleStore")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Orchestrator implements the build Service
type Orchestrator struct {
	engine       engine.Engine
	buildRepo    buildrepo.Repository
	visionClient vision.Client
	ruleStore    rulepack.Store
	idGen        idgen.Generator
	clock        clock.Clock
}

// New creates a new build orchestrator with the provided dependencies
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		engine:       cfg.Engine,
		buildRepo:    cfg.BuildRepo,
		visionClient: cfg.VisionClient,
		ruleStore:    cfg.RuleStore,
		idGen:        cfg.IDGenerator,
		clock:        cfg.Clock,
	}, nil
}

// AnalyzeGear runs a screenshot through extraction, scoring, and
// recommendation. Extraction failures propagate as errors; an item landing
// on an unconfigured slot comes back unscored, not zero-scored.
func (o *Orchestrator) AnalyzeGear(ctx context.Context, input *AnalyzeGearInput) (*AnalyzeGearOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ProfileID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}
	if input.ImageDataURL == "" {
		return nil, errors.InvalidArgument("image is required")
	}

	hint, err := parseHint(input.SlotHint)
	if err != nil {
		return nil, err
	}

	var rulesContext rulepack.SlotEntry
	if hint != "" {
		if entry, ok := o.ruleStore.GetEntry(hint); ok {
			rulesContext = entry
		}
	}

	analysis, err := o.visionClient.AnalyzeImage(ctx, &vision.AnalyzeImageInput{
		ImageDataURL: input.ImageDataURL,
		SlotHint:     hint.String(),
		Rules:        rulesContext,
	})
	if err != nil {
		return nil, errors.Wrap(err, "gear extraction failed")
	}

	item := analysis.Item
	slot, err := o.resolveSlot(ctx, input.ProfileID, hint, item.Slot, analysis.DetectedSlot)
	if err != nil {
		return nil, err
	}
	item.Slot = slot

	evaluation, err := o.evaluate(ctx, input.ProfileID, item)
	if err != nil {
		return nil, err
	}

	return &AnalyzeGearOutput{
		Item:           evaluation.item,
		ResolvedSlot:   slot,
		Scored:         evaluation.scored,
		UnscoredReason: evaluation.unscoredReason,
		Evaluation:     evaluation.details,
		Current:        evaluation.current,
		Recommendation: evaluation.recommendation,
	}, nil
}

// EvaluateItem scores a manually entered item. The same pipeline as
// AnalyzeGear minus extraction; string-only legacy affixes must have been
// normalized into Affix records by the caller's deserialization.
func (o *Orchestrator) EvaluateItem(ctx context.Context, input *EvaluateItemInput) (*EvaluateItemOutput, error) {
	if input == nil || input.Item == nil {
		return nil, errors.InvalidArgument("item is required")
	}
	if input.ProfileID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}

	item := input.Item
	if item.ID == "" {
		item.ID = o.idGen.Generate()
	}

	// Manual entry accepts slot aliases ("helm", "ring1") and the
	// ambiguous "ring"
	if gear.IsRingHint(item.Slot.String()) {
		slot, err := o.resolveRingSlot(ctx, input.ProfileID)
		if err != nil {
			return nil, err
		}
		item.Slot = slot
	} else if slot, ok := gear.ParseSlot(item.Slot.String()); ok {
		item.Slot = slot
	}

	evaluation, err := o.evaluate(ctx, input.ProfileID, item)
	if err != nil {
		return nil, err
	}

	return &EvaluateItemOutput{
		Item:           evaluation.item,
		ResolvedSlot:   evaluation.item.Slot,
		Scored:         evaluation.scored,
		UnscoredReason: evaluation.unscoredReason,
		Evaluation:     evaluation.details,
		Current:        evaluation.current,
		Recommendation: evaluation.recommendation,
	}, nil
}

// EquipItem persists a confirmed item. The item must already be scored and
// its tier must agree with its score; a mismatch means some caller bypassed
// the engine, which is a defect rather than a user error.
func (o *Orchestrator) EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error) {
	if input == nil || input.Item == nil {
		return nil, errors.InvalidArgument("item is required")
	}
	if input.ProfileID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}

	item := input.Item
	if err := validateUsable(item); err != nil {
		return nil, err
	}
	if !item.IsScored() {
		return nil, errors.InvalidArgument("item must be scored before equipping")
	}
	if expected := o.engine.Classify(*item.Score); expected != *item.Tier {
		return nil, errors.Internalf("item tier %s is inconsistent with score %.1f (expected %s)",
			*item.Tier, *item.Score, expected)
	}

	if item.ID == "" {
		item.ID = o.idGen.Generate()
	}
	item.EquippedAt = o.clock.Now().Unix()

	var replaced *gear.Item
	if current, err := o.getEquipped(ctx, input.ProfileID, item.Slot); err != nil {
		return nil, err
	} else if current != nil {
		replaced = current
	}

	if _, err := o.buildRepo.SetSlot(ctx, buildrepo.SetSlotInput{
		ProfileID: input.ProfileID,
		Slot:      item.Slot,
		Item:      item,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to equip item")
	}

	slog.Info("Item equipped",
		"profile_id", input.ProfileID,
		"slot", item.Slot,
		"item", item.Name,
		"score", item.ScoreValue(),
	)

	return &EquipItemOutput{Item: item, Replaced: replaced}, nil
}

// GetBuild returns the full equipped set and notes
func (o *Orchestrator) GetBuild(ctx context.Context, input *GetBuildInput) (*GetBuildOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}

	out, err := o.buildRepo.GetBuild(ctx, buildrepo.GetBuildInput{ProfileID: input.ProfileID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get build")
	}

	return &GetBuildOutput{Slots: out.Slots, Notes: out.Notes}, nil
}

// ClearBuild removes all equipped items and notes
func (o *Orchestrator) ClearBuild(ctx context.Context, input *ClearBuildInput) (*ClearBuildOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}

	if _, err := o.buildRepo.Clear(ctx, buildrepo.ClearInput{ProfileID: input.ProfileID}); err != nil {
		return nil, errors.Wrap(err, "failed to clear build")
	}

	slog.Info("Build cleared", "profile_id", input.ProfileID)
	return &ClearBuildOutput{}, nil
}

// ClearSlot removes the item from one slot
func (o *Orchestrator) ClearSlot(ctx context.Context, input *ClearSlotInput) (*ClearSlotOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}
	if !input.Slot.IsValid() {
		return nil, errors.InvalidArgumentf("invalid slot %q", input.Slot)
	}

	if _, err := o.buildRepo.ClearSlot(ctx, buildrepo.ClearSlotInput{
		ProfileID: input.ProfileID,
		Slot:      input.Slot,
	}); err != nil {
		return nil, err
	}

	return &ClearSlotOutput{}, nil
}

// UpdateNotes replaces the build notes
func (o *Orchestrator) UpdateNotes(ctx context.Context, input *UpdateNotesInput) (*UpdateNotesOutput, error) {
	if input == nil || input.ProfileID == "" {
		return nil, errors.InvalidArgument("profile ID is required")
	}

	if _, err := o.buildRepo.SetNotes(ctx, buildrepo.SetNotesInput{
		ProfileID: input.ProfileID,
		Notes:     input.Notes,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to update notes")
	}

	return &UpdateNotesOutput{}, nil
}

// GetRulepack returns the active rulepack content
func (o *Orchestrator) GetRulepack(_ context.Context, _ *GetRulepackInput) (*GetRulepackOutput, error) {
	slots := make(map[gear.SlotID]rulepack.SlotEntry)
	for _, slot := range gear.AllSlots() {
		if entry, ok := o.ruleStore.GetEntry(slot); ok {
			slots[slot] = entry
		}
	}

	return &GetRulepackOutput{
		Sources: o.ruleStore.Sources(),
		Slots:   slots,
	}, nil
}

// RefreshRules reloads the rulepack from its source
func (o *Orchestrator) RefreshRules(ctx context.Context, _ *RefreshRulesInput) (*RefreshRulesOutput, error) {
	if err := o.ruleStore.Reload(ctx); err != nil {
		return nil, err
	}

	return &RefreshRulesOutput{Sources: o.ruleStore.Sources()}, nil
}

// evaluation bundles the shared scoring+recommendation result
type evaluation struct {
	item           *gear.Item
	scored         bool
	unscoredReason string
	details        *engine.ScoreItemOutput
	current        *gear.Item
	recommendation *engine.RecommendOutput
}

// evaluate validates, scores, classifies, and recommends. Items on slots
// with no configured rules come back unscored with a reason instead of a
// number.
func (o *Orchestrator) evaluate(ctx context.Context, profileID string, item *gear.Item) (*evaluation, error) {
	if err := validateUsable(item); err != nil {
		return nil, err
	}

	if item.ID == "" {
		item.ID = o.idGen.Generate()
	}

	rules := o.ruleStore.GetRules(item.Slot)
	details, err := o.engine.ScoreItem(ctx, &engine.ScoreItemInput{Item: item, Rules: rules})
	if err != nil {
		if errors.IsFailedPrecondition(err) {
			slog.Warn("Item cannot be scored",
				"slot", item.Slot,
				"item", item.Name,
			)
			return &evaluation{
				item:           item,
				scored:         false,
				unscoredReason: errors.GetMessage(err),
			}, nil
		}
		return nil, err
	}

	item.Score = &details.Score
	item.Tier = &details.Tier

	current, err := o.getEquipped(ctx, profileID, item.Slot)
	if err != nil {
		return nil, err
	}

	recommendation, err := o.engine.Recommend(ctx, &engine.RecommendInput{
		Candidate: item,
		Current:   current,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build recommendation")
	}

	return &evaluation{
		item:           item,
		scored:         true,
		details:        details,
		current:        current,
		recommendation: recommendation,
	}, nil
}

// getEquipped reads one slot, mapping "empty slot" to nil
func (o *Orchestrator) getEquipped(ctx context.Context, profileID string, slot gear.SlotID) (*gear.Item, error) {
	out, err := o.buildRepo.GetSlot(ctx, buildrepo.GetSlotInput{ProfileID: profileID, Slot: slot})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read equipped item for slot %s", slot)
	}
	return out.Item, nil
}

// resolveSlot picks the slot an analyzed item belongs to. An explicit hint
// wins; otherwise the detection is used, with the ambiguous "ring" hint
// resolved by the ring assignment policy.
func (o *Orchestrator) resolveSlot(
	ctx context.Context,
	profileID string,
	hint gear.SlotID,
	parsedSlot gear.SlotID,
	detectedSlot string,
) (gear.SlotID, error) {
	if hint != "" {
		return hint, nil
	}
	if parsedSlot.IsValid() {
		return parsedSlot, nil
	}
	if gear.IsRingHint(detectedSlot) {
		return o.resolveRingSlot(ctx, profileID)
	}
	return "", errors.InvalidArgumentf("could not determine gear slot from analysis (detected %q)", detectedSlot)
}

// resolveRingSlot assigns a ring to whichever ring slot is empty, or the
// one holding the lower-scoring item when both are occupied
func (o *Orchestrator) resolveRingSlot(ctx context.Context, profileID string) (gear.SlotID, error) {
	ringA, err := o.getEquipped(ctx, profileID, gear.SlotRingA)
	if err != nil {
		return "", err
	}
	if ringA == nil {
		return gear.SlotRingA, nil
	}

	ringB, err := o.getEquipped(ctx, profileID, gear.SlotRingB)
	if err != nil {
		return "", err
	}
	if ringB == nil {
		return gear.SlotRingB, nil
	}

	if ringB.ScoreValue() < ringA.ScoreValue() {
		return gear.SlotRingB, nil
	}
	return gear.SlotRingA, nil
}

// parseHint normalizes a user-supplied slot hint. "auto" and empty request
// auto-detection; "ring" is not accepted here because a user targeting a
// specific ring slot should name it.
func parseHint(hint string) (gear.SlotID, error) {
	trimmed := strings.TrimSpace(hint)
	if trimmed == "" || strings.EqualFold(trimmed, "auto") {
		return "", nil
	}

	slot, ok := gear.ParseSlot(trimmed)
	if !ok {
		return "", errors.InvalidArgumentf("unknown slot hint %q", hint)
	}
	return slot, nil
}

// validateUsable enforces the minimum usable shape: a record without a name
// and a real slot is rejected before scoring, never scored as zero
func validateUsable(item *gear.Item) error {
	vb := errors.NewValidationBuilder()
	if strings.TrimSpace(item.Name) == "" {
		vb.RequiredField("name")
	}
	if !item.Slot.IsValid() {
		vb.InvalidField("slot", "not a known equipment slot")
	}
	return vb.Build()
}
