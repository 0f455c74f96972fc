// Package rest exposes the build orchestrator over an HTTP JSON API.
package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	"github.com/hydralabs/gear-api/internal/entities/gear"
	"github.com/hydralabs/gear-api/internal/errors"
	"github.com/hydralabs/gear-api/internal/orchestrators/build"
)

// Config holds the dependencies for the REST handler
type Config struct {
	BuildService build.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.BuildService == nil {
		vb.RequiredField("BuildService")
	}
	return vb.Build()
}

// Handler serves the gear API routes
type Handler struct {
	service build.Service
}

// NewHandler creates a new REST handler
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Handler{service: cfg.BuildService}, nil
}

// Routes builds the full route tree with CORS and request-ID middleware
// applied
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/gear/analyze", h.analyzeGear)
	mux.HandleFunc("POST /v1/gear/score", h.scoreItem)
	mux.HandleFunc("POST /v1/build/{profile}/equip", h.equipItem)
	mux.HandleFunc("GET /v1/build/{profile}", h.getBuild)
	mux.HandleFunc("DELETE /v1/build/{profile}", h.clearBuild)
	mux.HandleFunc("DELETE /v1/build/{profile}/slot/{slot}", h.clearSlot)
	mux.HandleFunc("PUT /v1/build/{profile}/notes", h.updateNotes)
	mux.HandleFunc("GET /v1/rulepack", h.getRulepack)
	mux.HandleFunc("POST /v1/rulepack/refresh", h.refreshRules)
	mux.HandleFunc("GET /healthz", h.health)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	return RequestID(c.Handler(mux))
}

func (h *Handler) analyzeGear(w http.ResponseWriter, r *http.Request) {
	var req analyzeGearRequest
	if err := decodeJSON(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	output, err := h.service.AnalyzeGear(r.Context(), &build.AnalyzeGearInput{
		ProfileID:    profileOrDefault(req.Profile),
		ImageDataURL: req.Image,
		SlotHint:     req.Slot,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, evaluateResponse{
		Item:           output.Item,
		ResolvedSlot:   output.ResolvedSlot,
		Scored:         output.Scored,
		UnscoredReason: output.UnscoredReason,
		Evaluation:     toEvaluationBody(output.Evaluation),
		Current:        output.Current,
		Recommendation: toRecommendationBody(output.Recommendation),
	})
}

func (h *Handler) scoreItem(w http.ResponseWriter, r *http.Request) {
	var req scoreItemRequest
	if err := decodeJSON(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	output, err := h.service.EvaluateItem(r.Context(), &build.EvaluateItemInput{
		ProfileID: profileOrDefault(req.Profile),
		Item:      req.Item,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, evaluateResponse{
		Item:           output.Item,
		ResolvedSlot:   output.ResolvedSlot,
		Scored:         output.Scored,
		UnscoredReason: output.UnscoredReason,
		Evaluation:     toEvaluationBody(output.Evaluation),
		Current:        output.Current,
		Recommendation: toRecommendationBody(output.Recommendation),
	})
}

func (h *Handler) equipItem(w http.ResponseWriter, r *http.Request) {
	var req equipItemRequest
	if err := decodeJSON(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	output, err := h.service.EquipItem(r.Context(), &build.EquipItemInput{
		ProfileID: r.PathValue("profile"),
		Item:      req.Item,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, equipResponse{
		Item:     output.Item,
		Replaced: output.Replaced,
	})
}

func (h *Handler) getBuild(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.GetBuild(r.Context(), &build.GetBuildInput{
		ProfileID: r.PathValue("profile"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, buildResponse{
		Slots: output.Slots,
		Notes: output.Notes,
	})
}

func (h *Handler) clearBuild(w http.ResponseWriter, r *http.Request) {
	if _, err := h.service.ClearBuild(r.Context(), &build.ClearBuildInput{
		ProfileID: r.PathValue("profile"),
	}); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearSlot(w http.ResponseWriter, r *http.Request) {
	slot, ok := gear.ParseSlot(r.PathValue("slot"))
	if !ok {
		errors.WriteHTTP(w, errors.InvalidArgumentf("unknown slot %q", r.PathValue("slot")))
		return
	}

	if _, err := h.service.ClearSlot(r.Context(), &build.ClearSlotInput{
		ProfileID: r.PathValue("profile"),
		Slot:      slot,
	}); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updateNotes(w http.ResponseWriter, r *http.Request) {
	var req updateNotesRequest
	if err := decodeJSON(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	if _, err := h.service.UpdateNotes(r.Context(), &build.UpdateNotesInput{
		ProfileID: r.PathValue("profile"),
		Notes:     req.Notes,
	}); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getRulepack(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.GetRulepack(r.Context(), &build.GetRulepackInput{})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rulepackResponse{
		Sources: output.Sources,
		Slots:   output.Slots,
	})
}

func (h *Handler) refreshRules(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.RefreshRules(r.Context(), &build.RefreshRulesInput{})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, refreshResponse{Sources: output.Sources})
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func profileOrDefault(profile string) string {
	if profile == "" {
		return defaultProfile
	}
	return profile
}

func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
