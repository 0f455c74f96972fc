package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/hydralabs/gear-api/internal/engine"
	"github.com/hydralabs/gear-api/internal/entities/gear"
	"github.com/hydralabs/gear-api/internal/errors"
	"github.com/hydralabs/gear-api/internal/handlers/rest"
	"github.com/hydralabs/gear-api/internal/orchestrators/build"
	buildmock "github.com/hydralabs/gear-api/internal/orchestrators/build/mock"
	"github.com/hydralabs/gear-api/internal/rulepack"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *buildmock.MockService
	routes      http.Handler
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = buildmock.NewMockService(s.ctrl)

	handler, err := rest.NewHandler(&rest.Config{BuildService: s.mockService})
	s.Require().NoError(err)
	s.routes = handler.Routes()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.routes.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) TestAnalyzeGear() {
	score := 72.0
	tier := gear.TierKeep

	s.mockService.EXPECT().
		AnalyzeGear(gomock.Any(), &build.AnalyzeGearInput{
			ProfileID:    "default",
			ImageDataURL: "data:image/png;base64,aGVsbQ==",
			SlotHint:     "helm",
		}).
		Return(&build.AnalyzeGearOutput{
			Item: &gear.Item{
				ID:    "item_1",
				Name:  "Harlequin Crest",
				Slot:  gear.SlotHead,
				Score: &score,
				Tier:  &tier,
			},
			ResolvedSlot: gear.SlotHead,
			Scored:       true,
			Evaluation: &engine.ScoreItemOutput{
				Score:            72,
				Tier:             gear.TierKeep,
				MatchedMandatory: []string{"Cooldown Reduction"},
			},
			Recommendation: &engine.RecommendOutput{
				Decision:  engine.DecisionEquip,
				Rationale: []string{"no item currently equipped in head"},
			},
		}, nil)

	rec := s.do(http.MethodPost, "/v1/gear/analyze", map[string]string{
		"image": "data:image/png;base64,aGVsbQ==",
		"slot":  "helm",
	})

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/json", rec.Header().Get("Content-Type"))
	s.NotEmpty(rec.Header().Get("X-Request-ID"))

	var resp map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.JSONEq(`"head"`, string(resp["resolved_slot"]))
	s.JSONEq(`true`, string(resp["scored"]))

	var eval map[string]interface{}
	s.Require().NoError(json.Unmarshal(resp["evaluation"], &eval))
	s.Equal(72.0, eval["score"])
	s.Equal("keep", eval["tier"])
}

func (s *HandlerTestSuite) TestAnalyzeGear_Unscored() {
	s.mockService.EXPECT().
		AnalyzeGear(gomock.Any(), gomock.Any()).
		Return(&build.AnalyzeGearOutput{
			Item:           &gear.Item{Name: "Some Boots", Slot: gear.SlotFeet},
			ResolvedSlot:   gear.SlotFeet,
			Scored:         false,
			UnscoredReason: "no scoring rules configured for slot feet",
		}, nil)

	rec := s.do(http.MethodPost, "/v1/gear/analyze", map[string]string{
		"image": "data:image/png;base64,eA==",
	})

	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Scored         bool            `json:"scored"`
		UnscoredReason string          `json:"unscored_reason"`
		Evaluation     json.RawMessage `json:"evaluation"`
		Recommendation json.RawMessage `json:"recommendation"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.False(resp.Scored)
	s.Contains(resp.UnscoredReason, "no scoring rules")
	s.Empty(resp.Evaluation)
	s.Empty(resp.Recommendation)
}

func (s *HandlerTestSuite) TestAnalyzeGear_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/v1/gear/analyze", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	s.routes.ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)

	var body errors.HTTPBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(errors.CodeInvalidArgument.String(), body.Code)
}

func (s *HandlerTestSuite) TestAnalyzeGear_ServiceError() {
	s.mockService.EXPECT().
		AnalyzeGear(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("analysis backend unreachable"))

	rec := s.do(http.MethodPost, "/v1/gear/analyze", map[string]string{
		"image": "data:image/png;base64,eA==",
	})

	s.Equal(http.StatusServiceUnavailable, rec.Code)

	var body errors.HTTPBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(errors.CodeUnavailable.String(), body.Code)
	s.Equal("analysis backend unreachable", body.Message)
}

func (s *HandlerTestSuite) TestScoreItem_UsesRequestProfile() {
	s.mockService.EXPECT().
		EvaluateItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *build.EvaluateItemInput) (*build.EvaluateItemOutput, error) {
			s.Equal("alt-sorc", input.ProfileID)
			s.Equal("Test Ring", input.Item.Name)
			return &build.EvaluateItemOutput{
				Item:         input.Item,
				ResolvedSlot: gear.SlotRingA,
				Scored:       true,
				Evaluation:   &engine.ScoreItemOutput{Score: 55, Tier: gear.TierViable},
			}, nil
		})

	rec := s.do(http.MethodPost, "/v1/gear/score", scoreRequest("alt-sorc"))
	s.Equal(http.StatusOK, rec.Code)
}

func scoreRequest(profile string) map[string]interface{} {
	return map[string]interface{}{
		"profile": profile,
		"item": map[string]interface{}{
			"name":    "Test Ring",
			"slot":    "ring_a",
			"affixes": []interface{}{},
		},
	}
}

func (s *HandlerTestSuite) TestEquipItem() {
	score := 91.0
	tier := gear.TierBestInSlot
	item := &gear.Item{
		ID:    "item_1",
		Name:  "Heir of Perdition",
		Slot:  gear.SlotHead,
		Score: &score,
		Tier:  &tier,
	}

	s.mockService.EXPECT().
		EquipItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *build.EquipItemInput) (*build.EquipItemOutput, error) {
			s.Equal("default", input.ProfileID)
			s.Equal("Heir of Perdition", input.Item.Name)
			return &build.EquipItemOutput{Item: input.Item}, nil
		})

	rec := s.do(http.MethodPost, "/v1/build/default/equip", map[string]interface{}{"item": item})
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestGetBuild() {
	s.mockService.EXPECT().
		GetBuild(gomock.Any(), &build.GetBuildInput{ProfileID: "default"}).
		Return(&build.GetBuildOutput{
			Slots: map[gear.SlotID]*gear.Item{
				gear.SlotHead: {Name: "Harlequin Crest", Slot: gear.SlotHead},
			},
			Notes: "farm helm upgrade",
		}, nil)

	rec := s.do(http.MethodGet, "/v1/build/default", nil)
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Slots map[string]*gear.Item `json:"slots"`
		Notes string                `json:"notes"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Slots, 1)
	s.Equal("farm helm upgrade", resp.Notes)
}

func (s *HandlerTestSuite) TestClearBuild() {
	s.mockService.EXPECT().
		ClearBuild(gomock.Any(), &build.ClearBuildInput{ProfileID: "default"}).
		Return(&build.ClearBuildOutput{}, nil)

	rec := s.do(http.MethodDelete, "/v1/build/default", nil)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *HandlerTestSuite) TestClearSlot() {
	s.mockService.EXPECT().
		ClearSlot(gomock.Any(), &build.ClearSlotInput{ProfileID: "default", Slot: gear.SlotHead}).
		Return(&build.ClearSlotOutput{}, nil)

	// Alias in the path resolves to the canonical slot
	rec := s.do(http.MethodDelete, "/v1/build/default/slot/helm", nil)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *HandlerTestSuite) TestClearSlot_UnknownSlot() {
	rec := s.do(http.MethodDelete, "/v1/build/default/slot/backpack", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestUpdateNotes() {
	s.mockService.EXPECT().
		UpdateNotes(gomock.Any(), &build.UpdateNotesInput{ProfileID: "default", Notes: "switch to fireball"}).
		Return(&build.UpdateNotesOutput{}, nil)

	rec := s.do(http.MethodPut, "/v1/build/default/notes", map[string]string{"notes": "switch to fireball"})
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *HandlerTestSuite) TestGetRulepack() {
	s.mockService.EXPECT().
		GetRulepack(gomock.Any(), gomock.Any()).
		Return(&build.GetRulepackOutput{
			Sources: rulepack.Sources{Updated: "2025-06-01"},
			Slots: map[gear.SlotID]rulepack.SlotEntry{
				gear.SlotHead: {
					SlotRule: rulepack.SlotRule{MandatoryAffixes: []string{"Cooldown Reduction"}},
				},
			},
		}, nil)

	rec := s.do(http.MethodGet, "/v1/rulepack", nil)
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Sources rulepack.Sources                  `json:"sources"`
		Slots   map[string]map[string]interface{} `json:"slots"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("2025-06-01", resp.Sources.Updated)
	s.Contains(resp.Slots, "head")
}

func (s *HandlerTestSuite) TestRefreshRules() {
	s.mockService.EXPECT().
		RefreshRules(gomock.Any(), gomock.Any()).
		Return(&build.RefreshRulesOutput{Sources: rulepack.Sources{Updated: "2025-06-15"}}, nil)

	rec := s.do(http.MethodPost, "/v1/rulepack/refresh", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/healthz", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok"}`, rec.Body.String())
}

func (s *HandlerTestSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/v1/unknown", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
