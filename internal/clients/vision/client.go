// Package vision is the client for the image-analysis backend that turns
// gear screenshots into structured item records.
package vision

//go:generate mockgen -destination=mock/mock_client.go -package=visionmock github.com/hydralabs/gear-api/internal/clients/vision Client

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"github.com/sethvargo/go-retry"

	"github.com/hydralabs/gear-api/internal/entities/gear"
	"github.com/hydralabs/gear-api/internal/errors"
	"github.com/hydralabs/gear-api/internal/rulepack"
)

const (
	defaultModel       = "gpt-4o-mini"
	defaultMaxTokens   = 800
	defaultTemperature = 0.1

	retryBaseDelay  = 700 * time.Millisecond
	retryMaxRetries = 2
)

const systemPrompt = "You are a Diablo 4 gear analyst for a Hydra Sorcerer. " +
	"CRITICAL: Only report what you can actually SEE in the image. Do NOT guess, assume, or make up information. " +
	"If you cannot clearly read an affix, aspect, or stat, do NOT include it. " +
	"For the aspect: only report an aspect that is explicitly visible in the image; otherwise return null. " +
	"For affixes: only include affixes with their exact values as shown in the image. " +
	"Return STRICT JSON; no markdown. " +
	"Automatically detect the gear slot type from the image. For rings, use slot 'ring'."

// Client defines the interface for the gear extraction backend
type Client interface {
	// AnalyzeImage submits a screenshot and returns the best-effort
	// structured item the backend could read from it. A failure to analyze
	// is an explicit error, never a hollow success payload.
	AnalyzeImage(ctx context.Context, input *AnalyzeImageInput) (*AnalyzeImageOutput, error)
}

// AnalyzeImageInput defines the input for image analysis
type AnalyzeImageInput struct {
	// ImageDataURL is the screenshot as a data URL
	ImageDataURL string
	// SlotHint narrows detection to a known slot; empty requests
	// auto-detection
	SlotHint string
	// Rules gives the backend the applicable slot rules as judging context
	Rules rulepack.SlotEntry
}

// AnalyzeImageOutput defines the analysis result. Item.Slot is set only when
// the detected slot resolved to a real slot; DetectedSlot always carries the
// raw detection, including the ambiguous "ring" hint.
type AnalyzeImageOutput struct {
	Item         *gear.Item
	DetectedSlot string
}

// Config contains configuration options for the vision client
type Config struct {
	// APIKey for the OpenAI API
	APIKey string
	// Model name (optional, defaults to gpt-4o-mini)
	Model string
	// BaseURL overrides the API endpoint, used in tests
	BaseURL string
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.APIKey == "" {
		return errors.InvalidArgument("api key cannot be empty")
	}
	return nil
}

type client struct {
	api   openai.Client
	model string
}

// New creates a vision client backed by the OpenAI chat completions API
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &client{
		api:   openai.NewClient(opts...),
		model: model,
	}, nil
}

func (c *client) AnalyzeImage(ctx context.Context, input *AnalyzeImageInput) (*AnalyzeImageOutput, error) {
	if input == nil || input.ImageDataURL == "" {
		return nil, errors.InvalidArgument("image is required")
	}

	params := c.buildParams(input)

	var completion *openai.ChatCompletion
	backoff := retry.WithMaxRetries(retryMaxRetries, retry.NewExponential(retryBaseDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var callErr error
		completion, callErr = c.api.Chat.Completions.New(ctx, params)
		if callErr != nil {
			if isRetryable(callErr) {
				slog.Warn("Vision analysis call failed, retrying", "error", callErr)
				return retry.RetryableError(callErr)
			}
			return callErr
		}
		return nil
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "vision backend could not analyze the image")
	}

	if len(completion.Choices) == 0 {
		return nil, errors.Unavailable("vision backend returned no analysis")
	}

	item, detectedSlot, err := parseReport(completion.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	slog.Info("Gear image analyzed",
		"item", item.Name,
		"detected_slot", detectedSlot,
		"affixes", len(item.Affixes),
	)

	return &AnalyzeImageOutput{
		Item:         item,
		DetectedSlot: detectedSlot,
	}, nil
}

func (c *client) buildParams(input *AnalyzeImageInput) openai.ChatCompletionNewParams {
	rulesJSON, err := json.Marshal(input.Rules)
	if err != nil {
		rulesJSON = []byte("{}")
	}

	var prompt strings.Builder
	prompt.WriteString("Analyze this Diablo 4 item screenshot. ")
	prompt.WriteString("ONLY report what you can clearly see in the image; do not guess. ")
	if input.SlotHint != "" {
		prompt.WriteString("The item is expected to be a " + input.SlotHint + ". ")
	} else {
		prompt.WriteString("Automatically detect the gear slot type (helm, amulet, chest, gloves, pants, boots, ring, weapon, offhand). ")
	}
	prompt.WriteString("Use the RULES JSON as Hydra Sorcerer context for reading the item, ")
	prompt.WriteString("but report every affix you can see, matching or not.")

	return openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(prompt.String()),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: input.ImageDataURL,
				}),
				openai.TextContentPart("RULES JSON:\n" + string(rulesJSON)),
			}),
		},
		MaxTokens:   openai.Int(defaultMaxTokens),
		Temperature: openai.Float(defaultTemperature),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   "gear_report",
					Schema: gearReportSchema,
				},
			},
		},
	}
}

// isRetryable matches the transient statuses worth retrying: rate limits
// and upstream hiccups
func isRetryable(err error) bool {
	var apiErr *openai.Error
	if stderrors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 429, 500, 503:
			return true
		}
	}
	return false
}

// gearReportSchema is the structured-output JSON schema the model must fill
var gearReportSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"name":       map[string]interface{}{"type": "string"},
		"slot":       map[string]interface{}{"type": "string"},
		"rarity":     map[string]interface{}{"type": "string"},
		"type":       map[string]interface{}{"type": "string"},
		"item_power": map[string]interface{}{"type": []string{"integer", "null"}},
		"armor":      map[string]interface{}{"type": []string{"integer", "null"}},
		"aspect": map[string]interface{}{
			"type": []string{"object", "null"},
			"properties": map[string]interface{}{
				"name":   map[string]interface{}{"type": "string"},
				"source": map[string]interface{}{"type": "string", "enum": []string{"imprinted", "innate_unique", "unknown"}},
				"text":   map[string]interface{}{"type": "string"},
			},
		},
		"affixes": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"stat":     map[string]interface{}{"type": "string"},
					"val":      map[string]interface{}{"type": []string{"string", "number", "null"}},
					"unit":     map[string]interface{}{"type": []string{"string", "null"}},
					"greater":  map[string]interface{}{"type": "boolean"},
					"tempered": map[string]interface{}{"type": "boolean"},
				},
			},
		},
		"masterwork": map[string]interface{}{
			"type": []string{"object", "null"},
			"properties": map[string]interface{}{
				"rank": map[string]interface{}{"type": "integer"},
				"max":  map[string]interface{}{"type": "integer"},
			},
		},
		"tempers": map[string]interface{}{
			"type": []string{"object", "null"},
			"properties": map[string]interface{}{
				"used": map[string]interface{}{"type": "integer"},
				"max":  map[string]interface{}{"type": "integer"},
			},
		},
		"sockets":    map[string]interface{}{"type": "integer"},
		"gems":       map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
		"confidence": map[string]interface{}{"type": []string{"number", "null"}},
	},
	"required": []string{"name", "slot"},
}
