package generation

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

const (
	calendarMaxTokens = 4000
	scriptMaxTokens   = 2500
	defaultDays       = 7
)

// Calendar is a generated multi-day content plan keyed "day_1".."day_N".
// Entries are kept raw: the model's structure varies and downstream
// consumers decide how deep to parse.
type Calendar map[string]json.RawMessage

// Pipeline is the content-generation facade. It builds the prompt for a
// segment/audience pair and delegates to the router.
type Pipeline struct {
	router *Router
	logger Logger
}

func NewPipeline(router *Router, logger Logger) *Pipeline {
	return &Pipeline{
		router: router,
		logger: logger,
	}
}

// GenerateRequest describes one calendar generation.
type GenerateRequest struct {
	Segment  Segment
	Audience string
	Topic    string // optional
	Days     int    // defaults to 7
	Model    string // desired model display name
}

// GenerateCalendar produces a multi-day, multi-platform content plan.
// Malformed model output never aborts the generation: non-JSON responses are
// wrapped as a single-day record with the raw text as its content.
func (p *Pipeline) GenerateCalendar(ctx context.Context, req GenerateRequest) (Calendar, error) {
	builder, ok := promptBuilders[req.Segment]
	if !ok {
		return nil, errors.Errorf("unknown content segment %q", req.Segment)
	}
	aud, ok := LookupAudience(req.Segment, req.Audience)
	if !ok {
		return nil, errors.Errorf("unknown audience %q for segment %q", req.Audience, req.Segment)
	}
	days := req.Days
	if days <= 0 {
		days = defaultDays
	}

	text, err := p.router.Generate(ctx, Request{
		Prompt:      builder(aud, req.Topic, days),
		Model:       req.Model,
		MaxTokens:   calendarMaxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, errors.Wrap(err, "generate calendar")
	}

	var calendar Calendar
	if err := json.Unmarshal([]byte(text), &calendar); err != nil {
		p.logger.Warnf("Received text format instead of JSON, wrapping as day_1 content")
		return wrapRawText(text), nil
	}
	return calendar, nil
}

// wrapRawText degrades a non-JSON response to {"day_1": {"content": text}}.
func wrapRawText(text string) Calendar {
	body, _ := json.Marshal(map[string]string{"content": text})
	return Calendar{"day_1": body}
}

// VideoScript is one generated script together with its provenance.
type VideoScript struct {
	Idea      string `json:"idea"`
	Script    string `json:"script"`
	Segment   string `json:"segment"`
	Audience  string `json:"audience"`
	ModelUsed string `json:"model_used"`
}

// VideoScripts generates a detailed script per video idea. A failed idea is
// logged and skipped; the remaining scripts are still returned.
func (p *Pipeline) VideoScripts(ctx context.Context, segment Segment, audience string, ideas []string, model string) ([]VideoScript, error) {
	builder, ok := scriptBuilders[segment]
	if !ok {
		return nil, errors.Errorf("unknown content segment %q", segment)
	}
	aud, ok := LookupAudience(segment, audience)
	if !ok {
		return nil, errors.Errorf("unknown audience %q for segment %q", audience, segment)
	}

	var scripts []VideoScript
	for _, idea := range ideas {
		text, err := p.router.Generate(ctx, Request{
			Prompt:      builder(aud, idea),
			Model:       model,
			MaxTokens:   scriptMaxTokens,
			Temperature: 0.7,
		})
		if err != nil {
			p.logger.Errorf("Script generation failed for %q: %v", idea, err)
			continue
		}
		if text == "" {
			continue
		}
		scripts = append(scripts, VideoScript{
			Idea:      idea,
			Script:    text,
			Segment:   string(segment),
			Audience:  audience,
			ModelUsed: model,
		})
	}
	return scripts, nil
}

// AvailableModels lists every model the configured providers offer.
func (p *Pipeline) AvailableModels() []string {
	return p.router.AvailableModels()
}

// modelCosts is cost per 1K tokens, used for presentation only.
var modelCosts = map[string]float64{
	"GPT-3.5 Turbo":     0.002,
	"GPT-4":             0.03,
	"GPT-4 Turbo":       0.01,
	"Claude 3.5 Sonnet": 0.003,
	"Claude 3 Haiku":    0.00025,
}

// ModelCost returns the cost per 1K tokens for a model, with a generic
// default for unknown models.
func ModelCost(model string) float64 {
	if c, ok := modelCosts[model]; ok {
		return c
	}
	return 0.002
}
