package generation_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplyaiforall-coder/simplyAiForAll/pkg/generation"
)

type logger struct{}

func (l logger) Infof(format string, args ...interface{}) {
	// no-op
}

func (l logger) Warnf(format string, args ...interface{}) {
	// no-op
}

func (l logger) Errorf(format string, args ...interface{}) {
	// no-op
}

// fakeProvider returns canned responses and records the models requested
// from it.
type fakeProvider struct {
	name      string
	models    []string
	response  string
	err       error
	requested []string
}

func (f *fakeProvider) Name() string     { return f.name }
func (f *fakeProvider) Models() []string { return f.models }

func (f *fakeProvider) Generate(_ context.Context, req generation.Request) (string, error) {
	f.requested = append(f.requested, req.Model)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newPipeline(providers ...generation.Provider) *generation.Pipeline {
	return generation.NewPipeline(generation.NewRouter(logger{}, providers...), logger{})
}

func TestRouterGenerate(t *testing.T) {
	t.Run("ExactModelMatch", func(t *testing.T) {
		openai := &fakeProvider{name: "openai", models: []string{"GPT-3.5 Turbo", "GPT-4"}, response: "ok"}
		anthropic := &fakeProvider{name: "anthropic", models: []string{"Claude 3.5 Sonnet"}, response: "ok"}
		router := generation.NewRouter(logger{}, openai, anthropic)

		_, err := router.Generate(context.Background(), generation.Request{Model: "Claude 3.5 Sonnet", Prompt: "hi"})
		require.NoError(t, err)
		assert.Empty(t, openai.requested)
		assert.Equal(t, []string{"Claude 3.5 Sonnet"}, anthropic.requested)
	})

	t.Run("FamilyPrefixMatch", func(t *testing.T) {
		anthropic := &fakeProvider{name: "anthropic", models: []string{"Claude 3.5 Sonnet", "Claude 3 Haiku"}, response: "ok"}
		router := generation.NewRouter(logger{}, anthropic)

		_, err := router.Generate(context.Background(), generation.Request{Model: "Claude 4 Opus", Prompt: "hi"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Claude 4 Opus"}, anthropic.requested)
	})

	t.Run("FallsBackToFirstAvailable", func(t *testing.T) {
		openai := &fakeProvider{name: "openai", models: []string{"GPT-3.5 Turbo"}, response: "ok"}
		router := generation.NewRouter(logger{}, openai)

		_, err := router.Generate(context.Background(), generation.Request{Model: "Claude 3 Haiku", Prompt: "hi"})
		require.NoError(t, err)
		assert.Equal(t, []string{"GPT-3.5 Turbo"}, openai.requested)
	})

	t.Run("NoProvidersConfigured", func(t *testing.T) {
		router := generation.NewRouter(logger{})
		_, err := router.Generate(context.Background(), generation.Request{Model: "GPT-4", Prompt: "hi"})
		assert.True(t, errors.Is(err, generation.ErrNoModelAvailable))
	})
}

func TestGenerateCalendar(t *testing.T) {
	req := generation.GenerateRequest{
		Segment:  generation.SegmentAIEducation,
		Audience: "Parents",
		Days:     3,
		Model:    "GPT-3.5 Turbo",
	}

	t.Run("ValidJSONPassesThrough", func(t *testing.T) {
		provider := &fakeProvider{
			name:     "openai",
			models:   []string{"GPT-3.5 Turbo"},
			response: `{"day_1":{"topic":"AI homework helpers"},"day_2":{"topic":"Screen time"}}`,
		}
		calendar, err := newPipeline(provider).GenerateCalendar(context.Background(), req)
		require.NoError(t, err)
		assert.Len(t, calendar, 2)
		assert.Contains(t, calendar, "day_1")
		assert.Contains(t, calendar, "day_2")
	})

	t.Run("PlainTextWrappedAsDayOne", func(t *testing.T) {
		provider := &fakeProvider{
			name:     "openai",
			models:   []string{"GPT-3.5 Turbo"},
			response: "Day 1: post about AI homework helpers.",
		}
		calendar, err := newPipeline(provider).GenerateCalendar(context.Background(), req)
		require.NoError(t, err)
		require.Len(t, calendar, 1)

		var entry map[string]string
		require.NoError(t, json.Unmarshal(calendar["day_1"], &entry))
		assert.Equal(t, "Day 1: post about AI homework helpers.", entry["content"])
	})

	t.Run("UnknownSegment", func(t *testing.T) {
		provider := &fakeProvider{name: "openai", models: []string{"GPT-3.5 Turbo"}, response: "{}"}
		bad := req
		bad.Segment = "Gardening"
		_, err := newPipeline(provider).GenerateCalendar(context.Background(), bad)
		assert.Error(t, err)
	})

	t.Run("UnknownAudience", func(t *testing.T) {
		provider := &fakeProvider{name: "openai", models: []string{"GPT-3.5 Turbo"}, response: "{}"}
		bad := req
		bad.Audience = "Astronauts"
		_, err := newPipeline(provider).GenerateCalendar(context.Background(), bad)
		assert.Error(t, err)
	})

	t.Run("ProviderFailurePropagates", func(t *testing.T) {
		provider := &fakeProvider{name: "openai", models: []string{"GPT-3.5 Turbo"}, err: errors.New("rate limited")}
		_, err := newPipeline(provider).GenerateCalendar(context.Background(), req)
		assert.Error(t, err)
	})
}

func TestVideoScripts(t *testing.T) {
	t.Run("OneScriptPerIdea", func(t *testing.T) {
		provider := &fakeProvider{name: "anthropic", models: []string{"Claude 3 Haiku"}, response: "HOOK: ..."}
		scripts, err := newPipeline(provider).VideoScripts(context.Background(),
			generation.SegmentFinanceEducation, "Young Adults (18-25)",
			[]string{"Budgeting basics", "Compound interest"}, "Claude 3 Haiku")
		require.NoError(t, err)
		require.Len(t, scripts, 2)
		assert.Equal(t, "Budgeting basics", scripts[0].Idea)
		assert.Equal(t, "HOOK: ...", scripts[0].Script)
		assert.Equal(t, "Claude 3 Haiku", scripts[0].ModelUsed)
	})

	t.Run("FailedIdeasAreSkipped", func(t *testing.T) {
		provider := &fakeProvider{name: "anthropic", models: []string{"Claude 3 Haiku"}, err: errors.New("overloaded")}
		scripts, err := newPipeline(provider).VideoScripts(context.Background(),
			generation.SegmentMotivational, "General Inspiration",
			[]string{"Morning routines"}, "Claude 3 Haiku")
		require.NoError(t, err)
		assert.Empty(t, scripts)
	})
}

func TestAvailableModels(t *testing.T) {
	openai := &fakeProvider{name: "openai", models: []string{"GPT-3.5 Turbo", "GPT-4"}}
	anthropic := &fakeProvider{name: "anthropic", models: []string{"Claude 3.5 Sonnet"}}
	p := newPipeline(openai, anthropic)
	assert.Equal(t, []string{"GPT-3.5 Turbo", "GPT-4", "Claude 3.5 Sonnet"}, p.AvailableModels())
}

func TestModelCost(t *testing.T) {
	assert.Equal(t, 0.03, generation.ModelCost("GPT-4"))
	assert.Equal(t, 0.002, generation.ModelCost("Some Future Model"))
}

func TestLookupAudience(t *testing.T) {
	aud, ok := generation.LookupAudience(generation.SegmentAIToolDiscovery, "Content Creators")
	require.True(t, ok)
	assert.Equal(t, "Content Creators", aud.Name)

	_, ok = generation.LookupAudience(generation.SegmentAIToolDiscovery, "Parents")
	assert.False(t, ok)
}
