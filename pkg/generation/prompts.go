package generation

import (
	"fmt"
	"strings"
)

// promptBuilder renders the calendar prompt for one segment. Builders are
// dispatched through the table below rather than branching on segment names.
type promptBuilder func(aud AudienceProfile, topic string, days int) string

var promptBuilders = map[Segment]promptBuilder{
	SegmentAIEducation:      aiEducationPrompt,
	SegmentFinanceEducation: financePrompt,
	SegmentMotivational:     motivationalPrompt,
	SegmentAIToolDiscovery:  aiToolPrompt,
}

func audienceBlock(aud AudienceProfile, topic, topicLabel string) string {
	var b strings.Builder
	b.WriteString("AUDIENCE PROFILE:\n")
	fmt.Fprintf(&b, "- Description: %s\n", aud.Description)
	fmt.Fprintf(&b, "- Focus Areas: %s\n", strings.Join(aud.FocusAreas, ", "))
	fmt.Fprintf(&b, "- Content Approach: %s\n", aud.RiskFraming)
	if topic != "" {
		fmt.Fprintf(&b, "- %s: %s\n", topicLabel, topic)
	}
	return b.String()
}

func aiEducationPrompt(aud AudienceProfile, topic string, days int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a %d-day AI education content strategy for '%s'.\n\n", days, aud.Name)
	b.WriteString(audienceBlock(aud, topic, "Specific Topic"))
	b.WriteString(`
CONTENT GUIDELINES:
- Focus on practical AI education with step-by-step guidance
- Keep advice concrete and appropriate for the audience's skill level

For each day, generate:
1. YouTube video idea (title, description, key points)
2. 3 TikTok concepts (hooks, key messages)
3. 3 Instagram posts (captions, visual ideas)
4. 2 Facebook posts (detailed guides, discussion starters)
5. 5 Twitter threads (tips, tutorials)

Format as JSON.
`)
	return b.String()
}

func financePrompt(aud AudienceProfile, topic string, days int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a %d-day EDUCATIONAL finance content strategy for '%s'.\n\n", days, aud.Name)
	b.WriteString(audienceBlock(aud, topic, "Specific Topic"))
	fmt.Fprintf(&b, `
IMPORTANT GUIDELINES:
- This is EDUCATIONAL content only, not personalized financial advice
- Emphasize %s
- Include disclaimer: "Educational content only. Consult professionals for personalized advice."
- Promote financial literacy and responsible investing
- Warn against get-rich-quick schemes and excessive risk-taking
- Emphasize long-term thinking and diversification

Format as JSON with clear disclaimers throughout.
`, aud.RiskFraming)
	return b.String()
}

func motivationalPrompt(aud AudienceProfile, topic string, days int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a %d-day INSPIRATIONAL and MOTIVATIONAL content strategy for '%s'.\n\n", days, aud.Name)
	b.WriteString(audienceBlock(aud, topic, "Specific Theme"))
	b.WriteString(`
CONTENT GUIDELINES:
- Include diverse sources of wisdom (philosophical, spiritual, literary, historical)
- Always cite sources respectfully and note that interpretations may vary
- Focus on universal human values: compassion, perseverance, wisdom, gratitude
- Avoid toxic positivity - acknowledge real struggles while offering hope
- Include disclaimer: "Inspirational content only. For personal struggles, consider professional support."
- Respect diverse beliefs and backgrounds

For each day, generate:
1. YouTube video idea (inspirational title, description, key wisdom points)
2. 3 TikTok concepts (motivational hooks, key messages)
3. 3 Instagram posts (quote graphics, reflection prompts)
4. 2 Facebook posts (community inspiration, discussion starters)
5. 5 Twitter threads (daily wisdom, reflective thoughts)

Format as JSON with appropriate sourcing and disclaimers.
`)
	return b.String()
}

func aiToolPrompt(aud AudienceProfile, topic string, days int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a %d-day AI TOOL DISCOVERY content strategy for '%s'.\n\n", days, aud.Name)
	b.WriteString(audienceBlock(aud, topic, "Specific Focus"))
	b.WriteString(`
CONTENT GUIDELINES:
- Focus on practical, actionable AI tool knowledge
- Include tool comparisons, tutorials, and new discoveries
- Provide real-world use cases and ROI considerations
- Include both free and paid tool options
- Include step-by-step guides and pro tips
- Address common concerns about AI tool adoption

For each day, generate:
1. YouTube video idea (tool tutorial, comparison, or discovery)
2. 3 TikTok concepts (quick tips, tool demos, before/after)
3. 3 Instagram posts (tool highlights, comparison graphics, tips)
4. 2 Facebook posts (detailed guides, community discussions)
5. 5 Twitter threads (tool tips, discoveries, quick tutorials)

Format as JSON with practical, actionable content.
`)
	return b.String()
}

// scriptBuilder renders the video-script prompt for one segment.
type scriptBuilder func(aud AudienceProfile, idea string) string

var scriptBuilders = map[Segment]scriptBuilder{
	SegmentAIEducation: func(aud AudienceProfile, idea string) string {
		return fmt.Sprintf(`Create a detailed 10-15 minute YouTube script for '%s' about: %s

Focus on practical AI education with step-by-step guidance.
`, aud.Name, idea)
	},
	SegmentFinanceEducation: func(aud AudienceProfile, idea string) string {
		return fmt.Sprintf(`Create a detailed 10-15 minute EDUCATIONAL YouTube script for '%s' about: %s

Include clear disclaimers about educational purposes only and responsible investing.
`, aud.Name, idea)
	},
	SegmentMotivational: func(aud AudienceProfile, idea string) string {
		return fmt.Sprintf(`Create a detailed 10-15 minute INSPIRATIONAL YouTube script for '%s' about: %s

Requirements:
- Include diverse sources of wisdom respectfully, with proper attribution
- Focus on universal human values and positive mental health
- Include disclaimer: "Inspirational content only. Interpretations may vary. For personal struggles, seek professional support."
- Avoid toxic positivity - acknowledge real challenges while offering hope

Include sections with timestamps and inspirational focus.
`, aud.Name, idea)
	},
	SegmentAIToolDiscovery: func(aud AudienceProfile, idea string) string {
		return fmt.Sprintf(`Create a detailed 10-15 minute AI TOOL tutorial/review script for '%s' about: %s

Include:
- Tool overview and key features
- Step-by-step tutorial
- Pros and cons
- Pricing and alternatives
- Real-world use cases
- Who should use this tool

Focus on practical, actionable guidance.
`, aud.Name, idea)
	},
}
