package service

// defaultTaskTemplates maps a content type to its default checklist. The
// lists are templated, not user editable at creation time.
var defaultTaskTemplates = map[string][]string{
	"Blog Post": {
		"Research topic and keywords",
		"Create outline",
		"Write first draft",
		"Edit and revise",
		"Add images/media",
		"SEO optimization",
		"Final review",
		"Publish",
	},
	"Video Script": {
		"Define video concept",
		"Research and gather information",
		"Write script outline",
		"Write full script",
		"Review and edit",
		"Create shot list",
		"Finalize script",
	},
	"Social Media Campaign": {
		"Define campaign goals",
		"Research target audience",
		"Create content calendar",
		"Design visuals",
		"Write captions",
		"Schedule posts",
		"Monitor engagement",
	},
	"Podcast Episode": {
		"Choose episode topic",
		"Research and prep",
		"Create episode outline",
		"Write intro/outro",
		"Record episode",
		"Edit audio",
		"Create show notes",
		"Publish and promote",
	},
	"Newsletter": {
		"Plan newsletter content",
		"Write main article",
		"Add supplementary content",
		"Design layout",
		"Proofread",
		"Test email",
		"Schedule send",
	},
}

// genericTasks is the fallback checklist for unrecognized content types.
var genericTasks = []string{"Plan content", "Create content", "Review", "Publish"}

// DefaultTasks returns the checklist titles for a content type, falling back
// to the generic four-step list for unknown types.
func DefaultTasks(contentType string) []string {
	if tasks, ok := defaultTaskTemplates[contentType]; ok {
		return tasks
	}
	return genericTasks
}
