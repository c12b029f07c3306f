package generation

// Segment is a content theme category driving prompt construction.
type Segment string

const (
	SegmentAIEducation      Segment = "AI Education"
	SegmentFinanceEducation Segment = "Finance Education"
	SegmentMotivational     Segment = "Motivational & Inspiration"
	SegmentAIToolDiscovery  Segment = "AI Tool Discovery"
)

// ValidSegment reports whether s is a known content segment.
func ValidSegment(s Segment) bool {
	_, ok := promptBuilders[s]
	return ok
}

// Segments lists the known content segments.
func Segments() []Segment {
	return []Segment{
		SegmentAIEducation,
		SegmentFinanceEducation,
		SegmentMotivational,
		SegmentAIToolDiscovery,
	}
}

// AudienceProfile is a named target-reader persona with focus areas and a
// risk/tone framing used to parameterize prompts.
type AudienceProfile struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	FocusAreas  []string `json:"focus_areas"`
	RiskFraming string   `json:"risk_framing"`
}

// segmentAudiences lists each segment's audience personas.
var segmentAudiences = map[Segment][]AudienceProfile{
	SegmentAIEducation: {
		{
			Name:        "Parents",
			Description: "AI tools for homework help, family productivity, child safety online",
			FocusAreas:  []string{"ChatGPT for homework", "AI safety for kids", "Productivity tools for families"},
			RiskFraming: "Family-safe content",
		},
		{
			Name:        "Seniors (50+)",
			Description: "Beginner-friendly AI guidance, accessibility focus",
			FocusAreas:  []string{"Simple AI tools", "Voice assistants", "AI for health tracking"},
			RiskFraming: "Beginner-friendly approach",
		},
		{
			Name:        "Busy Professionals",
			Description: "Productivity AI, workflow automation, business tools",
			FocusAreas:  []string{"AI for emails", "Meeting automation", "Workflow optimization"},
			RiskFraming: "Professional-grade tools",
		},
		{
			Name:        "Small Business Owners",
			Description: "AI for business growth, customer service, marketing",
			FocusAreas:  []string{"Customer service AI", "Marketing automation", "Business analytics"},
			RiskFraming: "Business-appropriate tools",
		},
	},
	SegmentFinanceEducation: {
		{
			Name:        "Young Adults (18-25)",
			Description: "Basic financial literacy, budgeting, first investments",
			FocusAreas:  []string{"Budgeting apps", "Emergency funds", "Index fund basics", "Student loan management"},
			RiskFraming: "Conservative, education-first approach",
		},
		{
			Name:        "Adults (26-40)",
			Description: "Portfolio building, retirement planning, major purchases",
			FocusAreas:  []string{"401k optimization", "House down payments", "Portfolio diversification", "Tax strategies"},
			RiskFraming: "Moderate risk tolerance, balanced approach",
		},
		{
			Name:        "Pre-retirement (55+)",
			Description: "Capital preservation, income generation, retirement planning",
			FocusAreas:  []string{"Bond strategies", "Dividend investing", "Healthcare costs", "Social Security"},
			RiskFraming: "Conservative, income-focused",
		},
		{
			Name:        "General Finance",
			Description: "Universal financial principles for all ages",
			FocusAreas:  []string{"Financial literacy", "Risk management", "Investment basics", "Economic education"},
			RiskFraming: "Educational foundation for all levels",
		},
	},
	SegmentMotivational: {
		{
			Name:        "Young Adults (18-25)",
			Description: "Goal-setting, resilience, career motivation, life direction",
			FocusAreas:  []string{"Career goals", "Overcoming setbacks", "Building confidence", "Purpose finding"},
			RiskFraming: "Balanced motivation without toxic positivity",
		},
		{
			Name:        "Working Professionals",
			Description: "Work-life balance, leadership, career growth, stress management",
			FocusAreas:  []string{"Leadership wisdom", "Productivity motivation", "Stress relief", "Success principles"},
			RiskFraming: "Professional growth with mental health awareness",
		},
		{
			Name:        "General Inspiration",
			Description: "Universal wisdom, life lessons, spiritual growth, inner peace",
			FocusAreas:  []string{"Life wisdom", "Inner peace", "Gratitude", "Character building"},
			RiskFraming: "Inclusive wisdom respecting diverse beliefs",
		},
		{
			Name:        "Overcoming Challenges",
			Description: "Resilience, hope during difficulties, strength building, recovery support",
			FocusAreas:  []string{"Building resilience", "Hope in hardship", "Mental strength", "Recovery motivation"},
			RiskFraming: "Supportive without replacing professional help",
		},
	},
	SegmentAIToolDiscovery: {
		{
			Name:        "Tech Enthusiasts",
			Description: "Early adopters interested in cutting-edge AI tools",
			FocusAreas:  []string{"New AI releases", "Beta features", "Technical comparisons", "Advanced use cases"},
			RiskFraming: "Technical depth with practical examples",
		},
		{
			Name:        "Content Creators",
			Description: "Creators looking for AI tools to enhance their workflow",
			FocusAreas:  []string{"Content creation tools", "Editing AI", "Automation workflows", "Creative AI"},
			RiskFraming: "Creative-focused with ROI considerations",
		},
		{
			Name:        "Business Professionals",
			Description: "Professionals seeking AI tools for productivity and growth",
			FocusAreas:  []string{"Business AI tools", "Productivity automation", "ROI analysis", "Team collaboration"},
			RiskFraming: "Business-focused with cost-benefit analysis",
		},
		{
			Name:        "Beginners",
			Description: "New users learning about AI capabilities",
			FocusAreas:  []string{"AI basics", "Getting started guides", "Free tools", "Simple tutorials"},
			RiskFraming: "Beginner-friendly with safety guidelines",
		},
	},
}

// Audiences returns the audience personas for a segment.
func Audiences(s Segment) []AudienceProfile {
	return segmentAudiences[s]
}

// LookupAudience finds an audience persona by name within a segment.
func LookupAudience(s Segment, name string) (AudienceProfile, bool) {
	for _, a := range segmentAudiences[s] {
		if a.Name == name {
			return a, true
		}
	}
	return AudienceProfile{}, false
}
