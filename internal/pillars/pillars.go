package pillars

// Pillar is one of the eight fixed life-category labels. The catalog is a
// closed enumeration: pillars are never created or deleted at runtime.
type Pillar struct {
	ID          string
	Name        string
	Description string
	Suggestions []string
}

var catalog = []Pillar{
	{
		ID:          "mental-health",
		Name:        "Mental & Emotional Health",
		Description: "Nurture your mind and emotional well-being",
		Suggestions: []string{
			"Practice mindfulness 10 mins daily",
			"Journal gratitude every morning",
			"Digital detox on weekends",
			"Monthly therapy sessions",
			"Read 1 personal development book/month",
		},
	},
	{
		ID:          "physical-health",
		Name:        "Physical Health & Wellness",
		Description: "Build strength, energy, and vitality",
		Suggestions: []string{
			"Exercise 4x per week",
			"Sleep 7-8 hours nightly",
			"Drink 8 glasses of water daily",
			"Meal prep on Sundays",
			"Annual health checkup",
		},
	},
	{
		ID:          "parenting",
		Name:        "Kid's Future & Parenting",
		Description: "Shape your child's bright future",
		Suggestions: []string{
			"Weekly one-on-one activity",
			"Start education savings fund",
			"Teach new skill monthly",
			"Daily reading together",
			"Plan memorable family trips",
		},
	},
	{
		ID:          "financial",
		Name:        "Financial Freedom",
		Description: "Build wealth and security for your family",
		Suggestions: []string{
			"Build 6-month emergency fund",
			"Maximize retirement contributions",
			"Pay off debt systematically",
			"Diversify investments",
			"Create passive income stream",
		},
	},
	{
		ID:          "relationship",
		Name:        "Relationship & Marriage",
		Description: "Strengthen your bond and grow together",
		Suggestions: []string{
			"Weekly date night ritual",
			"Daily appreciation practice",
			"Annual couple's getaway",
			"Learn communication skills",
			"Support partner's dreams",
		},
	},
	{
		ID:          "career",
		Name:        "Career, Skills & Purpose",
		Description: "Grow professionally and find meaning",
		Suggestions: []string{
			"Define 5-year career vision",
			"Learn new skill quarterly",
			"Build professional network",
			"Maintain work-life balance",
			"Seek mentorship",
		},
	},
	{
		ID:          "lifestyle",
		Name:        "Lifestyle & Environment",
		Description: "Create a beautiful life and home",
		Suggestions: []string{
			"Declutter one room monthly",
			"Plan dream vacation",
			"Nurture meaningful friendships",
			"Pursue creative hobby",
			"Design peaceful home space",
		},
	},
	{
		ID:          "spirituality",
		Name:        "Spirituality & Values",
		Description: "Connect with your deeper purpose",
		Suggestions: []string{
			"Define core values",
			"Morning meditation practice",
			"Practice gratitude daily",
			"Volunteer monthly",
			"Reflect on life purpose",
		},
	},
}

// All returns the full pillar catalog in display order.
func All() []Pillar {
	out := make([]Pillar, len(catalog))
	copy(out, catalog)
	return out
}

// Get returns the pillar with the given ID.
func Get(id string) (Pillar, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Pillar{}, false
}

// IsValid reports whether the ID names one of the eight pillars.
func IsValid(id string) bool {
	_, ok := Get(id)
	return ok
}

// IDs returns the pillar IDs in display order.
func IDs() []string {
	ids := make([]string, len(catalog))
	for i, p := range catalog {
		ids[i] = p.ID
	}
	return ids
}
