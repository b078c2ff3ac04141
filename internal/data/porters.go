package data

// ForceIndicator is one measured indicator supporting a force rating.
type ForceIndicator struct {
	Name  string
	Value string
	Trend string // Increasing, Decreasing, Stable, Improving
}

// PorterForce is one of the five competitive forces with its intensity
// rating and supporting indicators.
type PorterForce struct {
	Name        string
	Rating      string
	Score       float64 // 1-5
	Description string
	Indicators  []ForceIndicator
}

// PorterForces holds the five forces in presentation order. Methodology from
// published research, metrics from FLC institutional data.
var PorterForces = []PorterForce{
	{
		Name:        "Competitive Rivalry",
		Rating:      "High",
		Score:       4.5,
		Description: "Intense competition from CU system, CSU, Western Colorado, and online programs",
		Indicators: []ForceIndicator{
			{"Number of competing institutions in CO", "30+", "Increasing"},
			{"FLC market share of CO HS graduates", "~2%", "Stable"},
			{"Enrollment change vs peers", "-2.5%", "Declining"},
			{"Tuition discount rate pressure", "High", "Increasing"},
			{"Online program competition", "Significant", "Increasing"},
		},
	},
	{
		Name:        "Threat of New Entrants",
		Rating:      "Medium-High",
		Score:       3.5,
		Description: "Online programs and micro-credentials lowering traditional barriers to entry",
		Indicators: []ForceIndicator{
			{"Accreditation barriers", "High", "Stable"},
			{"Online program launches (competing)", "Growing", "Increasing"},
			{"Boot camp / certificate programs", "Moderate", "Increasing"},
			{"Community college expansion", "Active", "Increasing"},
			{"Capital requirements barrier", "Moderate", "Decreasing"},
		},
	},
	{
		Name:        "Bargaining Power of Students",
		Rating:      "High",
		Score:       4.0,
		Description: "Students have many choices; FLC must compete on value, experience, and outcomes",
		Indicators: []ForceIndicator{
			{"Yield rate (confirmed to enrolled)", "~87%", "Improving"},
			{"Summer melt rate (FY)", "12.9%", "Improving"},
			{"Transfer-out competition", "Moderate", "Stable"},
			{"Price sensitivity", "High", "Increasing"},
			{"Information transparency", "High", "Increasing"},
		},
	},
	{
		Name:        "Bargaining Power of Suppliers",
		Rating:      "Medium-High",
		Score:       3.5,
		Description: "Faculty recruitment challenging due to remote location and salary competition",
		Indicators: []ForceIndicator{
			{"Faculty with terminal degrees", "98%", "Stable"},
			{"Durango cost of living", "High", "Increasing"},
			{"Specialized faculty scarcity", "Moderate", "Increasing"},
			{"Technology vendor dependency", "Moderate", "Stable"},
			{"Salary competitiveness vs peers", "Below avg", "Stable"},
		},
	},
	{
		Name:        "Threat of Substitutes",
		Rating:      "Medium-High",
		Score:       3.5,
		Description: "Online degrees, certificates, and workforce programs offer alternatives to 4-year degree",
		Indicators: []ForceIndicator{
			{"Online degree program growth", "Rapid", "Increasing"},
			{"Micro-credential adoption", "Growing", "Increasing"},
			{"Community college pathways", "Strong", "Increasing"},
			{"Employer credential acceptance", "Expanding", "Increasing"},
			{"FLC experiential differentiation", "Strong", "Stable"},
		},
	},
}

// PorterInsights are the strategic implications shown below the force cards.
var PorterInsights = []string{
	"Overall competitive intensity is HIGH - FLC operates in a challenging market requiring clear differentiation.",
	"FLC's strongest defensive positions: unique Native American mission, outdoor recreation lifestyle, and small liberal arts experience.",
	"Greatest threats: online competition eroding geographic advantage, student price sensitivity, and faculty recruitment in Durango.",
	"Strategic imperative: Leverage unique mission and location as competitive moats while expanding program relevance.",
}
