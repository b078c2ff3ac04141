package data

// Impact and trend labels used across the PESTLE and Porter's tables.
const (
	ImpactHigh   = "High"
	ImpactMedium = "Medium"
	ImpactLow    = "Low"
)

// PESTLECategory is one of the six macro-environmental categories, with its
// assessed impact, directional trend, contributing factors, and the
// opportunities the factors open up.
type PESTLECategory struct {
	Name          string
	Impact        string
	ImpactScore   int // 1-5
	Trend         string
	Factors       []string
	Opportunities []string
}

// PESTLE holds the six categories in canonical order.
var PESTLE = []PESTLECategory{
	{
		Name:        "Political",
		Impact:      ImpactHigh,
		ImpactScore: 4,
		Trend:       "Negative",
		Factors: []string{
			"Colorado state funding volatility for higher education",
			"Federal financial aid policy changes (Pell Grant, Title IV)",
			"Native American tuition waiver mandate (federal obligation)",
			"State performance-based funding models",
			"Political pressure on DEI programs in public institutions",
		},
		Opportunities: []string{
			"Leverage federal tribal education funding",
			"Advocate for rural institution support in state legislature",
		},
	},
	{
		Name:        "Economic",
		Impact:      ImpactHigh,
		ImpactScore: 5,
		Trend:       "Mixed",
		Factors: []string{
			"Declining state appropriations per student",
			"Rising tuition sensitivity among families",
			"Durango cost of living affecting faculty recruitment",
			"Native American tuition waiver revenue impact (~37% of students)",
			"Economic diversification in Four Corners region",
			"Student debt burden concerns nationally",
		},
		Opportunities: []string{
			"Grow graduate programs for additional revenue",
			"Expand dual enrollment pipeline",
			"Develop workforce-aligned certificates",
		},
	},
	{
		Name:        "Social",
		Impact:      ImpactHigh,
		ImpactScore: 4,
		Trend:       "Mixed",
		Factors: []string{
			"Declining college-going rates nationally",
			"Changing student expectations (career-focused outcomes)",
			"Growing demand for flexible/hybrid learning",
			"FLC unique mission serving Native American students (166 tribes)",
			"First-generation students (43%) need additional support",
			"Mental health and wellness demands increasing",
		},
		Opportunities: []string{
			"Outdoor recreation lifestyle as recruitment differentiator",
			"Indigenous education leadership positioning",
			"Experiential learning emphasis",
		},
	},
	{
		Name:        "Technological",
		Impact:      ImpactMedium,
		ImpactScore: 3,
		Trend:       "Opportunity",
		Factors: []string{
			"AI disruption in curriculum and pedagogy",
			"Need for technology infrastructure upgrades",
			"Online/hybrid program delivery expectations",
			"Data analytics for student success and retention",
			"AI Institute at FLC as emerging strength",
		},
		Opportunities: []string{
			"AI Institute partnerships and growth",
			"Technology-enhanced experiential learning",
			"Online graduate program expansion",
		},
	},
	{
		Name:        "Legal",
		Impact:      ImpactMedium,
		ImpactScore: 3,
		Trend:       "Stable",
		Factors: []string{
			"Accreditation compliance requirements (HLC)",
			"Title IX and student safety regulations",
			"Federal reporting mandates (IPEDS)",
			"Employment law for faculty/staff",
			"Tribal sovereignty considerations in partnerships",
		},
		Opportunities: []string{
			"Streamlined accreditation through proactive compliance",
			"Tribal education partnership agreements",
		},
	},
	{
		Name:        "Environmental",
		Impact:      ImpactMedium,
		ImpactScore: 3,
		Trend:       "Opportunity",
		Factors: []string{
			"Climate change impacts on Durango/mountain region",
			"Campus sustainability expectations from students",
			"Environmental science as program strength",
			"Outdoor recreation economy dependency on climate",
			"Wildfire risk to campus and community",
		},
		Opportunities: []string{
			"Position as leader in sustainability education",
			"Climate resilience research opportunities",
			"Green campus initiatives for recruitment",
		},
	},
}
