package data

// Investment levels used by zone initiatives.
const (
	InvestHigh   = "High"
	InvestMedium = "Medium"
	InvestLow    = "Low"
)

// ZoneInitiative is one program or investment inside a strategic zone.
type ZoneInitiative struct {
	Name       string
	Action     string
	Investment string
}

// Zone is one of Geoffrey Moore's four Zone to Win zones applied to the
// institution's portfolio.
type Zone struct {
	Name        string
	Description string
	Initiatives []ZoneInitiative
}

// Zones holds the four zones in canonical order.
var Zones = []Zone{
	{
		Name:        "Performance Zone",
		Description: "Revenue maintenance and growth in existing strong programs. Focus on scaling proven programs that drive enrollment and tuition revenue.",
		Initiatives: []ZoneInitiative{
			{"Business Administration", "Expand online offerings, add MBA track", InvestHigh},
			{"Psychology", "Grow applied psychology tracks, add graduate options", InvestHigh},
			{"Engineering", "Strengthen co-op/internship pipeline, industry partnerships", InvestHigh},
			{"Health Sciences", "Launch graduate certificate, expand clinical partnerships", InvestHigh},
			{"Computer Information Systems", "Align with AI Institute, add cybersecurity track", InvestMedium},
			{"Exercise Physiology", "Develop sports medicine specializations", InvestMedium},
		},
	},
	{
		Name:        "Productivity Zone",
		Description: "Enabling investments for operational efficiency and effectiveness across academic and administrative support functions.",
		Initiatives: []ZoneInitiative{
			{"Advising System Overhaul", "Implement data-driven predictive advising platform", InvestHigh},
			{"Retention Programs", "First-Gen/Pell student intervention programs, Compass expansion", InvestHigh},
			{"IT Infrastructure", "LMS upgrade, data analytics platform, classroom technology", InvestMedium},
			{"Faculty Recruitment Package", "Housing assistance, salary competitiveness, remote work options", InvestMedium},
			{"Transfer Pathway Optimization", "Streamline articulation agreements with top feeder schools", InvestLow},
			{"Marketing & Communications", "Targeted digital recruitment, brand positioning refresh", InvestMedium},
		},
	},
	{
		Name:        "Incubation Zone",
		Description: "Disciplined experimentation with emerging academic, administrative, community, or external opportunities that could become future revenue streams.",
		Initiatives: []ZoneInitiative{
			{"AI Institute Expansion", "Corporate partnerships, research grants, certificate programs", InvestMedium},
			{"Online Degree Programs", "Pilot 2-3 fully online bachelor's completions (Business, Psychology)", InvestMedium},
			{"Micro-Credentials & Badges", "Stackable certificates in IT, sustainability, outdoor leadership", InvestLow},
			{"Dual Enrollment Expansion", "New partnerships with regional high schools and community colleges", InvestLow},
			{"Workforce Development Partnerships", "Employer-sponsored programs in healthcare, technology, outdoor industry", InvestLow},
		},
	},
	{
		Name:        "Transformation Zone",
		Description: "Strategic bets on future-defining innovations and new markets that ensure a thriving Academic Affairs at FLC over the long term.",
		Initiatives: []ZoneInitiative{
			{"Indigenous Education Hub", "National center for Indigenous higher education research and practice", InvestHigh},
			{"Sustainability & Climate Institute", "Leverage location and programs for interdisciplinary climate research center", InvestMedium},
			{"Experiential Learning Model", "Rebrand FLC as the premier outdoor experiential learning institution nationally", InvestMedium},
			{"Program Portfolio Restructuring", "Consolidate/transform Concern-quadrant humanities into interdisciplinary programs", InvestMedium},
		},
	},
}

// CrossFinding cites a Phase 1 or Phase 2 finding that bears on a zone
// initiative, either supporting the bet or flagging a risk.
type CrossFinding struct {
	Text   string
	Source string
}

// ZoneCrossReference links one initiative to the framework findings behind it.
type ZoneCrossReference struct {
	Supporting []CrossFinding
	Risks      []CrossFinding
}

// ZoneCrossReferences is keyed by initiative name. Initiatives without an
// entry render without commentary.
var ZoneCrossReferences = map[string]ZoneCrossReference{
	"Business Administration": {
		Supporting: []CrossFinding{
			{"Star quadrant: 5.8% SCH share with +4% two-year growth", "BCG Matrix"},
			{"Market Score 74 with Economics 78, recommended Grow", "Gray Associates"},
		},
		Risks: []CrossFinding{
			{"Online MBA competition from large universities is intensifying", "Porter's Five Forces"},
		},
	},
	"Psychology": {
		Supporting: []CrossFinding{
			{"Star quadrant: second-largest program with positive trajectory", "BCG Matrix"},
			{"High mission alignment with Grow recommendation", "Gray Associates"},
		},
	},
	"Engineering": {
		Supporting: []CrossFinding{
			{"Highest employment outlook score (92) in the portfolio", "Gray Associates"},
		},
		Risks: []CrossFinding{
			{"Specialized faculty scarcity in Durango raises supplier power", "Porter's Five Forces"},
		},
	},
	"Health Sciences": {
		Supporting: []CrossFinding{
			{"Market Score 76 with strong employment alignment (85)", "Gray Associates"},
			{"Graduate certificate identified as immediate opportunity", "SWOT (Opportunities)"},
		},
	},
	"Retention Programs": {
		Supporting: []CrossFinding{
			{"Retention 66.1% vs ~73% national average with persistent equity gaps", "SWOT (Weaknesses)"},
		},
		Risks: []CrossFinding{
			{"First-gen and Pell cohorts retain 4-5 points below total population", "Institutional Data"},
		},
	},
	"Online Degree Programs": {
		Supporting: []CrossFinding{
			{"Only 25 online offerings today, far below competitive portfolios", "SWOT (Weaknesses)"},
		},
		Risks: []CrossFinding{
			{"Threat of Substitutes rated 3.5/5 and rising", "Porter's Five Forces"},
		},
	},
	"AI Institute Expansion": {
		Supporting: []CrossFinding{
			{"AI Institute flagged as emerging technological strength", "PESTLE (Technological)"},
		},
		Risks: []CrossFinding{
			{"External grant funding is uncertain across scenarios", "Scenario Planning"},
		},
	},
	"Indigenous Education Hub": {
		Supporting: []CrossFinding{
			{"Unique mission serving 166 tribes is the strongest differentiator", "SWOT (Strengths)"},
			{"Federal tribal education funding available to leverage", "PESTLE (Political)"},
		},
	},
	"Program Portfolio Restructuring": {
		Supporting: []CrossFinding{
			{"Nine Concern-quadrant departments with declines up to -26%", "BCG Matrix"},
		},
		Risks: []CrossFinding{
			{"English and Mathematics still carry strong economics (80, 82)", "Gray Associates"},
		},
	},
}

// ZoneAllocation is a percentage split of resources across the four zones.
// The four shares always sum to 100.
type ZoneAllocation struct {
	Performance    int
	Productivity   int
	Incubation     int
	Transformation int
}

// Scenario is one of the three strategic planning scenarios.
type Scenario struct {
	Name             string
	Description      string
	EnrollmentTarget int
	RetentionTarget  float64
	GraduateTarget   int
	OnlineCourses    int
	NewPrograms      int
	Assumptions      []string
	Allocation       ZoneAllocation
}

// Scenarios holds the three scenarios in optimistic-to-conservative order.
var Scenarios = []Scenario{
	{
		Name:             "Optimistic",
		Description:      "Favorable market conditions, successful execution of all strategic initiatives, and strong institutional and state support.",
		EnrollmentTarget: 3800,
		RetentionTarget:  75.0,
		GraduateTarget:   250,
		OnlineCourses:    80,
		NewPrograms:      5,
		Assumptions: []string{
			"State funding increases 3-5% annually",
			"Successful launch of 3+ online degree programs",
			"AI Institute secures major grant funding",
			"Retention interventions close equity gaps by 50%",
			"Dual enrollment pipeline exceeds 350 students",
		},
		Allocation: ZoneAllocation{Performance: 40, Productivity: 25, Incubation: 20, Transformation: 15},
	},
	{
		Name:             "Most Likely",
		Description:      "Realistic constraints with incremental progress on initiatives, moderate state support, and steady but competitive market conditions.",
		EnrollmentTarget: 3550,
		RetentionTarget:  70.0,
		GraduateTarget:   200,
		OnlineCourses:    50,
		NewPrograms:      3,
		Assumptions: []string{
			"State funding flat or slight increase (0-2%)",
			"1-2 online programs launched successfully",
			"AI Institute grows but external funding uncertain",
			"Retention improves incrementally (2-3 pp)",
			"Dual enrollment grows to 280-300 students",
		},
		Allocation: ZoneAllocation{Performance: 45, Productivity: 30, Incubation: 15, Transformation: 10},
	},
	{
		Name:             "Conservative",
		Description:      "Challenging conditions including potential funding cuts, continued enrollment pressure, and increased competition, while maintaining core institutional strengths.",
		EnrollmentTarget: 3300,
		RetentionTarget:  67.0,
		GraduateTarget:   170,
		OnlineCourses:    35,
		NewPrograms:      1,
		Assumptions: []string{
			"State funding decreases 2-5%",
			"Online competition intensifies significantly",
			"Limited resources for new program launches",
			"Focus on protecting core programs and retention",
			"Accelerate program sunset reviews for cost savings",
		},
		Allocation: ZoneAllocation{Performance: 50, Productivity: 35, Incubation: 10, Transformation: 5},
	},
}
