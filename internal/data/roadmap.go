package data

// Milestone status labels.
const (
	StatusComplete   = "Complete"
	StatusInProgress = "In Progress"
	StatusNotStarted = "Not Started"
	StatusUpcoming   = "Upcoming"
)

// RoadmapMilestone is one entry on the 2025-2027 implementation timeline.
// Dates are YYYY-MM-DD.
type RoadmapMilestone struct {
	ID        string
	Milestone string
	Phase     string
	StartDate string
	TargetDate string
	Status    string
	Zone      string // Performance, Productivity, Incubation, Transformation, or All
	Owner     string
}

// RoadmapMilestones holds the twenty roadmap milestones in timeline order.
var RoadmapMilestones = []RoadmapMilestone{
	{"RM-001", "Phase 1 Framework Analyses Complete", "Phase 1", "2025-09-01", "2025-12-15", StatusComplete, "All", "Consulting Team"},
	{"RM-002", "SWOT Synthesis Delivered to Provost", "Phase 2", "2025-12-01", "2026-01-15", StatusComplete, "All", "Provost"},
	{"RM-003", "Zone to Win Scenarios Presented to Board", "Phase 3", "2026-01-15", "2026-02-01", StatusInProgress, "All", "Provost/President"},
	{"RM-004", "Program Sunset Review Initiated (Concern programs)", "Phase 3", "2026-02-01", "2026-05-01", StatusInProgress, "Performance", "Provost"},
	{"RM-005", "Retention Intervention Pilot Launched", "Phase 3", "2026-02-01", "2026-03-01", StatusInProgress, "Productivity", "VP Student Affairs"},
	{"RM-006", "Online Program Task Force Established", "Phase 3", "2026-02-15", "2026-03-15", StatusInProgress, "Incubation", "VP Academic Affairs"},
	{"RM-007", "AI Institute Partnership MOU Signed", "Phase 3", "2026-03-01", "2026-06-01", StatusNotStarted, "Incubation", "AI Institute Director"},
	{"RM-008", "Dual Enrollment Expansion Agreements (3 schools)", "Phase 3", "2026-03-15", "2026-05-15", StatusNotStarted, "Incubation", "VP Enrollment"},
	{"RM-009", "Faculty Recruitment Incentive Package Approved", "Phase 3", "2026-03-01", "2026-05-01", StatusNotStarted, "Productivity", "VP Academic Affairs"},
	{"RM-010", "Business Admin Online MBA Proposal Submitted", "Phase 3", "2026-04-01", "2026-06-01", StatusNotStarted, "Performance", "Dean of Business"},
	{"RM-011", "Q1 KPI Review & Course Correction", "Phase 3", "2026-04-01", "2026-04-30", StatusUpcoming, "All", "Provost"},
	{"RM-012", "Indigenous Education Hub Feasibility Study", "Phase 3", "2026-04-15", "2026-08-01", StatusNotStarted, "Transformation", "Provost"},
	{"RM-013", "Sustainability Institute Concept Paper", "Phase 3", "2026-05-01", "2026-08-01", StatusNotStarted, "Transformation", "Dean of Sciences"},
	{"RM-014", "Mid-Year Strategic Progress Report", "Phase 3", "2026-06-01", "2026-07-01", StatusUpcoming, "All", "Provost"},
	{"RM-015", "Program Restructuring Plans Finalized", "Phase 3", "2026-06-15", "2026-08-15", StatusNotStarted, "Performance", "Provost"},
	{"RM-016", "Year 1 Online Program Enrollment Results", "Phase 3", "2026-09-15", "2026-11-01", StatusUpcoming, "Incubation", "VP Academic Affairs"},
	{"RM-017", "Budget Reallocation Based on Zone Performance", "Phase 3", "2026-10-01", "2026-11-15", StatusUpcoming, "All", "CFO/Provost"},
	{"RM-018", "Year 1 Comprehensive Implementation Review", "Phase 3", "2026-12-01", "2027-01-15", StatusUpcoming, "All", "President/Provost"},
	{"RM-019", "Year 2 Strategic Plan Refinement", "Phase 3", "2027-01-15", "2027-03-01", StatusUpcoming, "All", "Provost"},
	{"RM-020", "Board Presentation: 2-Year Progress & Future Direction", "Phase 3", "2027-06-01", "2027-07-01", StatusUpcoming, "All", "President"},
}

// RoadmapKPI tracks one key performance indicator from baseline through
// stretch target. For gap-style KPIs (unit "pp") improvement means decrease.
type RoadmapKPI struct {
	KPI           string
	Category      string
	Baseline      float64
	Year1Target   float64
	Year2Target   float64
	StretchTarget float64
	Unit          string
	Measurement   string
}

// RoadmapKPIs holds the twelve tracked indicators.
var RoadmapKPIs = []RoadmapKPI{
	{"Total Enrollment", "Enrollment", 3457, 3500, 3600, 3800, "students", "Fall census"},
	{"FTFT Retention Rate", "Retention", 66.1, 68.0, 70.0, 75.0, "%", "Fall-to-Fall FTFT"},
	{"Graduate Enrollment", "Enrollment", 160, 180, 200, 250, "students", "Fall census"},
	{"First-Year Class Size", "Enrollment", 777, 800, 830, 870, "students", "Fall census"},
	{"Degrees Awarded", "Outcomes", 489, 500, 520, 550, "degrees", "Annual"},
	{"Online Course Offerings", "Growth", 25, 40, 60, 80, "courses", "Fall semester"},
	{"Dual Enrollment Students", "Growth", 235, 270, 300, 350, "students", "Fall census"},
	{"Transfer Students", "Enrollment", 190, 200, 215, 240, "students", "Fall census"},
	{"First-Gen Retention Gap", "Equity", 5.2, 4.0, 3.0, 2.0, "pp", "Total pop minus First-Gen"},
	{"Native American Retention Rate", "Equity", 61.0, 63.0, 66.0, 70.0, "%", "Fall-to-Fall AIAN"},
	{"Programs in Grow/Sustain Status", "Portfolio Health", 14, 16, 17, 19, "programs", "Gray Associates assessment"},
	{"Program Completion Rate", "Outcomes", 42, 44, 47, 50, "%", "6-year rate"},
}

// Improving reports whether a candidate value is an improvement over the
// baseline for this KPI. Gap KPIs (percentage points of deficit) improve
// downward; everything else improves upward.
func (k RoadmapKPI) Improving(value float64) bool {
	if k.Unit == "pp" {
		return value <= k.Baseline
	}
	return value >= k.Baseline
}

// Risk is one entry in the risk register with its mitigation strategy.
type Risk struct {
	Risk        string
	Probability string // Low, Medium, High
	Impact      string // Low, Medium, High
	Mitigation  string
	Owner       string
}

// Risks holds the eight tracked strategic risks.
var Risks = []Risk{
	{
		Risk:        "State funding cut exceeds 5%",
		Probability: "Medium",
		Impact:      "High",
		Mitigation:  "Diversify revenue: grow graduate programs, online offerings, and auxiliary revenue. Build 6-month operating reserve.",
		Owner:       "CFO",
	},
	{
		Risk:        "Online program launch delays",
		Probability: "Medium",
		Impact:      "Medium",
		Mitigation:  "Phase launches incrementally; start with hybrid delivery before full online. Maintain parallel in-person tracks.",
		Owner:       "VP Academic Affairs",
	},
	{
		Risk:        "Key faculty departures",
		Probability: "High",
		Impact:      "Medium",
		Mitigation:  "Implement faculty retention package (housing, salary). Build succession plans for critical positions.",
		Owner:       "VP Academic Affairs",
	},
	{
		Risk:        "Enrollment falls below 3,200",
		Probability: "Low",
		Impact:      "High",
		Mitigation:  "Activate emergency recruitment campaign. Accelerate dual enrollment and transfer pipelines.",
		Owner:       "VP Enrollment",
	},
	{
		Risk:        "Retention drops below 62%",
		Probability: "Low",
		Impact:      "High",
		Mitigation:  "Scale Compass program. Deploy early-alert system. Increase advisor-to-student ratio for at-risk populations.",
		Owner:       "VP Student Affairs",
	},
	{
		Risk:        "AI Institute funding not secured",
		Probability: "Medium",
		Impact:      "Medium",
		Mitigation:  "Pursue alternative funding (NSF, private sector). Scale down to pilot-size if grants not secured.",
		Owner:       "AI Institute Director",
	},
	{
		Risk:        "Political pressure on DEI programs",
		Probability: "High",
		Impact:      "High",
		Mitigation:  "Frame programs under student success and institutional mission. Diversify terminology while maintaining commitment.",
		Owner:       "President/General Counsel",
	},
	{
		Risk:        "Community college competition intensifies",
		Probability: "Medium",
		Impact:      "Medium",
		Mitigation:  "Differentiate on residential experience, outdoor lifestyle, and 4-year degree completion. Strengthen transfer articulation.",
		Owner:       "VP Enrollment",
	},
}

// RiskLevelScore maps a Low/Medium/High label to its 1-3 numeric score.
// Unknown labels score 0.
func RiskLevelScore(level string) int {
	switch level {
	case "Low":
		return 1
	case "Medium":
		return 2
	case "High":
		return 3
	}
	return 0
}

// Score returns probability x impact on the 1-9 risk matrix.
func (r Risk) Score() int {
	return RiskLevelScore(r.Probability) * RiskLevelScore(r.Impact)
}
