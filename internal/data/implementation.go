package data

// Initiative is one Phase 2 strategic initiative under implementation
// tracking. Dates are YYYY-MM-DD.
type Initiative struct {
	ID            string
	Initiative    string
	Phase         string
	Framework     string // originating framework(s)
	Department    string
	Priority      string // Low, Medium, High
	Status        string
	CompletionPct int
	StartDate     string
	TargetDate    string
	Owner         string
}

// Initiatives holds the fifteen Phase 2 initiatives.
var Initiatives = []Initiative{
	{"SI-001", "Expand Business Administration online offerings", "Phase 2", "BCG / Gray Associates", "Business", "High", StatusInProgress, 35, "2025-09-01", "2026-08-01", "Dean of Business"},
	{"SI-002", "Launch Health Sciences graduate certificate", "Phase 2", "Gray Associates", "Health Sciences", "High", "Planning", 10, "2025-11-01", "2026-08-01", "Dean of Health Sciences"},
	{"SI-003", "Restructure Environmental Science/Studies programs", "Phase 2", "BCG / Gray Associates", "Environment & Sustainability", "High", StatusInProgress, 25, "2025-09-01", "2026-12-01", "Provost"},
	{"SI-004", "Develop AI Institute partnerships and curriculum", "Phase 2", "PESTLE", "Computer Science / AI", "High", "Planning", 15, "2025-10-01", "2027-01-01", "AI Institute Director"},
	{"SI-005", "Create Engineering co-op/internship pipeline", "Phase 2", "Porter's / Gray Associates", "Engineering", "Medium", StatusNotStarted, 0, "2026-03-01", "2026-12-01", "Dean of Engineering"},
	{"SI-006", "Implement retention intervention for First-Gen students", "Phase 2", "PESTLE / Institutional Data", "Student Affairs", "High", StatusInProgress, 40, "2025-08-01", "2026-05-01", "VP Student Affairs"},
	{"SI-007", "Review and consolidate low-enrollment humanities programs", "Phase 2", "BCG / Gray Associates", "Arts & Humanities", "Medium", "Planning", 10, "2025-11-01", "2026-12-01", "Provost"},
	{"SI-008", "Expand dual enrollment feeder pipeline", "Phase 2", "Institutional Data", "Enrollment Management", "Medium", StatusInProgress, 30, "2025-08-01", "2026-08-01", "VP Enrollment"},
	{"SI-009", "Develop outdoor recreation industry partnerships", "Phase 2", "Porter's Five Forces", "Adventure Education", "Medium", StatusNotStarted, 0, "2026-01-01", "2026-08-01", "Dean of Education"},
	{"SI-010", "Create data-driven advising system", "Phase 2", "PESTLE / Institutional Data", "Academic Affairs", "High", "Planning", 20, "2025-10-01", "2026-05-01", "Provost"},
	{"SI-011", "Launch transfer-friendly marketing campaign", "Phase 2", "Porter's Five Forces", "Enrollment Management", "Medium", StatusInProgress, 45, "2025-09-01", "2026-03-01", "VP Enrollment"},
	{"SI-012", "Pilot competency-based credentials in IT", "Phase 2", "Gray Associates / Porter's", "Computer Info Systems", "Low", StatusNotStarted, 0, "2026-06-01", "2027-01-01", "Dept Chair CIS"},
	{"SI-013", "Strengthen Native American student support services", "Phase 2", "PESTLE / Mission", "Student Affairs", "High", StatusInProgress, 50, "2025-08-01", "2026-08-01", "VP Student Affairs"},
	{"SI-014", "Develop faculty recruitment incentive package", "Phase 2", "Porter's Five Forces", "Academic Affairs", "Medium", StatusNotStarted, 0, "2026-01-01", "2026-08-01", "VP Academic Affairs"},
	{"SI-015", "Establish program-level KPI dashboard", "Phase 2", "All Frameworks", "Provost Office", "High", "Planning", 15, "2025-10-01", "2026-03-01", "Provost"},
}

// Phase2Milestone is one checkpoint in the Phase 2 implementation plan.
type Phase2Milestone struct {
	ID         string
	Milestone  string
	TargetDate string
	Status     string
	Notes      string
}

// Phase2Milestones holds the ten implementation checkpoints.
var Phase2Milestones = []Phase2Milestone{
	{"MS-001", "Phase 1 Analysis Complete", "2025-12-15", StatusComplete, "BCG, PESTLE, Porter's, Gray Associates analyses delivered"},
	{"MS-002", "Board Presentation of Findings", "2026-01-20", StatusComplete, "Presented to Board of Trustees at January retreat"},
	{"MS-003", "Implementation Plans Approved", "2026-02-15", StatusInProgress, "Department chairs reviewing implementation details"},
	{"MS-004", "Q1 Progress Review", "2026-03-31", StatusUpcoming, "Scheduled for March 31"},
	{"MS-005", "Retention Intervention Pilot Launch", "2026-02-01", StatusInProgress, "First-gen student cohort identified, mentors assigned"},
	{"MS-006", "Online Program Proposal Submitted", "2026-03-01", StatusInProgress, "Business Admin online MBA proposal in review"},
	{"MS-007", "Dual Enrollment Partnerships Signed", "2026-04-15", StatusNotStarted, "Target: San Juan College, Pueblo CC, Red Rocks CC"},
	{"MS-008", "Mid-Year Progress Report", "2026-06-30", StatusUpcoming, "All initiatives report progress mid-year"},
	{"MS-009", "Program Restructuring Plans Finalized", "2026-05-01", StatusNotStarted, "Environmental programs and humanities consolidation"},
	{"MS-010", "Year 1 Implementation Review", "2026-08-15", StatusUpcoming, "Full assessment of Year 1 outcomes"},
}

// BudgetLine tracks allocated versus spent budget for one investment
// category.
type BudgetLine struct {
	Category   string
	Allocated  int
	Spent      int
	Department string
}

// ResourceAllocation holds the implementation budget lines in dollars.
var ResourceAllocation = []BudgetLine{
	{"Faculty Hiring (STEM/Health)", 450000, 120000, "Academic Affairs"},
	{"Online Program Development", 300000, 85000, "Academic Affairs"},
	{"Student Support Services", 250000, 150000, "Student Affairs"},
	{"Technology Infrastructure", 200000, 60000, "IT"},
	{"Marketing & Recruitment", 350000, 200000, "Enrollment Management"},
	{"Dual Enrollment Expansion", 150000, 45000, "Academic Affairs"},
	{"Faculty Development", 100000, 30000, "Provost Office"},
	{"Data Analytics Platform", 125000, 50000, "Institutional Research"},
}
