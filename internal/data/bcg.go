package data

// BCG quadrant labels. The institutional variant uses "Concern" in place of
// the classic "Dog" quadrant.
const (
	QuadrantStar         = "Star"
	QuadrantCashCow      = "Cash Cow"
	QuadrantQuestionMark = "Question Mark"
	QuadrantConcern      = "Concern"
)

// BCGQuadrants lists the known quadrants in presentation order.
var BCGQuadrants = []string{QuadrantStar, QuadrantCashCow, QuadrantQuestionMark, QuadrantConcern}

// BCGDepartment places one academic department on the growth-share matrix:
// share of total student credit hours against two-year enrollment change.
type BCGDepartment struct {
	Department    string
	SCHPct        float64
	TwoYearChange float64
	Quadrant      string
}

// BCGDepartments holds all 22 plotted departments.
var BCGDepartments = []BCGDepartment{
	{"English", 10.0, -6.0, QuadrantCashCow},
	{"Mathematics", 8.5, -11.0, QuadrantCashCow},
	{"Health & Human Performance", 7.5, -3.0, QuadrantCashCow},
	{"Biology", 7.0, -14.5, QuadrantCashCow},
	{"Sociology", 6.0, -5.5, QuadrantCashCow},
	{"Performing Arts", 5.5, -3.0, QuadrantCashCow},
	{"Teacher Education", 5.8, -2.0, QuadrantCashCow},
	{"Physics & Engineering", 5.0, -1.0, QuadrantCashCow},
	{"Chemistry", 4.5, -4.0, QuadrantCashCow},
	{"Business Administration", 5.8, 4.0, QuadrantStar},
	{"Psychology", 6.0, 3.0, QuadrantStar},
	{"Accounting", 1.8, 12.0, QuadrantQuestionMark},
	{"History", 3.8, 3.0, QuadrantQuestionMark},
	{"Geosciences", 4.2, -15.5, QuadrantConcern},
	{"Art & Design", 2.5, -18.0, QuadrantConcern},
	{"Economics", 2.5, -24.0, QuadrantConcern},
	{"Political Science", 1.5, -26.0, QuadrantConcern},
	{"Anthropology", 2.5, -7.5, QuadrantConcern},
	{"Environment & Sustainability", 3.0, -8.0, QuadrantConcern},
	{"Marketing", 1.8, -8.0, QuadrantConcern},
	{"Adventure Education", 2.0, -10.0, QuadrantConcern},
	{"Philosophy", 2.2, -11.0, QuadrantConcern},
}

// BCGShareThreshold is the SCH% crosshair separating high from low share.
const BCGShareThreshold = 4.0

// BCGInsights summarizes the quadrant placement.
var BCGInsights = []string{
	"Stars (High Share, Growing): Business Administration and Psychology show strong market share AND growth - invest to maintain.",
	"Cash Cows (High Share, Declining): English, Math, Biology, HHP generate significant SCH but are declining - optimize efficiency.",
	"Question Marks (Low Share, Growing): Accounting and History show growth potential but small share - evaluate investment.",
	"Concern (Low Share, Declining): Political Science, Economics, Art & Design face both low share and steep declines - restructure or sunset.",
}
