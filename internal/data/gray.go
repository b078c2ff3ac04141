package data

// Gray Associates recommendation labels.
const (
	RecGrow         = "Grow"
	RecSustain      = "Sustain"
	RecTransform    = "Transform"
	RecEvaluate     = "Evaluate"
	RecSunsetReview = "Sunset Review"
)

// GrayRecommendations lists the known recommendation labels in display order.
var GrayRecommendations = []string{RecGrow, RecSustain, RecTransform, RecEvaluate, RecSunsetReview}

// GrayProgram is one program scored by the Gray Associates methodology.
// Market Score blends student demand (40%), employment outlook (40%), and
// competitive positioning (20%); Economics Score proxies contribution margin.
type GrayProgram struct {
	Program          string
	Enrollment       int
	StudentDemand    int
	Employment       int
	Competition      int
	MarketScore      int
	EconomicsScore   int
	MissionAlignment string
	Recommendation   string
}

// GrayPrograms holds all 23 scored programs.
var GrayPrograms = []GrayProgram{
	{"Business Administration", 298, 90, 85, 40, 74, 78, "Medium", RecGrow},
	{"Psychology", 227, 85, 70, 45, 68, 72, "High", RecGrow},
	{"Engineering", 207, 88, 92, 55, 79, 60, "High", RecGrow},
	{"Exercise Physiology", 163, 75, 80, 60, 72, 65, "High", RecGrow},
	{"Environmental Conservation & Mgmt", 133, 70, 65, 75, 68, 55, "High", RecSustain},
	{"Criminology & Justice Studies", 103, 72, 68, 55, 65, 70, "Medium", RecSustain},
	{"Environmental Science", 87, 68, 72, 70, 68, 50, "High", RecSustain},
	{"Health Sciences", 86, 78, 85, 65, 76, 62, "High", RecGrow},
	{"Adventure Education", 78, 65, 55, 85, 65, 45, "High", RecSustain},
	{"Computer Information Systems", 77, 82, 90, 50, 75, 68, "High", RecGrow},
	{"Biology", 70, 65, 60, 45, 57, 55, "High", RecSustain},
	{"English", 65, 45, 40, 40, 42, 80, "Medium", RecTransform},
	{"Mathematics", 55, 40, 55, 50, 47, 82, "Medium", RecTransform},
	{"Sociology", 50, 55, 50, 50, 52, 70, "Medium", RecSustain},
	{"Art & Design", 40, 35, 30, 60, 39, 40, "Medium", RecSunsetReview},
	{"Chemistry", 45, 42, 55, 55, 50, 48, "Medium", RecSustain},
	{"Teacher Education", 48, 60, 65, 45, 58, 55, "High", RecSustain},
	{"Economics", 30, 38, 45, 50, 43, 60, "Low", RecEvaluate},
	{"Political Science", 25, 30, 35, 55, 38, 58, "Low", RecSunsetReview},
	{"Accounting", 35, 70, 75, 55, 67, 72, "Medium", RecGrow},
	{"History", 32, 35, 30, 60, 39, 65, "Medium", RecEvaluate},
	{"Philosophy", 20, 20, 25, 70, 34, 75, "Low", RecEvaluate},
	{"Anthropology", 22, 28, 30, 65, 38, 50, "Medium", RecEvaluate},
}

// GrayInsights summarizes the portfolio classification.
var GrayInsights = []string{
	"GROW programs (high market + strong economics): Business Admin, Psychology, Engineering, Health Sciences, Computer Info Systems, Exercise Physiology, Accounting.",
	"SUSTAIN programs (solid market, needs efficiency): Environmental programs, Criminology, Biology, Sociology, Teacher Education.",
	"TRANSFORM programs (weak market, strong economics): English and Mathematics generate revenue but face enrollment pressure - innovate delivery.",
	"EVALUATE/SUNSET programs (weak market + economics): Political Science, Philosophy, and Art & Design need strategic review for restructuring or phase-out.",
}
