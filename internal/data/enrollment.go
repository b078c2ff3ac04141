package data

// EnrollmentYear is one fall-census row of the enrollment history.
// GradCount is -1 for years before the graduate division reported.
type EnrollmentYear struct {
	Year       int
	Headcount  int
	Undergrad  int
	Graduate   int
	FirstYear  int
	Continuing int
}

// EnrollmentHistory is the ten-year fall census series.
var EnrollmentHistory = []EnrollmentYear{
	{Year: 2016, Headcount: 3595, Undergrad: 3498, Graduate: -1, FirstYear: 775, Continuing: 2307},
	{Year: 2017, Headcount: 3356, Undergrad: 3204, Graduate: -1, FirstYear: 705, Continuing: 2132},
	{Year: 2018, Headcount: 3335, Undergrad: 3144, Graduate: 10, FirstYear: 754, Continuing: 2024},
	{Year: 2019, Headcount: 3308, Undergrad: 3092, Graduate: 32, FirstYear: 760, Continuing: 2010},
	{Year: 2020, Headcount: 3442, Undergrad: 3207, Graduate: 47, FirstYear: 812, Continuing: 2036},
	{Year: 2021, Headcount: 3550, Undergrad: 3263, Graduate: 79, FirstYear: 960, Continuing: 1960},
	{Year: 2022, Headcount: 3360, Undergrad: 3114, Graduate: 94, FirstYear: 850, Continuing: 2021},
	{Year: 2023, Headcount: 3425, Undergrad: 3075, Graduate: 107, FirstYear: 815, Continuing: 2009},
	{Year: 2024, Headcount: 3544, Undergrad: 3077, Graduate: 92, FirstYear: 751, Continuing: 2055},
	{Year: 2025, Headcount: 3457, Undergrad: 3021, Graduate: 105, FirstYear: 777, Continuing: 2009},
}

// GraduateEnrollment is the extended graduate headcount series, which starts
// earlier than the main history and includes the Fall 2025 census of 160.
var GraduateEnrollment = []struct {
	Year  int
	Count int
}{
	{2014, 25}, {2015, 15}, {2016, 10}, {2017, 32}, {2018, 47}, {2019, 79},
	{2020, 94}, {2021, 107}, {2022, 92}, {2023, 105}, {2024, 152}, {2025, 160},
}

// RetentionYear is one fall-to-fall FTFT retention observation.
type RetentionYear struct {
	Year int
	Rate float64
}

// RetentionHistory tracks first-time full-time retention by cohort year.
var RetentionHistory = []RetentionYear{
	{2015, 66.34}, {2016, 58.88}, {2017, 61.90}, {2018, 62.33}, {2019, 68.10},
	{2020, 54.27}, {2021, 59.96}, {2022, 62.85}, {2023, 66.84}, {2024, 66.10},
}

// NationalAvgRetention is the public four-year FTFT benchmark used as a
// reference line on the retention trend chart.
const NationalAvgRetention = 73.0

// RetentionByGroup breaks the Fall 2024 cohort retention down by demographic.
var RetentionByGroup = []struct {
	Group string
	Rate  float64
}{
	{"Total Population", 66.1},
	{"First Generation", 60.9},
	{"Pell Eligible", 61.7},
	{"Students of Color", 62.6},
}
