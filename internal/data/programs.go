package data

// ProgramEnrollment is one row of the top-majors table from the fact sheet.
type ProgramEnrollment struct {
	Program    string
	Enrollment int
	PctOfTotal int
}

// TopMajors lists the ten largest programs by Fall 2025 enrollment.
var TopMajors = []ProgramEnrollment{
	{"Business Administration", 298, 9},
	{"Psychology", 227, 7},
	{"Engineering", 207, 6},
	{"Exercise Physiology", 163, 5},
	{"Environmental Conservation & Mgmt", 133, 4},
	{"Criminology & Justice Studies", 103, 3},
	{"Environmental Science", 87, 3},
	{"Health Sciences", 86, 3},
	{"Adventure Education", 78, 2},
	{"Computer Information Systems", 77, 2},
}

// ProgramDegrees is one program's conferral count.
type ProgramDegrees struct {
	Program string
	Count   int
}

// DegreesAwarded lists degrees conferred by program for the most recent
// academic year.
var DegreesAwarded = []ProgramDegrees{
	{"Psychology", 59}, {"Business Administration", 55}, {"Environmental Studies", 37},
	{"Biology", 33}, {"Exercise Science", 26}, {"Art", 24}, {"Public Health", 24},
	{"Accounting", 15}, {"Engineering", 14}, {"Criminology", 13},
	{"Environmental Science", 13}, {"Outdoor Education", 13},
	{"Computer & Info Technology", 12}, {"Economics", 12},
	{"English", 11}, {"Elementary Teacher Education", 11},
	{"Chemistry", 11}, {"Sports & Fitness Mgmt", 11},
	{"Sociology", 22}, {"Am Indian/Native Amer Studies", 8},
}
