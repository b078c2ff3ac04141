// Package data holds the static institutional records behind every
// dashboard tab. All analytical content is pre-baked here; nothing in this
// package reads files or mutates state. Edit the tables to update the
// dashboard without touching presentation code.
//
// Source legend:
//   - internal records come from FLC project documents (fact sheet,
//     enrollment overview, framework reports)
//   - methodology-sourced frameworks (Porter's, Gray Associates) apply
//     published scoring models to FLC institutional data
package data

// Institution captures the headline facts from the Fall 2025 fact sheet.
type Institution struct {
	Name                string
	Location            string
	Type                string
	TotalEnrollmentF24  int
	TotalEnrollmentF25  int
	UndergradF25        int
	GraduateF25         int
	FacultyFTE          int
	StaffFTE            int
	StudentFacultyRatio string
	AvgClassSize        int
	RetentionRateF24    float64
	PellEligiblePct     int
	FirstGenPct         int
	MinorityPct         int
	NativeAmericanPct   int
	InStatePct          float64
	OutOfStatePct       float64
}

// FLC is the institution under analysis.
var FLC = Institution{
	Name:                "Fort Lewis College",
	Location:            "Durango, Colorado",
	Type:                "Public Liberal Arts",
	TotalEnrollmentF24:  3544,
	TotalEnrollmentF25:  3457,
	UndergradF25:        3021,
	GraduateF25:         160,
	FacultyFTE:          239,
	StaffFTE:            358,
	StudentFacultyRatio: "15:1",
	AvgClassSize:        19,
	RetentionRateF24:    66.10,
	PellEligiblePct:     42,
	FirstGenPct:         43,
	MinorityPct:         52,
	NativeAmericanPct:   24,
	InStatePct:          42.1,
	OutOfStatePct:       57.9,
}
