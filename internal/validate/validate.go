// Package validate checks the static data store for internal consistency:
// unique record IDs, parseable date ranges, allocations that sum to 100,
// and labels drawn from the known vocabularies. It produces detailed
// findings with fix suggestions rather than stopping at the first error.
package validate

import (
	"fmt"
	"time"

	"github.com/fortlewis-ir/summit/internal/data"
	"github.com/fortlewis-ir/summit/internal/docs"
)

// Finding is a single consistency issue in the data store.
type Finding struct {
	Record     string // record identifier, e.g. "RM-003" or "scenario Optimistic"
	Field      string // offending field (empty for record-level issues)
	Message    string // what's wrong
	Suggestion string // how to fix it
}

// Error implements the error interface.
func (f *Finding) Error() string {
	if f.Field != "" {
		return fmt.Sprintf("%s.%s: %s", f.Record, f.Field, f.Message)
	}
	return fmt.Sprintf("%s: %s", f.Record, f.Message)
}

// Result contains the outcome of a data store check.
type Result struct {
	Checked  int // records examined
	Findings []Finding
}

// Valid returns true if no findings were recorded.
func (r *Result) Valid() bool {
	return len(r.Findings) == 0
}

func (r *Result) add(record, field, message, suggestion string) {
	r.Findings = append(r.Findings, Finding{
		Record:     record,
		Field:      field,
		Message:    message,
		Suggestion: suggestion,
	})
}

// DataStore runs every check against the compiled-in data tables.
func DataStore() *Result {
	result := &Result{}
	checkMilestones(result)
	checkInitiatives(result)
	checkScenarios(result)
	checkGrayPrograms(result)
	checkBCGDepartments(result)
	checkKPIs(result)
	checkRisks(result)
	checkDeliverables(result)
	return result
}

// checkDate verifies a YYYY-MM-DD string and returns the parsed time.
func checkDate(result *Result, record, field, value string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		result.add(record, field,
			fmt.Sprintf("invalid date %q", value),
			"use YYYY-MM-DD format")
		return time.Time{}, false
	}
	return t, true
}

func checkMilestones(result *Result) {
	seen := map[string]bool{}
	for _, m := range data.RoadmapMilestones {
		result.Checked++
		if seen[m.ID] {
			result.add(m.ID, "", "duplicate milestone ID", "assign a unique RM-NNN identifier")
		}
		seen[m.ID] = true

		start, okS := checkDate(result, m.ID, "StartDate", m.StartDate)
		target, okT := checkDate(result, m.ID, "TargetDate", m.TargetDate)
		if okS && okT && target.Before(start) {
			result.add(m.ID, "TargetDate",
				fmt.Sprintf("target %s precedes start %s", m.TargetDate, m.StartDate),
				"swap the dates or correct the target")
		}
		if !knownStatus(m.Status) {
			result.add(m.ID, "Status",
				fmt.Sprintf("unknown status %q", m.Status),
				"use Complete, In Progress, Not Started, or Upcoming")
		}
	}
}

func checkInitiatives(result *Result) {
	seen := map[string]bool{}
	for _, ini := range data.Initiatives {
		result.Checked++
		if seen[ini.ID] {
			result.add(ini.ID, "", "duplicate initiative ID", "assign a unique SI-NNN identifier")
		}
		seen[ini.ID] = true

		if ini.CompletionPct < 0 || ini.CompletionPct > 100 {
			result.add(ini.ID, "CompletionPct",
				fmt.Sprintf("completion %d out of range", ini.CompletionPct),
				"use a 0-100 percentage")
		}
		start, okS := checkDate(result, ini.ID, "StartDate", ini.StartDate)
		target, okT := checkDate(result, ini.ID, "TargetDate", ini.TargetDate)
		if okS && okT && target.Before(start) {
			result.add(ini.ID, "TargetDate",
				fmt.Sprintf("target %s precedes start %s", ini.TargetDate, ini.StartDate),
				"swap the dates or correct the target")
		}
	}
}

func checkScenarios(result *Result) {
	for _, s := range data.Scenarios {
		result.Checked++
		record := "scenario " + s.Name
		sum := s.Allocation.Performance + s.Allocation.Productivity +
			s.Allocation.Incubation + s.Allocation.Transformation
		if sum != 100 {
			result.add(record, "Allocation",
				fmt.Sprintf("zone allocation sums to %d", sum),
				"zone percentages must total exactly 100")
		}
		if s.EnrollmentTarget <= 0 {
			result.add(record, "EnrollmentTarget", "non-positive enrollment target", "set a positive target")
		}
	}
}

func checkGrayPrograms(result *Result) {
	known := map[string]bool{}
	for _, rec := range data.GrayRecommendations {
		known[rec] = true
	}
	seen := map[string]bool{}
	for _, p := range data.GrayPrograms {
		result.Checked++
		if seen[p.Program] {
			result.add(p.Program, "", "duplicate program", "each program may appear once in the scorecard")
		}
		seen[p.Program] = true
		if !known[p.Recommendation] {
			result.add(p.Program, "Recommendation",
				fmt.Sprintf("unknown recommendation %q", p.Recommendation),
				"use Grow, Sustain, Transform, Evaluate, or Sunset Review")
		}
		for field, score := range map[string]int{
			"StudentDemand": p.StudentDemand,
			"Employment":    p.Employment,
			"Competition":   p.Competition,
			"MarketScore":   p.MarketScore,
			"Economics":     p.EconomicsScore,
		} {
			if score < 0 || score > 100 {
				result.add(p.Program, field,
					fmt.Sprintf("score %d out of range", score),
					"scores are on a 0-100 scale")
			}
		}
	}
}

func checkBCGDepartments(result *Result) {
	known := map[string]bool{}
	for _, q := range data.BCGQuadrants {
		known[q] = true
	}
	seen := map[string]bool{}
	for _, d := range data.BCGDepartments {
		result.Checked++
		if seen[d.Department] {
			result.add(d.Department, "", "duplicate department", "each department may appear once on the matrix")
		}
		seen[d.Department] = true
		if !known[d.Quadrant] {
			result.add(d.Department, "Quadrant",
				fmt.Sprintf("unknown quadrant %q", d.Quadrant),
				"use Star, Cash Cow, Question Mark, or Concern")
		}
		// Quadrant labels must agree with the plotted coordinates. Points
		// within half a share point of the threshold keep their analyst
		// judgment; the source places Geosciences at 4.2% as a Concern.
		if known[d.Quadrant] && !quadrantPlausible(d) {
			result.add(d.Department, "Quadrant",
				fmt.Sprintf("labeled %q but plotted at share %.1f%%, change %+.1f%%", d.Quadrant, d.SCHPct, d.TwoYearChange),
				"correct the quadrant label or the SCH/growth figures")
		}
	}
}

// quadrantPlausible checks a quadrant label against the matrix coordinates,
// allowing a 0.5pp band around the share threshold.
func quadrantPlausible(d data.BCGDepartment) bool {
	const shareMargin = 0.5
	highShare := d.SCHPct >= data.BCGShareThreshold
	nearThreshold := d.SCHPct >= data.BCGShareThreshold-shareMargin &&
		d.SCHPct <= data.BCGShareThreshold+shareMargin
	growing := d.TwoYearChange >= 0

	var want string
	switch {
	case highShare && growing:
		want = data.QuadrantStar
	case highShare:
		want = data.QuadrantCashCow
	case growing:
		want = data.QuadrantQuestionMark
	default:
		want = data.QuadrantConcern
	}
	if d.Quadrant == want {
		return true
	}
	if !nearThreshold {
		return false
	}
	// On the borderline either share classification is acceptable.
	if growing {
		return d.Quadrant == data.QuadrantStar || d.Quadrant == data.QuadrantQuestionMark
	}
	return d.Quadrant == data.QuadrantCashCow || d.Quadrant == data.QuadrantConcern
}

func checkKPIs(result *Result) {
	seen := map[string]bool{}
	for _, k := range data.RoadmapKPIs {
		result.Checked++
		if seen[k.KPI] {
			result.add(k.KPI, "", "duplicate KPI", "each KPI may appear once")
		}
		seen[k.KPI] = true

		// Targets must move monotonically in the KPI's improving direction.
		steps := []struct {
			field string
			from  float64
			to    float64
		}{
			{"Year1Target", k.Baseline, k.Year1Target},
			{"Year2Target", k.Year1Target, k.Year2Target},
			{"StretchTarget", k.Year2Target, k.StretchTarget},
		}
		for _, st := range steps {
			improving := st.to >= st.from
			if k.Unit == "pp" {
				improving = st.to <= st.from
			}
			if !improving {
				result.add(k.KPI, st.field,
					fmt.Sprintf("target %g regresses from %g", st.to, st.from),
					"targets must improve monotonically from baseline to stretch")
			}
		}
	}
}

func checkRisks(result *Result) {
	for _, r := range data.Risks {
		result.Checked++
		if data.RiskLevelScore(r.Probability) == 0 {
			result.add(r.Risk, "Probability",
				fmt.Sprintf("unknown level %q", r.Probability),
				"use Low, Medium, or High")
		}
		if data.RiskLevelScore(r.Impact) == 0 {
			result.add(r.Risk, "Impact",
				fmt.Sprintf("unknown level %q", r.Impact),
				"use Low, Medium, or High")
		}
		if r.Mitigation == "" {
			result.add(r.Risk, "Mitigation", "missing mitigation", "every risk needs a mitigation strategy")
		}
	}
}

func checkDeliverables(result *Result) {
	for _, d := range docs.Defaults() {
		result.Checked++
		if !docs.SafeName(d.Name) {
			result.add(d.Name, "", "unsafe deliverable file name", "use a bare file name with no path components")
		}
		if docs.ContentType(d.Name) == "application/octet-stream" {
			result.add(d.Name, "", "unrecognized deliverable extension", "use .docx, .pptx, .xlsx, or .pdf")
		}
	}
}

func knownStatus(s string) bool {
	switch s {
	case data.StatusComplete, data.StatusInProgress, data.StatusNotStarted, data.StatusUpcoming:
		return true
	}
	return false
}
