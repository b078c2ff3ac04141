package data

// Attribution records where a framework's content came from: internal
// project documents, published methodology applied to internal data, or a
// synthesis of prior phases.
type Attribution struct {
	Source string
	Files  []string
}

// Attributions is keyed by framework display name.
var Attributions = map[string]Attribution{
	"PESTLE Analysis": {
		Source: "Internal FLC Documents",
		Files:  []string{"PESTLE_Report_FLC.docx", "External Forces Shaping FLC.pptx"},
	},
	"BCG Growth-Share Matrix": {
		Source: "Internal FLC Documents",
		Files:  []string{"BCG Presentation.pptx", "BCG-growthMatrixDepts.png"},
	},
	"Porter's Five Forces": {
		Source: "Internet Methodology + FLC Data",
		Files:  []string{"Framework from published research; metrics from FLC institutional data"},
	},
	"Gray Associates Portfolio": {
		Source: "Internet Methodology + FLC Data",
		Files:  []string{"Gray Associates PES methodology; applied to FLC enrollment & BCG data"},
	},
	"SWOT Analysis": {
		Source: "Synthesized from All Phase 1 Frameworks",
		Files:  []string{"PESTLE, Porter's, Gray Associates, BCG analyses + FLC institutional data"},
	},
	"Zone to Win": {
		Source: "Synthesized from SWOT + All Frameworks",
		Files:  []string{"Zone to Win methodology (Geoffrey Moore); applied to FLC strategic context"},
	},
	"Strategic Roadmap": {
		Source: "Synthesized from All Phases",
		Files:  []string{"Implementation plan derived from Zone to Win scenarios + Phase 1 analyses"},
	},
	"Implementation Tracking": {
		Source: "Synthesized from All Phases",
		Files:  []string{"Phase 2 initiative register + resource allocation worksheets"},
	},
}

// FrameworkDescriptions are the short introductions rendered at the top of
// each Phase 1 tab, keyed by framework key.
var FrameworkDescriptions = map[string]string{
	"PESTLE": "PESTLE Analysis examines six categories of external macro-environmental factors " +
		"that influence Fort Lewis College's strategic positioning: Political, Economic, Social, " +
		"Technological, Legal, and Environmental. This framework identifies forces beyond the " +
		"institution's direct control that create both risks and opportunities for Academic Affairs. " +
		"Each factor is assessed for impact severity and directional trend to prioritize strategic responses.",
	"Porters": "Porter's Five Forces framework assesses the competitive intensity and attractiveness " +
		"of the higher education market in which Fort Lewis College operates. By analyzing the " +
		"threat of new entrants, bargaining power of suppliers (faculty/vendors) and buyers (students), " +
		"threat of substitutes, and rivalry among existing competitors, this model reveals FLC's " +
		"competitive position and informs differentiation strategy.",
	"Gray": "Gray Associates Portfolio Analysis evaluates academic programs using a data-driven " +
		"methodology that plots Market Score (student demand, employment outlook, and competitive " +
		"positioning) against Program Economics (revenue efficiency and contribution margin). " +
		"This framework classifies programs into actionable categories—Grow, Sustain, Transform, " +
		"Evaluate, or Sunset Review—to guide investment and restructuring decisions.",
	"BCG": "The BCG Growth-Share Matrix, adapted from the Boston Consulting Group framework, " +
		"categorizes FLC's academic departments based on two dimensions: relative market share " +
		"(measured by percentage of total Student Credit Hours) and growth rate (2-year enrollment " +
		"change). Programs are classified as Stars, Cash Cows, Question Marks, or Concerns to " +
		"guide resource allocation priorities.",
}
