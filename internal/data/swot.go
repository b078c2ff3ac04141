package data

// SWOTItem is one finding in a SWOT quadrant, with attribution back to the
// Phase 1 framework(s) it was synthesized from.
type SWOTItem struct {
	Title  string
	Detail string
	Source string
}

// SWOTQuadrant is one of the four synthesis quadrants.
type SWOTQuadrant struct {
	Name  string
	Icon  string
	Items []SWOTItem
}

// SWOT holds the four quadrants in S-W-O-T order.
var SWOT = []SWOTQuadrant{
	{
		Name: "Strengths",
		Icon: "S",
		Items: []SWOTItem{
			{
				Title:  "Unique Native American Mission",
				Detail: "Federal obligation to serve Native American students with tuition waiver creates a distinctive institutional identity serving 166 tribes. 37% of students receive the Native American Tuition Waiver.",
				Source: "PESTLE (Social/Political), Institutional Data",
			},
			{
				Title:  "Strong Star Programs",
				Detail: "Business Administration (298 enrolled, +4% growth) and Psychology (227 enrolled, +3% growth) demonstrate both high market share and positive trajectory.",
				Source: "BCG Matrix, Gray Associates",
			},
			{
				Title:  "High-SCH Cash Cow Programs",
				Detail: "Nine departments (English, Math, Biology, HHP, etc.) generate the bulk of student credit hours, providing a stable revenue foundation despite enrollment softness.",
				Source: "BCG Matrix",
			},
			{
				Title:  "Outdoor Recreation & Location Differentiator",
				Detail: "Durango's mountain setting and outdoor lifestyle create a powerful recruitment differentiator that online competitors cannot replicate. Adventure Education is uniquely positioned.",
				Source: "Porter's Five Forces, PESTLE (Social/Environmental)",
			},
			{
				Title:  "Growing Graduate Programs",
				Detail: "Graduate enrollment has grown from 10 (2016) to 160 (Fall 2025), a 16x increase demonstrating capacity to launch and scale new credential levels.",
				Source: "Institutional Data, Gray Associates",
			},
			{
				Title:  "Small Class Sizes & Faculty Quality",
				Detail: "Average class size of 19, 100% of classes under 50 students, 98% of tenure-track faculty hold terminal degrees. 15:1 student-faculty ratio.",
				Source: "Institutional Data",
			},
			{
				Title:  "Strong Employment-Aligned Programs",
				Detail: "Engineering (92), Computer Info Systems (90), Business Admin (85), and Health Sciences (85) score highest on employment outlook in Gray Associates analysis.",
				Source: "Gray Associates",
			},
		},
	},
	{
		Name: "Weaknesses",
		Icon: "W",
		Items: []SWOTItem{
			{
				Title:  "Declining Undergraduate Enrollment",
				Detail: "UG degree-seeking enrollment fell from 3,498 (2016) to 3,021 (2025), a -13.6% decline over 10 years. Total headcount down -2.5% YoY.",
				Source: "Institutional Data, Enrollment Overview",
			},
			{
				Title:  "Multiple Concern-Quadrant Programs",
				Detail: "Nine departments in BCG Concern quadrant: Political Science (-26%), Economics (-24%), Art & Design (-18%), Geosciences (-15.5%) face both low market share and steep enrollment declines.",
				Source: "BCG Matrix",
			},
			{
				Title:  "Retention Below National Average",
				Detail: "66.1% FTFT retention rate is below the national average for public 4-year institutions (~73%). Equity gaps persist: First-Gen (60.9%), Pell (61.7%), Students of Color (62.6%).",
				Source: "Institutional Data, PESTLE (Social)",
			},
			{
				Title:  "Remote Location Faculty Recruitment",
				Detail: "Durango's high cost of living and geographic isolation create persistent challenges in attracting and retaining specialized faculty. Salary competitiveness is below average.",
				Source: "Porter's Five Forces (Supplier Power)",
			},
			{
				Title:  "Tuition Waiver Revenue Impact",
				Detail: "The Native American tuition waiver, while mission-critical, affects revenue generation with ~37% of students receiving the waiver, creating dependency on state funding.",
				Source: "PESTLE (Economic/Political)",
			},
			{
				Title:  "Limited Online Program Offerings",
				Detail: "Only 25 online course offerings currently, significantly limiting reach and competitiveness against institutions with robust online portfolios.",
				Source: "Porter's Five Forces, Gray Associates",
			},
		},
	},
	{
		Name: "Opportunities",
		Icon: "O",
		Items: []SWOTItem{
			{
				Title:  "Expand High-Demand Programs",
				Detail: "Gray Associates identifies 7 programs for GROW status: Business Admin, Psychology, Engineering, Health Sciences, Computer Info Systems, Exercise Physiology, Accounting. These align with strong employment markets.",
				Source: "Gray Associates, BCG Matrix",
			},
			{
				Title:  "Graduate Program Expansion",
				Detail: "16x growth in graduate enrollment (10 to 160) over 9 years demonstrates untapped capacity. Health Sciences graduate certificate and online MBA are immediate opportunities.",
				Source: "Institutional Data, Gray Associates",
			},
			{
				Title:  "AI Institute Development",
				Detail: "FLC's AI Institute represents an emerging strength in a high-demand field. Partnerships and curriculum integration can attract new student segments and research funding.",
				Source: "PESTLE (Technological), Institutional Data",
			},
			{
				Title:  "Dual Enrollment Pipeline Growth",
				Detail: "Dual enrollment grew from 52 (2016) to 235 (2025), 4.5x increase. 27 prior dual-enrollment students converted to degree-seeking in Fall 2025. Expansion partnerships with San Juan College, Pueblo CC, and Red Rocks CC are viable.",
				Source: "Institutional Data, Enrollment Overview",
			},
			{
				Title:  "Sustainability & Environmental Leadership",
				Detail: "FLC's Environmental Conservation & Management (133 enrolled) and Environmental Science (87 enrolled) programs, combined with Durango's setting, position the institution for climate/sustainability leadership.",
				Source: "PESTLE (Environmental), Gray Associates",
			},
			{
				Title:  "Indigenous Education National Leadership",
				Detail: "Serving 166 tribes with 26.5% Native American enrollment creates opportunity to become the premier Indigenous higher education institution nationally, attracting federal grants and partnerships.",
				Source: "PESTLE (Social/Political), Institutional Data",
			},
		},
	},
	{
		Name: "Threats",
		Icon: "T",
		Items: []SWOTItem{
			{
				Title:  "Intensifying Online Competition",
				Detail: "Online programs from large universities erode FLC's geographic advantage. Porter's rates Competitive Rivalry at 4.5/5 and Threat of Substitutes at 3.5/5.",
				Source: "Porter's Five Forces",
			},
			{
				Title:  "State Funding Volatility",
				Detail: "Colorado state appropriations per student are declining. Performance-based funding models create additional uncertainty for smaller institutions.",
				Source: "PESTLE (Political/Economic)",
			},
			{
				Title:  "Declining College-Going Rates",
				Detail: "National college-going rates are declining, particularly affecting small public liberal arts institutions. Colorado first-year student pipeline down -7.6% for FLC in 2025.",
				Source: "PESTLE (Social), Enrollment Overview",
			},
			{
				Title:  "Student Price Sensitivity",
				Detail: "Porter's rates Bargaining Power of Students at 4.0/5 (High). Rising tuition sensitivity, student debt concerns, and increasing discount rate pressure threaten net revenue.",
				Source: "Porter's Five Forces, PESTLE (Economic)",
			},
			{
				Title:  "Alternative Credential Growth",
				Detail: "Micro-credentials, boot camps, and certificate programs are growing rapidly. Employers increasingly accept alternative credentials, threatening traditional 4-year degree demand.",
				Source: "Porter's Five Forces (Substitutes)",
			},
			{
				Title:  "Political Pressure on DEI & Public Higher Ed",
				Detail: "Political landscape creates uncertainty for diversity programs, public institution funding, and federal financial aid policy (Pell Grant, Title IV).",
				Source: "PESTLE (Political)",
			},
		},
	},
}
