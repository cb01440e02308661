package models

// CourseMetadata is the nested descriptive block of a recommended course.
// skills_associated and domains arrive as a list of lists; only the first
// group carries data.
type CourseMetadata struct {
	CourseName       string     `json:"course_name"`
	Major            string     `json:"major"`
	Description      string     `json:"description"`
	SkillsAssociated [][]string `json:"skills_associated"`
	Domains          [][]string `json:"domains"`
}

// PrerequisiteAlternative is one course satisfying a prerequisite group.
type PrerequisiteAlternative struct {
	CourseID string `json:"course_id"`
	Name     string `json:"name"`
}

// PrerequisiteGroup is one requirement; any course in Courses satisfies it.
type PrerequisiteGroup struct {
	Courses []PrerequisiteAlternative `json:"courses"`
}

// RecommendedCourse is one match inside a recommendation result.
type RecommendedCourse struct {
	ID            string              `json:"id"`
	Metadata      CourseMetadata      `json:"metadata"`
	Prerequisites []PrerequisiteGroup `json:"prerequisites"`
}

// Skills returns the course's associated skills (first group).
func (c RecommendedCourse) Skills() []string {
	if len(c.Metadata.SkillsAssociated) == 0 {
		return nil
	}
	return c.Metadata.SkillsAssociated[0]
}

// Domains returns the course's associated domains (first group), dropping the
// literal "nan" entries the upstream dataset leaks.
func (c RecommendedCourse) Domains() []string {
	if len(c.Metadata.Domains) == 0 {
		return nil
	}
	domains := make([]string, 0, len(c.Metadata.Domains[0]))
	for _, d := range c.Metadata.Domains[0] {
		if d != "nan" {
			domains = append(domains, d)
		}
	}
	return domains
}

// PrerequisiteAnalysis is the timing metadata attached to a recommendation
// result.
type PrerequisiteAnalysis struct {
	PrerequisiteCheckingTime float64 `json:"prerequisite_checking_time"`
	TotalCoursesChecked      int     `json:"total_courses_checked"`
}

// Recommendation is the result set of GET /recommendations/match_courses and
// GET /recommendations/{userId}. Transient: held in memory for the current
// view only.
type Recommendation struct {
	EligibleMatches      []RecommendedCourse  `json:"eligible_matches"`
	IneligibleMatches    []RecommendedCourse  `json:"ineligible_matches"`
	TotalMatches         int                  `json:"total_matches"`
	PrerequisiteAnalysis PrerequisiteAnalysis `json:"prerequisite_analysis"`
}

// Explanation is the on-demand reasoning for a single recommended course.
type Explanation struct {
	CourseID       string `json:"course_id"`
	CourseName     string `json:"course_name"`
	Reasoning      string `json:"reasoning"`
	ModelUsed      string `json:"model_used"`
	ResponseLength int    `json:"response_length"`
}

// LegacyRecommendation is one row of the legacy email-keyed recommendation
// endpoint.
type LegacyRecommendation struct {
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
}
