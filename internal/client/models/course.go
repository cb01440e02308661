package models

// Course is a search-result record from /courses/search and
// /courses/search/{id}.
type Course struct {
	ID          string `json:"id"`
	CourseID    string `json:"course_id"`
	Name        string `json:"course_name"`
	Description string `json:"course_description"`
	Eligible    bool   `json:"eligible"`
}

// SearchResponse carries the two server-ranked partitions of a course search.
type SearchResponse struct {
	EligibleCourses   []Course `json:"eligible_courses"`
	IneligibleCourses []Course `json:"ineligible_courses"`
}

// AllCourses merges the eligible and ineligible partitions into one ranked
// set, eligible first, the way the search popover displays them.
func (r SearchResponse) AllCourses() []Course {
	merged := make([]Course, 0, len(r.EligibleCourses)+len(r.IneligibleCourses))
	merged = append(merged, r.EligibleCourses...)
	merged = append(merged, r.IneligibleCourses...)
	return merged
}

// CompletedCoursesResponse lists the identifiers of the user's completed
// courses. Full metadata is resolved per id via /courses/search/{id}.
type CompletedCoursesResponse struct {
	CompletedCourses []string `json:"completed_courses"`
}

// PlaceholderCourse stands in for a completed course whose detail lookup
// failed; the id doubles as the display name.
func PlaceholderCourse(courseID string) Course {
	return Course{
		ID:          courseID,
		CourseID:    courseID,
		Name:        courseID,
		Description: "Course details not available",
	}
}

// AdditionalSkillsPayload is the body of PUT/GET /users/profile/additional-skills.
type AdditionalSkillsPayload struct {
	AdditionalSkills string `json:"additional_skills"`
}

// SkillsPayload is the body of PUT /users/{email}/skills.
type SkillsPayload struct {
	Skills []string `json:"skills"`
}

// DomainsPayload is the body of PUT /users/{email}/domains.
type DomainsPayload struct {
	Domains []string `json:"domains"`
}
