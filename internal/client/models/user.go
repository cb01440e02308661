// Package models defines the wire DTOs the Ayuda API exchanges with the
// client. All entities are server-owned: the client never merges local edits
// into them, it re-fetches after each mutation.
package models

// User is the account record returned by /users/me and /users/email/{email}.
type User struct {
	Email            string   `json:"email"`
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	University       string   `json:"university"`
	Major            string   `json:"major"`
	DOB              string   `json:"dob"`
	Skills           []string `json:"skills"`
	CareerPath       []string `json:"career_path"`
	CompletedCourses []string `json:"completed_courses"`
	AdditionalSkills string   `json:"additional_skills"`
	ProfileEnhanced  bool     `json:"profile_enhanced"`
}

// SignupRequest is the JSON body for POST /users/signup. AccessCode is the
// invite-gating token, distinct from the auth bearer token.
type SignupRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	University string `json:"university"`
	Email      string `json:"email"`
	Major      string `json:"major"`
	DOB        string `json:"dob"`
	Password   string `json:"password"`
	AccessCode string `json:"access_code"`
}

// TokenResponse is returned by POST /auth/login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
