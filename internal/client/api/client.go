// Package api is the single gateway to the Ayuda HTTP API. Every feature flow
// issues requests through it rather than raw HTTP calls: the gateway attaches
// the bearer token, normalizes error payloads into one human-readable message,
// and on any 401 clears the session and notifies the application so it can
// fall back to the login screen.
package api

import (
	"context"

	"github.com/khebbar/ayuda-cli/internal/client/models"
)

type Client interface {
	// Auth.
	Login(ctx context.Context, email, password string) (*models.TokenResponse, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	Signup(ctx context.Context, req *models.SignupRequest) error

	// Resume.
	UploadResume(ctx context.Context, filename string, content []byte) error
	ParseResume(ctx context.Context, filename string, content []byte) error

	// Profile.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	ReplaceSkills(ctx context.Context, email string, skills []string) error
	ReplaceDomains(ctx context.Context, email string, domains []string) error
	AddCompletedCourses(ctx context.Context, courseIDs []string) error
	RemoveCompletedCourse(ctx context.Context, courseID string) error
	CompletedCourses(ctx context.Context) ([]string, error)
	SaveAdditionalSkills(ctx context.Context, skills string) error
	AdditionalSkills(ctx context.Context) (string, error)

	// Courses.
	SearchCourses(ctx context.Context, query string, limit int, checkPrerequisites bool) (*models.SearchResponse, error)
	CourseByID(ctx context.Context, courseID string) (*models.Course, error)

	// Recommendations.
	MatchCourses(ctx context.Context) (*models.Recommendation, error)
	StoredRecommendations(ctx context.Context, userID string) (*models.Recommendation, error)
	ExplainCourse(ctx context.Context, courseID string) (*models.Explanation, error)
	LegacyRecommendations(ctx context.Context, email string) ([]models.LegacyRecommendation, error)
}
