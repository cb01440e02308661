package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/khebbar/ayuda-cli/internal/client/models"
	"github.com/khebbar/ayuda-cli/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeClient implements api.Client for service unit tests. Only the function
// fields a test sets are exercised; the rest return zero values. calls
// records every gateway invocation in order.
type fakeClient struct {
	calls []string

	loginFn       func(email, password string) (*models.TokenResponse, error)
	currentUserFn func() (*models.User, error)
	signupErr     error

	uploadErr error
	parseErr  error

	searchFn  func(query string) (*models.SearchResponse, error)
	courseFn  func(id string) (*models.Course, error)
	addErr    error
	removeErr error
	idsFn     func() ([]string, error)

	saveSkillsErr error
	skillsRet     string
	skillsErr     error

	userByEmailFn func(email string) (*models.User, error)
	replaceSkErr  error
	replaceDoErr  error

	matchFn  func() (*models.Recommendation, error)
	storedFn func(userID string) (*models.Recommendation, error)
	explainFn func(courseID string) (*models.Explanation, error)
	legacyFn  func(email string) ([]models.LegacyRecommendation, error)
}

func (f *fakeClient) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeClient) Login(_ context.Context, email, password string) (*models.TokenResponse, error) {
	f.record("Login")
	if f.loginFn != nil {
		return f.loginFn(email, password)
	}
	return &models.TokenResponse{AccessToken: "tok", TokenType: "bearer"}, nil
}

func (f *fakeClient) CurrentUser(context.Context) (*models.User, error) {
	f.record("CurrentUser")
	if f.currentUserFn != nil {
		return f.currentUserFn()
	}
	return &models.User{Email: "alice@example.org"}, nil
}

func (f *fakeClient) Signup(context.Context, *models.SignupRequest) error {
	f.record("Signup")
	return f.signupErr
}

func (f *fakeClient) UploadResume(_ context.Context, filename string, _ []byte) error {
	f.record("UploadResume:" + filename)
	return f.uploadErr
}

func (f *fakeClient) ParseResume(_ context.Context, filename string, _ []byte) error {
	f.record("ParseResume:" + filename)
	return f.parseErr
}

func (f *fakeClient) UserByEmail(_ context.Context, email string) (*models.User, error) {
	f.record("UserByEmail:" + email)
	if f.userByEmailFn != nil {
		return f.userByEmailFn(email)
	}
	return &models.User{Email: email}, nil
}

func (f *fakeClient) ReplaceSkills(_ context.Context, email string, _ []string) error {
	f.record("ReplaceSkills:" + email)
	return f.replaceSkErr
}

func (f *fakeClient) ReplaceDomains(_ context.Context, email string, _ []string) error {
	f.record("ReplaceDomains:" + email)
	return f.replaceDoErr
}

func (f *fakeClient) AddCompletedCourses(_ context.Context, ids []string) error {
	for _, id := range ids {
		f.record("AddCompletedCourses:" + id)
	}
	return f.addErr
}

func (f *fakeClient) RemoveCompletedCourse(_ context.Context, id string) error {
	f.record("RemoveCompletedCourse:" + id)
	return f.removeErr
}

func (f *fakeClient) CompletedCourses(context.Context) ([]string, error) {
	f.record("CompletedCourses")
	if f.idsFn != nil {
		return f.idsFn()
	}
	return nil, nil
}

func (f *fakeClient) SaveAdditionalSkills(_ context.Context, skills string) error {
	f.record("SaveAdditionalSkills:" + skills)
	return f.saveSkillsErr
}

func (f *fakeClient) AdditionalSkills(context.Context) (string, error) {
	f.record("AdditionalSkills")
	return f.skillsRet, f.skillsErr
}

func (f *fakeClient) SearchCourses(_ context.Context, query string, _ int, _ bool) (*models.SearchResponse, error) {
	f.record("SearchCourses:" + query)
	if f.searchFn != nil {
		return f.searchFn(query)
	}
	return &models.SearchResponse{}, nil
}

func (f *fakeClient) CourseByID(_ context.Context, id string) (*models.Course, error) {
	f.record("CourseByID:" + id)
	if f.courseFn != nil {
		return f.courseFn(id)
	}
	return &models.Course{ID: id, CourseID: id, Name: "Course " + id}, nil
}

func (f *fakeClient) MatchCourses(context.Context) (*models.Recommendation, error) {
	f.record("MatchCourses")
	if f.matchFn != nil {
		return f.matchFn()
	}
	return &models.Recommendation{}, nil
}

func (f *fakeClient) StoredRecommendations(_ context.Context, userID string) (*models.Recommendation, error) {
	f.record("StoredRecommendations:" + userID)
	if f.storedFn != nil {
		return f.storedFn(userID)
	}
	return &models.Recommendation{}, nil
}

func (f *fakeClient) ExplainCourse(_ context.Context, courseID string) (*models.Explanation, error) {
	f.record("ExplainCourse:" + courseID)
	if f.explainFn != nil {
		return f.explainFn(courseID)
	}
	return &models.Explanation{CourseID: courseID}, nil
}

func (f *fakeClient) LegacyRecommendations(_ context.Context, email string) ([]models.LegacyRecommendation, error) {
	f.record("LegacyRecommendations:" + email)
	if f.legacyFn != nil {
		return f.legacyFn(email)
	}
	return nil, nil
}
