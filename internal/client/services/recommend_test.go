package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khebbar/ayuda-cli/internal/client/api"
	"github.com/khebbar/ayuda-cli/internal/client/models"
	"github.com/khebbar/ayuda-cli/internal/client/session"
	"github.com/khebbar/ayuda-cli/internal/common"
)

func TestExplain_WithoutTokenShortCircuits(t *testing.T) {
	f := &fakeClient{}
	store := session.NewStore()
	svc := NewRecommendationService(f, store, testLogger())

	_, err := svc.Explain(context.Background(), "CS101")

	require.ErrorIs(t, err, common.ErrNoSession)
	assert.Empty(t, f.calls)
}

func TestExplain_Authenticated(t *testing.T) {
	f := &fakeClient{
		explainFn: func(courseID string) (*models.Explanation, error) {
			return &models.Explanation{CourseID: courseID, Reasoning: "builds on your calculus background"}, nil
		},
	}
	store := session.NewStore()
	store.SetToken("tok-1", "bearer")
	svc := NewRecommendationService(f, store, testLogger())

	exp, err := svc.Explain(context.Background(), "CS101")

	require.NoError(t, err)
	assert.Equal(t, "CS101", exp.CourseID)
	assert.Equal(t, []string{"ExplainCourse:CS101"}, f.calls)
}

func TestMatch_PassesThroughResult(t *testing.T) {
	f := &fakeClient{
		matchFn: func() (*models.Recommendation, error) {
			return &models.Recommendation{TotalMatches: 7}, nil
		},
	}
	svc := NewRecommendationService(f, session.NewStore(), testLogger())

	rec, err := svc.Match(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, rec.TotalMatches)
}

func TestMatchFailureMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "html error page",
			err:  api.NewError(502, "Service is temporarily unavailable. Please try again later.", common.ErrUnavailable),
			want: "Server returned an HTML error page. The API endpoint may be incorrect or the server may be down.",
		},
		{
			name: "unauthorized",
			err:  api.NewError(401, "Could not validate credentials", common.ErrUnauthorized),
			want: "Authentication failed. Please log in again.",
		},
		{
			name: "not found",
			err:  api.NewError(404, "Not Found", common.ErrNotFound),
			want: "API endpoint not found. Please check the server configuration.",
		},
		{
			name: "server error",
			err:  api.NewError(500, "Internal Server Error", common.ErrServer),
			want: "Server error occurred. Please try again later.",
		},
		{
			name: "generic",
			err:  errors.New("context deadline exceeded"),
			want: "context deadline exceeded",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchFailureMessage(tt.err))
		})
	}
}

func TestRecommendedCourse_DomainsDropNan(t *testing.T) {
	c := models.RecommendedCourse{
		Metadata: models.CourseMetadata{
			Domains: [][]string{{"Data Science", "nan", "Machine Learning"}},
		},
	}
	assert.Equal(t, []string{"Data Science", "Machine Learning"}, c.Domains())
}
