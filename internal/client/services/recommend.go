package services

import (
	"context"
	"errors"

	"github.com/khebbar/ayuda-cli/internal/client/api"
	"github.com/khebbar/ayuda-cli/internal/client/models"
	"github.com/khebbar/ayuda-cli/internal/client/session"
	"github.com/khebbar/ayuda-cli/internal/common"
	"github.com/khebbar/ayuda-cli/internal/logging"
)

// RecommendationService fetches recommendation result sets and per-course
// explanations. Results are transient: the caller holds them in view state
// and hands them to the recommendations screen in memory.
type RecommendationService interface {
	Match(ctx context.Context) (*models.Recommendation, error)
	Stored(ctx context.Context, userID string) (*models.Recommendation, error)
	Explain(ctx context.Context, courseID string) (*models.Explanation, error)
	Legacy(ctx context.Context, email string) ([]models.LegacyRecommendation, error)
}

type recommendationService struct {
	client  api.Client
	session *session.Store
	log     logging.Logger
}

func NewRecommendationService(client api.Client, store *session.Store, log logging.Logger) RecommendationService {
	return &recommendationService{client: client, session: store, log: log}
}

func (r *recommendationService) Match(ctx context.Context) (*models.Recommendation, error) {
	return r.client.MatchCourses(ctx)
}

func (r *recommendationService) Stored(ctx context.Context, userID string) (*models.Recommendation, error) {
	return r.client.StoredRecommendations(ctx, userID)
}

// Explain fetches the reasoning for one course. A missing token
// short-circuits with a local error before any network call.
func (r *recommendationService) Explain(ctx context.Context, courseID string) (*models.Explanation, error) {
	if !r.session.IsAuthenticated() {
		return nil, common.ErrNoSession
	}
	return r.client.ExplainCourse(ctx, courseID)
}

func (r *recommendationService) Legacy(ctx context.Context, email string) ([]models.LegacyRecommendation, error) {
	return r.client.LegacyRecommendations(ctx, email)
}

// MatchFailureMessage maps a recommendation-fetch failure to the user-facing
// string for each of the five distinguished shapes: HTML error page, 401,
// 404, 500, and the generic fallback.
func MatchFailureMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrUnavailable):
		return "Server returned an HTML error page. The API endpoint may be incorrect or the server may be down."
	case errors.Is(err, common.ErrUnauthorized):
		return "Authentication failed. Please log in again."
	case errors.Is(err, common.ErrNotFound):
		return "API endpoint not found. Please check the server configuration."
	case errors.Is(err, common.ErrServer):
		return "Server error occurred. Please try again later."
	default:
		return err.Error()
	}
}
