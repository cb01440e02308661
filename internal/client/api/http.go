package api

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/khebbar/ayuda-cli/internal/client/models"
	"github.com/khebbar/ayuda-cli/internal/client/session"
	"github.com/khebbar/ayuda-cli/internal/common"
	"github.com/khebbar/ayuda-cli/internal/logging"
)

// HTTPClient implements Client on top of a resty client. The auth header is
// re-read from the session store on every request; nothing captures the token
// at construction time.
type HTTPClient struct {
	rc             *resty.Client
	session        *session.Store
	log            logging.Logger
	onUnauthorized func()
}

func NewHTTPClient(baseURL string, timeout time.Duration, store *session.Store, log logging.Logger) *HTTPClient {
	c := &HTTPClient{session: store, log: log}

	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	rc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if header, ok := c.session.AuthHeader(); ok {
			req.SetHeader(common.AuthHeaderName, header)
		}
		req.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})

	// Global 401 hook: any unauthorized response invalidates the session
	// before the failure propagates to the caller.
	rc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == 401 {
			c.session.Clear()
			if c.onUnauthorized != nil {
				c.onUnauthorized()
			}
		}
		return nil
	})

	c.rc = rc
	return c
}

// SetOnUnauthorized registers the application hook run after a 401 has
// cleared the session (the REPL uses it to fall back to the login screen).
func (c *HTTPClient) SetOnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// request prepares a resty request bound to ctx, decoding a successful JSON
// response into out when out is non-nil.
func (c *HTTPClient) request(ctx context.Context, out any) *resty.Request {
	r := c.rc.R().SetContext(ctx)
	if out != nil {
		r.SetResult(out)
	}
	return r
}

// finish converts a resty outcome into the gateway's typed failure. Transport
// errors and HTML-where-JSON-expected bodies are both surfaced before any
// status branching, so a proxy error page is never mistaken for data.
func (c *HTTPClient) finish(ctx context.Context, resp *resty.Response, err error) error {
	if err != nil {
		c.log.Error(ctx, "request failed", "err", err)
		return &Error{Message: "Unable to connect to the server. Please check your internet connection.", err: err}
	}

	if looksLikeHTML(resp.Body()) {
		c.log.Warn(ctx, "html response where json expected",
			"method", resp.Request.Method, "url", resp.Request.URL, "status", resp.StatusCode())
		return &Error{
			Status:  resp.StatusCode(),
			Message: "Service is temporarily unavailable. Please try again later.",
			err:     common.ErrUnavailable,
		}
	}

	if resp.IsError() {
		msg := normalizeMessage(resp.Body())
		c.log.Warn(ctx, "api error",
			"method", resp.Request.Method, "url", resp.Request.URL,
			"status", resp.StatusCode(), "message", msg)
		return &Error{Status: resp.StatusCode(), Message: msg, err: sentinelFor(resp.StatusCode())}
	}

	return nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	var out models.TokenResponse
	// The login endpoint expects an OAuth2 password form: the email travels
	// in the "username" field.
	resp, err := c.request(ctx, &out).
		SetFormData(map[string]string{"username": email, "password": password}).
		Post("/auth/login")
	if err := c.finish(ctx, resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var out models.User
	resp, err := c.request(ctx, &out).Get("/users/me")
	if err := c.finish(ctx, resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Signup(ctx context.Context, req *models.SignupRequest) error {
	resp, err := c.request(ctx, nil).SetBody(req).Post("/users/signup")
	return c.finish(ctx, resp, err)
}

func (c *HTTPClient) UploadResume(ctx context.Context, filename string, content []byte) error {
	resp, err := c.request(ctx, nil).
		SetFileReader("file", filename, bytes.NewReader(content)).
		Post("/users/resume")
	return c.finish(ctx, resp, err)
}

func (c *HTTPClient) ParseResume(ctx context.Context, filename string, content []byte) error {
	resp, err := c.request(ctx, nil).
		SetFileReader("file", filename, bytes.NewReader(content)).
		Post("/users/resume/parse")
	return c.finish(ctx, resp, err)
}

func (c *HTTPClient) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var out models.User
	resp, err := c.request(ctx, &out).Get("/users/email/" + url.PathEscape(email))
	if err := c.finish(ctx, resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ReplaceSkills(ctx context.Context, email string, skills []string) error {
	resp, err := c.request(ctx, nil).
		SetBody(models.SkillsPayload{Skills: skills}).
		Put(fmt.Sprintf("/users/%s/skills", url.PathEscape(email)))
	return c.finish(ctx, resp, err)
}

func (c *HTTPClient) ReplaceDomains(ctx context.Context, email string, domains []string) error {
	resp, err := c.request(ctx, nil).
		SetBody(models.DomainsPayload{Domains: domains}).
		Put(fmt.Sprintf("/users/%s/domains", url.PathEscape(email)))
	return c.finish(ctx, resp, err)
}

func (c *HTTPClient) AddCompletedCourses(ctx context.Context, courseIDs []string) error {
	resp, err := c.request(ctx, nil).
		SetBody(courseIDs).
		Post("/users/profile/completed-courses")
	return c.finish(ctx, resp, err)
}

func (c *HTTPClient) RemoveCompletedCourse(ctx context.Context, courseID string) error {
	resp, err := c.request(ctx, nil).
		Delete("/users/profile/completed-courses/" + url.PathEscape(courseID))
	return c.finish(ctx, resp, err)
}

func (c *HTTPClient) CompletedCourses(ctx context.Context) ([]string, error) {
	var out models.CompletedCoursesResponse
	resp, err := c.request(ctx, &out).Get("/users/profile/completed-courses")
	if err := c.finish(ctx, resp, err); err != nil {
		return nil, err
	}
	return out.CompletedCourses, nil
}

func (c *HTTPClient) SaveAdditionalSkills(ctx context.Context, skills string) error {
	resp, err := c.request(ctx, nil).
		SetBody(models.AdditionalSkillsPayload{AdditionalSkills: skills}).
		Put("/users/profile/additional-skills")
	return c.finish(ctx, resp, err)
}

func (c *HTTPClient) AdditionalSkills(ctx context.Context) (string, error) {
	var out models.AdditionalSkillsPayload
	resp, err := c.request(ctx, &out).Get("/users/profile/additional-skills")
	if err := c.finish(ctx, resp, err); err != nil {
		return "", err
	}
	return out.AdditionalSkills, nil
}

func (c *HTTPClient) SearchCourses(ctx context.Context, query string, limit int, checkPrerequisites bool) (*models.SearchResponse, error) {
	var out models.SearchResponse
	resp, err := c.request(ctx, &out).
		SetQueryParams(map[string]string{
			"q":                   query,
			"limit":               fmt.Sprintf("%d", limit),
			"check_prerequisites": fmt.Sprintf("%t", checkPrerequisites),
		}).
		Get("/courses/search")
	if err := c.finish(ctx, resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CourseByID(ctx context.Context, courseID string) (*models.Course, error) {
	var out models.Course
	resp, err := c.request(ctx, &out).Get("/courses/search/" + url.PathEscape(courseID))
	if err := c.finish(ctx, resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) MatchCourses(ctx context.Context) (*models.Recommendation, error) {
	var out models.Recommendation
	resp, err := c.request(ctx, &out).Get("/recommendations/match_courses")
	if err := c.finish(ctx, resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) StoredRecommendations(ctx context.Context, userID string) (*models.Recommendation, error) {
	var out models.Recommendation
	resp, err := c.request(ctx, &out).Get("/recommendations/" + url.PathEscape(userID))
	if err := c.finish(ctx, resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ExplainCourse(ctx context.Context, courseID string) (*models.Explanation, error) {
	var out models.Explanation
	resp, err := c.request(ctx, &out).
		SetBody(map[string]string{"course_id": courseID}).
		Post("/recommendations/explain")
	if err := c.finish(ctx, resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) LegacyRecommendations(ctx context.Context, email string) ([]models.LegacyRecommendation, error) {
	var out []models.LegacyRecommendation
	resp, err := c.request(ctx, &out).
		SetQueryParam("email", email).
		Get("/courses/recommendations")
	if err := c.finish(ctx, resp, err); err != nil {
		return nil, err
	}
	return out, nil
}
