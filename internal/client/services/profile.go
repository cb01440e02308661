package services

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/khebbar/ayuda-cli/internal/client/api"
	"github.com/khebbar/ayuda-cli/internal/client/models"
	"github.com/khebbar/ayuda-cli/internal/logging"
)

// Resume types the server accepts. Anything else is rejected locally before
// a single byte goes over the wire.
const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var ErrUnsupportedResumeType = errors.New("Please select a PDF or DOCX file.")

var ErrEmptySkills = errors.New("Additional skills cannot be empty.")

// searchLimit caps the search popover to its first page of results.
const searchLimit = 5

// ProfileService drives the intake flow: resume upload, completed-course
// bookkeeping and free-text skills. Collections are server-authoritative:
// every mutation is followed by a full re-fetch instead of a local patch.
type ProfileService interface {
	UploadResume(ctx context.Context, filename string, content []byte) error
	ParseResume(ctx context.Context, filename string, content []byte) error

	SearchCourses(ctx context.Context, query string) ([]models.Course, error)
	AddCompletedCourse(ctx context.Context, courseID string) ([]models.Course, error)
	RemoveCompletedCourse(ctx context.Context, courseID string) ([]models.Course, error)
	CompletedCourses(ctx context.Context) ([]models.Course, error)

	SaveAdditionalSkills(ctx context.Context, skills string) error
	AdditionalSkills(ctx context.Context) (string, error)

	UserByEmail(ctx context.Context, email string) (*models.User, error)
	ReplaceSkills(ctx context.Context, email string, skills []string) error
	ReplaceDomains(ctx context.Context, email string, domains []string) error
}

type profileService struct {
	client api.Client
	log    logging.Logger
}

func NewProfileService(client api.Client, log logging.Logger) ProfileService {
	return &profileService{client: client, log: log}
}

// ResumeContentType maps a resume filename to its MIME type, or reports that
// the type is unsupported.
func ResumeContentType(filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return mimePDF, nil
	case ".docx":
		return mimeDOCX, nil
	default:
		return "", ErrUnsupportedResumeType
	}
}

func (p *profileService) UploadResume(ctx context.Context, filename string, content []byte) error {
	if _, err := ResumeContentType(filename); err != nil {
		return err
	}
	if err := p.client.UploadResume(ctx, filename, content); err != nil {
		return err
	}
	p.log.Info(ctx, "resume uploaded", "filename", filename, "size", len(content))
	return nil
}

// ParseResume is wired to the parse endpoint but unused by the active intake
// flow; the server parses the stored resume out-of-band.
func (p *profileService) ParseResume(ctx context.Context, filename string, content []byte) error {
	if _, err := ResumeContentType(filename); err != nil {
		return err
	}
	return p.client.ParseResume(ctx, filename, content)
}

// SearchCourses merges the server's eligible and ineligible partitions into
// one ranked set, capped to the popover size.
func (p *profileService) SearchCourses(ctx context.Context, query string) ([]models.Course, error) {
	res, err := p.client.SearchCourses(ctx, query, searchLimit, true)
	if err != nil {
		return nil, err
	}
	all := res.AllCourses()
	if len(all) > searchLimit {
		all = all[:searchLimit]
	}
	return all, nil
}

// AddCompletedCourse records the course server-side, then re-fetches the full
// completed set. Re-fetching instead of appending locally keeps the displayed
// state consistent even when the add partially failed server-side.
func (p *profileService) AddCompletedCourse(ctx context.Context, courseID string) ([]models.Course, error) {
	if err := p.client.AddCompletedCourses(ctx, []string{courseID}); err != nil {
		return nil, err
	}
	return p.CompletedCourses(ctx)
}

func (p *profileService) RemoveCompletedCourse(ctx context.Context, courseID string) ([]models.Course, error) {
	if err := p.client.RemoveCompletedCourse(ctx, courseID); err != nil {
		return nil, err
	}
	return p.CompletedCourses(ctx)
}

// CompletedCourses lists the stored course ids and resolves each to full
// metadata. A failed detail lookup contributes a placeholder record rather
// than failing the whole listing.
func (p *profileService) CompletedCourses(ctx context.Context) ([]models.Course, error) {
	ids, err := p.client.CompletedCourses(ctx)
	if err != nil {
		return nil, err
	}

	courses := make([]models.Course, 0, len(ids))
	for _, id := range ids {
		course, err := p.client.CourseByID(ctx, id)
		if err != nil {
			p.log.Warn(ctx, "course detail lookup failed, using placeholder", "course_id", id, "err", err)
			courses = append(courses, models.PlaceholderCourse(id))
			continue
		}
		courses = append(courses, *course)
	}
	return courses, nil
}

func (p *profileService) SaveAdditionalSkills(ctx context.Context, skills string) error {
	trimmed := strings.TrimSpace(skills)
	if trimmed == "" {
		return ErrEmptySkills
	}
	return p.client.SaveAdditionalSkills(ctx, trimmed)
}

func (p *profileService) AdditionalSkills(ctx context.Context) (string, error) {
	return p.client.AdditionalSkills(ctx)
}

func (p *profileService) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	return p.client.UserByEmail(ctx, email)
}

func (p *profileService) ReplaceSkills(ctx context.Context, email string, skills []string) error {
	return p.client.ReplaceSkills(ctx, email, skills)
}

func (p *profileService) ReplaceDomains(ctx context.Context, email string, domains []string) error {
	return p.client.ReplaceDomains(ctx, email, domains)
}
