package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/khebbar/ayuda-cli/internal/client/models"
	"github.com/khebbar/ayuda-cli/internal/client/services"
	"github.com/khebbar/ayuda-cli/internal/common"
)

// descriptionLimit caps course descriptions at list level; the full text is
// available through explain.
const descriptionLimit = 100

// Recommend requests a fresh match run and keeps the payload in memory for
// the recommendations view.
func (a *App) Recommend(ctx context.Context) error {
	if !a.intakeReady() {
		fmt.Println("Please upload your resume first.")
		return nil
	}

	fmt.Println("Matching courses...")
	rec, err := a.recommend.Match(ctx)
	if err != nil {
		fmt.Println(services.MatchFailureMessage(err))
		return nil
	}

	a.lastResult = rec
	a.showRecommendations(rec)
	return nil
}

// Recommendations shows the current result set. Preference order: the
// in-memory payload from the last match run, then a stored fetch for the
// logged-in user, then a pointer back to the dashboard.
func (a *App) Recommendations(ctx context.Context) error {
	if a.lastResult != nil {
		a.showRecommendations(a.lastResult)
		return nil
	}

	u := a.session.User()
	if u != nil {
		rec, err := a.recommend.Stored(ctx, u.Email)
		if err == nil && rec != nil && rec.TotalMatches > 0 {
			a.lastResult = rec
			a.showRecommendations(rec)
			return nil
		}
		if err != nil && !errors.Is(err, common.ErrNotFound) {
			fmt.Println(services.MatchFailureMessage(err))
			return nil
		}
	}

	fmt.Println("No recommendations yet. Run 'recommend' first.")
	return nil
}

// Explain fetches the AI reasoning for one recommended course.
func (a *App) Explain(ctx context.Context) error {
	courseID, err := getSimpleText(a.reader, "Course id to explain", os.Stdout)
	if err != nil {
		return err
	}
	if courseID == "" {
		return nil
	}

	exp, err := a.recommend.Explain(ctx, courseID)
	if err != nil {
		if errors.Is(err, common.ErrNoSession) {
			fmt.Println("Please log in to see explanations.")
			return nil
		}
		fmt.Println(err.Error())
		return nil
	}

	fmt.Printf("%s (%s)\n", exp.CourseName, exp.CourseID)
	fmt.Println(exp.Reasoning)
	if exp.ModelUsed != "" {
		fmt.Printf("(model: %s, %d chars)\n", exp.ModelUsed, exp.ResponseLength)
	}
	return nil
}

func (a *App) showRecommendations(rec *models.Recommendation) {
	renderRecommendations(os.Stdout, rec)
}

// renderRecommendations writes the full recommendation view: summary counts,
// prerequisite-analysis metadata, then both partitions.
func renderRecommendations(w io.Writer, rec *models.Recommendation) {
	fmt.Fprintf(w, "Eligible: %d  Ineligible: %d  Total: %d\n",
		len(rec.EligibleMatches), len(rec.IneligibleMatches), rec.TotalMatches)
	if rec.PrerequisiteAnalysis.TotalCoursesChecked > 0 {
		fmt.Fprintf(w, "Checked %d courses in %.2fs\n",
			rec.PrerequisiteAnalysis.TotalCoursesChecked,
			rec.PrerequisiteAnalysis.PrerequisiteCheckingTime)
	}

	if len(rec.EligibleMatches) > 0 {
		fmt.Fprintln(w, "\nEligible courses:")
		printMatches(w, rec.EligibleMatches)
	}
	if len(rec.IneligibleMatches) > 0 {
		fmt.Fprintln(w, "\nCourses with unmet prerequisites:")
		printMatches(w, rec.IneligibleMatches)
	}
}

func printMatches(w io.Writer, matches []models.RecommendedCourse) {
	for _, m := range matches {
		fmt.Fprintf(w, "- %s %s", m.ID, m.Metadata.CourseName)
		if m.Metadata.Major != "" {
			fmt.Fprintf(w, " [%s]", m.Metadata.Major)
		}
		fmt.Fprintln(w)
		if m.Metadata.Description != "" {
			fmt.Fprintf(w, "    %s\n", truncate(m.Metadata.Description, descriptionLimit))
		}
		if skills := m.Skills(); len(skills) > 0 {
			fmt.Fprintf(w, "    Skills: %s\n", strings.Join(skills, ", "))
		}
		if domains := m.Domains(); len(domains) > 0 {
			fmt.Fprintf(w, "    Domains: %s\n", strings.Join(domains, ", "))
		}
		for _, group := range m.Prerequisites {
			names := make([]string, 0, len(group.Courses))
			for _, alt := range group.Courses {
				names = append(names, alt.Name)
			}
			if len(names) > 0 {
				fmt.Fprintf(w, "    Requires one of: %s\n", strings.Join(names, " / "))
			}
		}
	}
}

// truncate shortens s to limit runes, appending an ellipsis when cut.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}
