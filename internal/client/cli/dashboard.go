package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/khebbar/ayuda-cli/internal/client/models"
	"github.com/khebbar/ayuda-cli/internal/client/services"
)

// readFile is a test seam for os.ReadFile.
var readFile = os.ReadFile

// UploadResume prompts for a file path and uploads the resume. Unsupported
// file types are rejected before anything is read off disk or sent.
func (a *App) UploadResume(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Path to resume (PDF or DOCX)", os.Stdout)
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}

	filename := filepath.Base(path)
	if _, err := services.ResumeContentType(filename); err != nil {
		fmt.Println(err.Error())
		return nil
	}

	content, err := readFile(path)
	if err != nil {
		fmt.Printf("Could not read %s: %s\n", path, err.Error())
		return nil
	}

	if err := a.profiles.UploadResume(ctx, filename, content); err != nil {
		fmt.Println(err.Error())
		return nil
	}

	a.resumeUploaded = true
	fmt.Println("Resume uploaded.")
	return nil
}

// Search runs the incremental course search. Each line retypes the query and
// reschedules the debounced lookup; results print as they commit. "add <n>"
// records the nth result as a completed course.
func (a *App) Search(ctx context.Context) error {
	a.search.SetNotify(func(courses []models.Course) {
		printCourseChoices(courses)
	})
	defer a.search.SetNotify(nil)

	fmt.Println("Type to search (two characters minimum). 'add <n>' records a result, empty line exits.")
	for {
		line, err := getSimpleText(a.reader, "Search", os.Stdout)
		if err != nil {
			return err
		}
		if line == "" {
			return nil
		}

		if n, ok := parseAdd(line); ok {
			results := a.search.Results()
			if n < 1 || n > len(results) {
				fmt.Println("No such result.")
				continue
			}
			courses, err := a.profiles.AddCompletedCourse(ctx, results[n-1].CourseID)
			if err != nil {
				fmt.Println(err.Error())
				continue
			}
			fmt.Println("Completed courses:")
			printCourses(courses)
			continue
		}

		a.search.Input(ctx, line)
	}
}

func parseAdd(line string) (int, bool) {
	rest, ok := strings.CutPrefix(line, "add ")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Courses lists the completed courses with full details. Courses whose detail
// lookup failed show up with a placeholder description.
func (a *App) Courses(ctx context.Context) error {
	courses, err := a.profiles.CompletedCourses(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return nil
	}
	if len(courses) == 0 {
		fmt.Println("No completed courses yet.")
		return nil
	}
	printCourses(courses)
	return nil
}

// RemoveCourse deletes one completed course by id and prints the refreshed
// set.
func (a *App) RemoveCourse(ctx context.Context) error {
	courseID, err := getSimpleText(a.reader, "Course id to remove", os.Stdout)
	if err != nil {
		return err
	}
	if courseID == "" {
		return nil
	}

	courses, err := a.profiles.RemoveCompletedCourse(ctx, courseID)
	if err != nil {
		fmt.Println(err.Error())
		return nil
	}
	fmt.Println("Completed courses:")
	printCourses(courses)
	return nil
}

// Skills shows the stored additional skills and optionally replaces them.
func (a *App) Skills(ctx context.Context) error {
	current, err := a.profiles.AdditionalSkills(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return nil
	}
	if current != "" {
		fmt.Printf("Current additional skills:\n%s\n", current)
	} else {
		fmt.Println("No additional skills stored.")
	}

	skills, err := GetMultiline(a.reader, "Enter additional skills (empty to keep current)", os.Stdout)
	if err != nil {
		return err
	}
	if skills == "" {
		return nil
	}

	if err := a.profiles.SaveAdditionalSkills(ctx, skills); err != nil {
		fmt.Println(err.Error())
		return nil
	}
	fmt.Println("Additional skills saved.")
	return nil
}

func printCourseChoices(courses []models.Course) {
	if len(courses) == 0 {
		fmt.Println("No matches.")
		return
	}
	for i, c := range courses {
		marker := " "
		if c.Eligible {
			marker = "*"
		}
		fmt.Printf("%d. %s %s %s\n", i+1, marker, c.CourseID, c.Name)
	}
}

func printCourses(courses []models.Course) {
	for _, c := range courses {
		fmt.Printf("- %s %s\n", c.CourseID, c.Name)
		if c.Description != "" {
			fmt.Printf("    %s\n", truncate(c.Description, descriptionLimit))
		}
	}
}
