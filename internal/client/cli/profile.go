package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Profile re-fetches the stored profile and optionally replaces the skill or
// career-domain lists. The edited lists go up whole; the server owns merging.
func (a *App) Profile(ctx context.Context) error {
	cached := a.session.User()
	if cached == nil {
		fmt.Println("Not logged in.")
		return nil
	}

	user, err := a.profiles.UserByEmail(ctx, cached.Email)
	if err != nil {
		fmt.Println(err.Error())
		return nil
	}
	a.session.SetUser(user)

	fmt.Printf("%s %s <%s>\n", user.FirstName, user.LastName, user.Email)
	fmt.Printf("  University: %s\n  Major: %s\n", user.University, user.Major)
	fmt.Printf("  Skills: %s\n", strings.Join(user.Skills, ", "))
	fmt.Printf("  Career path: %s\n", strings.Join(user.CareerPath, ", "))
	fmt.Printf("  Completed courses: %d\n", len(user.CompletedCourses))

	field, err := getSimpleText(a.reader, "Edit 'skills' or 'domains' (empty to go back)", os.Stdout)
	if err != nil {
		return err
	}

	switch field {
	case "":
		return nil
	case "skills":
		values, err := promptList(a, "Skills, comma separated")
		if err != nil {
			return err
		}
		if err := a.profiles.ReplaceSkills(ctx, user.Email, values); err != nil {
			fmt.Println(err.Error())
			return nil
		}
	case "domains":
		values, err := promptList(a, "Career domains, comma separated")
		if err != nil {
			return err
		}
		if err := a.profiles.ReplaceDomains(ctx, user.Email, values); err != nil {
			fmt.Println(err.Error())
			return nil
		}
	default:
		fmt.Println("Unknown field:", field)
		return nil
	}

	fmt.Println("Profile updated.")
	return nil
}

func promptList(a *App, prompt string) ([]string, error) {
	line, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(line, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}
	return values, nil
}
