package cli

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/khebbar/ayuda-cli/internal/client/models"
	"github.com/khebbar/ayuda-cli/internal/validation"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup walks the access-code gate and the account form. The access code is
// only shape-checked here; the server decides whether it is actually valid.
// On success the user is sent back to log in, no token is issued.
func (a *App) Signup(ctx context.Context) error {
	accessCode, err := getSimpleText(a.reader, "Enter access code", os.Stdout)
	if err != nil {
		return err
	}
	if ok, msg := validation.ValidateAccessCode(accessCode); !ok {
		fmt.Println(msg)
		return nil
	}

	firstName, err := getSimpleText(a.reader, "First name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Last name", os.Stdout)
	if err != nil {
		return err
	}
	university, err := getSimpleText(a.reader, "University", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	major, err := getSimpleText(a.reader, "Major", os.Stdout)
	if err != nil {
		return err
	}
	dob, err := getSimpleText(a.reader, "Date of birth (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	form := validation.SignupForm{
		FirstName:  firstName,
		LastName:   lastName,
		University: university,
		Email:      email,
		Major:      major,
		DOB:        dob,
		Password:   string(password),
		AccessCode: accessCode,
	}
	if errs := validation.ValidateSignup(form); len(errs) > 0 {
		printFieldErrors(errs)
		return nil
	}

	req := &models.SignupRequest{
		FirstName:  firstName,
		LastName:   lastName,
		University: university,
		Email:      email,
		Major:      major,
		DOB:        dob,
		Password:   string(password),
		AccessCode: accessCode,
	}
	if err := a.auth.Signup(ctx, req); err != nil {
		fmt.Println(err.Error())
		return nil
	}

	fmt.Println("Account created. Please log in.")
	return nil
}

// Login prompts for credentials, validates their shape locally, and
// authenticates. On success the session holds the token and the cached user.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if errs := validation.ValidateLogin(email, string(password)); len(errs) > 0 {
		printFieldErrors(errs)
		return nil
	}

	user, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		fmt.Println(err.Error())
		return nil
	}

	fmt.Printf("Welcome, %s!\n", user.FirstName)
	return nil
}

// Logout clears the session. The recommendation payload is dropped with it;
// results never outlive the session that produced them.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout()
	a.lastResult = nil
	a.resumeUploaded = false
	fmt.Println("Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s %s <%s>\n", u.FirstName, u.LastName, u.Email)
	fmt.Printf("  University: %s\n  Major: %s\n", u.University, u.Major)
	return nil
}

func printFieldErrors(errs map[string]string) {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Printf("%s: %s\n", f, errs[f])
	}
}
