package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	UploadResume(ctx context.Context) error
	Search(ctx context.Context) error
	Courses(ctx context.Context) error
	RemoveCourse(ctx context.Context) error
	Skills(ctx context.Context) error
	Profile(ctx context.Context) error
	Recommend(ctx context.Context) error
	Recommendations(ctx context.Context) error
	Explain(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the Ayuda CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// This is the single command table: every screen transition the client knows
// goes through it, gated only on login state.
//
//	Not logged in:
//	  - help           — show available commands
//	  - signup         — create an account (access code required)
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - upload          — upload a resume (PDF or DOCX)
//	  - search          — incremental course search, add completed courses
//	  - courses         — list completed courses
//	  - remove          — remove a completed course
//	  - skills          — view or edit additional skills
//	  - profile         — view or edit the stored profile
//	  - recommend       — request fresh course recommendations
//	  - recommendations — show the current recommendation set
//	  - explain         — AI explanation for a recommended course
//	  - whoami          — show the logged-in user
//	  - logout          — log out
//	  - exit | quit     — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ayuda %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: signup, login, exit")
			case "signup":
				_ = a.Signup(ctx)
			case "login":
				_ = a.Login(ctx)
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Please log in first. Available commands: signup, login, exit")
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: upload, search, courses, remove, skills, profile, recommend, recommendations, explain, whoami, logout, exit")

		case "upload":
			_ = a.UploadResume(ctx)

		case "search":
			_ = a.Search(ctx)

		case "courses":
			_ = a.Courses(ctx)

		case "remove":
			_ = a.RemoveCourse(ctx)

		case "skills":
			_ = a.Skills(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "recommend":
			_ = a.Recommend(ctx)

		case "recommendations":
			_ = a.Recommendations(ctx)

		case "explain":
			_ = a.Explain(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
