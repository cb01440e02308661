// Package cli provides the interactive Ayuda command-line client.
//
// It wires configuration, the HTTP gateway, API services, and an interactive
// REPL that mirrors the product's intake flow: sign up with an access code,
// log in, upload a resume, record completed courses and extra skills, then
// request course recommendations with on-demand AI explanations.
//
// Key features:
//   - Signup (access-code gated) / Login / Logout
//   - Resume upload with local type checking
//   - Incremental, debounced course search
//   - Completed-course and additional-skills management
//   - Recommendations with per-course explanations
//
// The REPL is started via App.Run(ctx), which restores any existing session
// and blocks until the user exits. See App, runREPL, and Debouncer for
// details.
package cli
