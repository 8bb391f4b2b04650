package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Jobs(ctx context.Context, args []string) error
	Filter(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Save(ctx context.Context, args []string) error
	Saved(ctx context.Context) error
	Post(ctx context.Context) error
	Apply(ctx context.Context, args []string) error
	Applications(ctx context.Context) error
	Profile(ctx context.Context) error
	Counts(ctx context.Context) error
	Theme(ctx context.Context, args []string) error
}

const helpAnon = "Available commands: jobs, filter, show, save, saved, post, apply, applications, counts, theme, register, login, exit"
const helpUser = "Available commands: jobs, filter, show, save, saved, post, apply, applications, profile, counts, theme, whoami, logout, exit"

// runREPL starts a simple read–eval–print loop for the JobHunt CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a' with the remaining tokens as arguments.
// Unknown commands are reported back to the user. The loop exits on EOF or
// when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("jobhunt %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpUser)
			} else {
				printlnFn(helpAnon)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "l", "jobs":
			_ = a.Jobs(ctx, args)

		case "filter":
			_ = a.Filter(ctx, args)

		case "show":
			_ = a.Show(ctx, args)

		case "save":
			_ = a.Save(ctx, args)

		case "saved":
			_ = a.Saved(ctx)

		case "post":
			_ = a.Post(ctx)

		case "apply":
			_ = a.Apply(ctx, args)

		case "applications":
			_ = a.Applications(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "counts":
			_ = a.Counts(ctx)

		case "theme":
			_ = a.Theme(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
