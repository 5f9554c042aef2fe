package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context) error
	Upload(ctx context.Context, paths []string) error
	Download(ctx context.Context, args []string) error
	Share(ctx context.Context, args []string) error
	Stats(ctx context.Context, args []string) error
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on a. Unknown commands are reported back. The loop
// exits on scanner EOF or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("herogram (%s) > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, upload <path>..., download <id> [dest], share <id>, stats <id>, whoami, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "upload":
			if len(args) == 0 {
				printlnFn("Usage: upload <path> [<path>...]")
				continue
			}
			_ = a.Upload(ctx, args)

		case "download":
			if len(args) == 0 {
				printlnFn("Usage: download <id> [dest]")
				continue
			}
			_ = a.Download(ctx, args)

		case "share":
			if len(args) == 0 {
				printlnFn("Usage: share <id>")
				continue
			}
			_ = a.Share(ctx, args)

		case "stats":
			if len(args) == 0 {
				printlnFn("Usage: stats <id>")
				continue
			}
			_ = a.Stats(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
