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
	Today(ctx context.Context) error
	Add(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Month(ctx context.Context) error
	Search(ctx context.Context) error
	Random(ctx context.Context) error
	Export(ctx context.Context) error
	Import(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the journal shell.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	today          - show or write today's entry
//	add            - backfill an entry for a past date
//	list           - list all entries, newest first
//	show           - show one entry by date
//	edit           - change an entry's text or rating
//	delete         - remove an entry
//	month          - statistics for one calendar month
//	search         - find entries by text
//	random         - resurface a random past entry
//	export, import - snapshot the journal to/from a JSON file
//	exit | quit    - leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("jar> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: today, add, (l)ist, show, edit, delete, month, search, random, export, import, exit")

		case "t", "today":
			_ = a.Today(ctx)

		case "add":
			_ = a.Add(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			_ = a.Show(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "month":
			_ = a.Month(ctx)

		case "search":
			_ = a.Search(ctx)

		case "random":
			_ = a.Random(ctx)

		case "export":
			_ = a.Export(ctx)

		case "import":
			_ = a.Import(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
