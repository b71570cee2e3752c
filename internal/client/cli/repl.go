package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Categories(ctx context.Context) error
	AddCategory(ctx context.Context) error
	RenameCategory(ctx context.Context, args []string) error
	DeleteCategory(ctx context.Context, args []string) error
	Expenses(ctx context.Context) error
	AddExpense(ctx context.Context) error
	EditExpense(ctx context.Context, args []string) error
	DeleteExpense(ctx context.Context, args []string) error
	Summary(ctx context.Context, args []string) error
	Total(ctx context.Context, args []string) error
	Month(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, help, exit"
	helpLoggedIn  = "Available commands: categories, addcategory, renamecategory <id>, delcategory <id>, expenses, addexpense, editexpense <id>, delexpense <id>, month <yyyy-mm>, summary <yyyy-mm>, total <yyyy-mm>, export <target>, logout, help, exit"
)

// runREPL reads commands from reader until EOF, "exit" or "quit", or until
// ctx is canceled. The prompt shows the current status from statusFn.
//
// Errors returned by command handlers are ignored here; the controller has
// already turned them into notifications.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "expenses%s> ", statusFn())

		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
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
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "categories":
			_ = a.Categories(ctx)
		case "addcategory":
			_ = a.AddCategory(ctx)
		case "renamecategory":
			_ = a.RenameCategory(ctx, args)
		case "delcategory":
			_ = a.DeleteCategory(ctx, args)

		case "expenses":
			_ = a.Expenses(ctx)
		case "addexpense":
			_ = a.AddExpense(ctx)
		case "editexpense":
			_ = a.EditExpense(ctx, args)
		case "delexpense":
			_ = a.DeleteExpense(ctx, args)

		case "summary":
			_ = a.Summary(ctx, args)
		case "total":
			_ = a.Total(ctx, args)
		case "month":
			_ = a.Month(ctx, args)
		case "export":
			_ = a.Export(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
