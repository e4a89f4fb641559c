package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. App satisfies it.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) error
	Translate(ctx context.Context, args []string) error
	History(ctx context.Context, args []string) error
	SetKey(ctx context.Context) error
	SetDirection(ctx context.Context, args []string) error
}

// runREPL reads commands line by line from reader until EOF or exit/quit.
//
//	Not logged in:
//	  help, register, login, setkey, dir, exit
//
//	Logged in:
//	  help, translate [ko2ja|ja2ko], history [n], me, setkey, dir <direction>, logout, exit
//
// Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func(context.Context) string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("langgpt %s> ", statusFn(ctx)))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: (t)ranslate [ko2ja|ja2ko], (h)istory [n], me, setkey, dir <direction>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, setkey, dir <direction>, exit")
			}
		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "me":
			cmdErr = a.Me(ctx)
		case "t", "translate":
			cmdErr = a.Translate(ctx, args)
		case "h", "history":
			cmdErr = a.History(ctx, args)
		case "setkey":
			cmdErr = a.SetKey(ctx)
		case "dir":
			cmdErr = a.SetDirection(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
	}
}
