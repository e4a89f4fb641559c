package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/langgpt/internal/common"
)

// getSimpleText, getSecret and getMultiline are indirections used in tests.
var (
	getSimpleText = GetSimpleText
	getSecret     = GetSecret
	getMultiline  = GetMultiline
)

var directions = map[string]bool{"ko2ja": true, "ja2ko": true}

// Register prompts for username, email and password and creates an account.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getSecret(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Register(ctx, username, email, password); err != nil {
		return err
	}

	printlnFn("Registered. You can log in now.")
	return nil
}

// Login prompts for credentials and stores the session locally.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getSecret(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, username, password); err != nil {
		return err
	}

	printlnFn("Logged in as", username)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out")
	return nil
}

func (a *App) Me(ctx context.Context) error {
	u, err := a.session.Me(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("#%d %s <%s>", u.ID, u.Username, u.Email))
	if since, ok, err := a.session.LoggedInAt(ctx); err == nil && ok {
		printlnFn("Session started", since.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// Translate reads text and prints the draft and the reviewed translation.
// An optional argument overrides the current direction for this call.
func (a *App) Translate(ctx context.Context, args []string) error {
	direction := a.direction
	if len(args) > 0 {
		direction = args[0]
	}
	if !directions[direction] {
		return fmt.Errorf("unknown direction %q (use ko2ja or ja2ko)", direction)
	}

	text, err := getMultiline(a.reader, "Enter text to translate", a.out)
	if err != nil {
		return err
	}
	if text == "" {
		return fmt.Errorf("nothing to translate")
	}

	printlnFn("Translating...")
	res, err := a.session.Translate(ctx, text, direction)
	if err != nil {
		return err
	}

	printlnFn("Draft:")
	printlnFn(res.Translated)
	printlnFn("Reviewed:")
	printlnFn(res.Reviewed)
	return nil
}

// History prints past translations, newest first.
func (a *App) History(ctx context.Context, args []string) error {
	limit := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("history limit must be a positive number")
		}
		limit = n
	}

	recs, err := a.session.History(ctx, limit)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		printlnFn("No translations yet")
		return nil
	}

	for _, r := range recs {
		printlnFn(fmt.Sprintf("[%d] %s", r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04")))
		printlnFn("  ", r.OriginalText)
		printlnFn("  ->", r.ReviewedText)
	}
	return nil
}

// SetKey stores the user's own model key. An empty input removes it.
func (a *App) SetKey(ctx context.Context) error {
	key, err := getSecret(a.reader, "Enter your OpenAI API key (empty to remove)", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(key)

	if err := a.session.SetAPIKey(ctx, string(key)); err != nil {
		return err
	}

	if strings.TrimSpace(string(key)) == "" {
		printlnFn("API key removed")
	} else {
		printlnFn("API key saved")
	}
	return nil
}

func (a *App) SetDirection(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Current direction:", a.direction)
		return nil
	}
	if !directions[args[0]] {
		return fmt.Errorf("unknown direction %q (use ko2ja or ja2ko)", args[0])
	}
	a.direction = args[0]
	return nil
}
