package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/jobhunt/internal/client/models"
	"github.com/dmitrijs2005/jobhunt/internal/common"
)

var errPasswordMismatch = errors.New("passwords do not match")

// Register prompts for the registration form and creates the account.
// The identifier is treated as an email when it contains '@', otherwise as
// a phone number.
func (a *App) Register(ctx context.Context) error {
	first, err := GetSimpleText(a.reader, "First name", a.out)
	if err != nil {
		return a.fail(err)
	}
	last, err := GetSimpleText(a.reader, "Last name (optional)", a.out)
	if err != nil {
		return a.fail(err)
	}
	id, err := GetSimpleText(a.reader, "Email or phone", a.out)
	if err != nil {
		return a.fail(err)
	}

	password, err := GetPassword("Password", a.out)
	if err != nil {
		return a.fail(err)
	}
	defer common.WipeByteArray(password)

	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		return a.fail(err)
	}
	defer common.WipeByteArray(confirm)

	if !bytes.Equal(password, confirm) {
		return a.fail(errPasswordMismatch)
	}

	req := models.RegisterRequest{
		Name:     strings.TrimSpace(first + " " + last),
		Password: bytes.Clone(password),
	}
	if strings.Contains(id, "@") {
		req.Email = id
	} else {
		req.Phone = id
	}

	u, err := a.accounts.Register(ctx, req)
	if err != nil {
		return a.fail(err)
	}
	a.printf("Welcome to JobHunt, %s!\n", first)
	a.log.Debug(ctx, "registered from cli", "user_id", u.ID)
	return nil
}

// Login prompts for an identifier and password and opens a session.
func (a *App) Login(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Email or phone", a.out)
	if err != nil {
		return a.fail(err)
	}
	password, err := GetPassword("Password", a.out)
	if err != nil {
		return a.fail(err)
	}

	u, err := a.accounts.Login(ctx, id, password)
	if err != nil {
		return a.fail(err)
	}
	a.printf("Welcome back, %s!\n", u.Name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.accounts.Logout(ctx)
	a.println("Signed out. See you soon!")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u := a.accounts.CurrentUser()
	if u == nil {
		a.println("Not signed in.")
		return nil
	}
	a.printf("%s (%s)\n", u.Name, firstNonEmpty(u.Email, u.Phone))
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
