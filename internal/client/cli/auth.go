package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/dmitrijs2005/gobarber/internal/client/forms"
	"github.com/dmitrijs2005/gobarber/internal/client/validation"
	"github.com/dmitrijs2005/gobarber/internal/common"
)

// getSimpleText, getTextWithDefault and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText      = GetSimpleText
	getTextWithDefault = GetTextWithDefault
	getPassword        = GetPassword
)

// promptPassword reads a password and returns it as a string, wiping the
// raw bytes.
func (a *App) promptPassword(prompt string) (string, error) {
	pw, err := getPassword(a.out, prompt)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// Login prompts for credentials and submits the sign-in form.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := a.promptPassword("Enter password")
	if err != nil {
		return err
	}

	form := forms.NewSignIn(a.deps())
	out := form.Submit(ctx, validation.Data{
		forms.FieldEmail:    email,
		forms.FieldPassword: password,
	})
	a.report(form, out)

	if out == forms.OutcomeSucceeded {
		log.Printf("Logged in as %s", a.session.User().Name)
	}
	return nil
}

// Register prompts for name, e-mail and password and submits the sign-up
// form.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := a.promptPassword("Enter password")
	if err != nil {
		return err
	}

	form := forms.NewSignUp(a.deps())
	a.report(form, form.Submit(ctx, validation.Data{
		forms.FieldName:     name,
		forms.FieldEmail:    email,
		forms.FieldPassword: password,
	}))
	return nil
}

// ForgotPassword asks the server to send a password reset link.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	form := forms.NewForgotPassword(a.deps())
	a.report(form, form.Submit(ctx, validation.Data{forms.FieldEmail: email}))
	return nil
}

// ResetPassword sets a new password. query is the query string of the link
// from the recovery e-mail, e.g. "?token=...".
func (a *App) ResetPassword(ctx context.Context, query string) error {
	a.router.Navigate(forms.RouteResetPassword + query)

	password, err := a.promptPassword("New password")
	if err != nil {
		return err
	}
	confirmation, err := a.promptPassword("Confirm password")
	if err != nil {
		return err
	}

	form := forms.NewResetPassword(a.deps(), query)
	a.report(form, form.Submit(ctx, validation.Data{
		forms.FieldPassword:             password,
		forms.FieldPasswordConfirmation: confirmation,
	}))
	return nil
}

// Logout forgets the session here and on disk.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.SignOut(ctx); err != nil {
		return err
	}
	log.Printf("Logged out")
	a.router.Navigate(forms.RouteSignIn)
	return nil
}

// WhoAmI prints the signed-in user.
func (a *App) WhoAmI(_ context.Context) error {
	sess, ok := a.session.Session()
	if !ok {
		return common.ErrNotAuthenticated
	}
	fmt.Fprintf(a.out, "%s <%s>\n", sess.User.Name, sess.User.Email)
	if sess.User.AvatarURL != "" {
		fmt.Fprintf(a.out, "avatar: %s\n", sess.User.AvatarURL)
	}
	return nil
}
