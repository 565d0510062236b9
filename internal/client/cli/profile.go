package cli

import (
	"context"

	"github.com/dmitrijs2005/gobarber/internal/client/forms"
	"github.com/dmitrijs2005/gobarber/internal/client/models"
	"github.com/dmitrijs2005/gobarber/internal/client/validation"
	"github.com/dmitrijs2005/gobarber/internal/common"
	"github.com/dmitrijs2005/gobarber/internal/filex"
)

// Profile edits the signed-in user. Name and e-mail default to the current
// values; leaving the new password empty keeps the old one.
func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrNotAuthenticated
	}
	a.router.Navigate(forms.RouteProfile)

	form := forms.NewProfile(a.deps())
	current := form.Values()

	name, err := getTextWithDefault(a.reader, "Name", current[forms.FieldName], a.out)
	if err != nil {
		return err
	}
	email, err := getTextWithDefault(a.reader, "Email", current[forms.FieldEmail], a.out)
	if err != nil {
		return err
	}
	oldPassword, err := a.promptPassword("Current password (empty to keep)")
	if err != nil {
		return err
	}
	data := validation.Data{
		forms.FieldName:        name,
		forms.FieldEmail:       email,
		forms.FieldOldPassword: oldPassword,
	}
	if oldPassword != "" {
		if data[forms.FieldPassword], err = a.promptPassword("New password"); err != nil {
			return err
		}
		if data[forms.FieldPasswordConfirmation], err = a.promptPassword("Confirm password"); err != nil {
			return err
		}
	}

	a.report(form, form.Submit(ctx, data))
	return nil
}

// Avatar uploads the file at path as the new avatar.
func (a *App) Avatar(ctx context.Context, path string) error {
	if !a.isLoggedIn() {
		return common.ErrNotAuthenticated
	}

	name, data, err := filex.ReadUpload(path)
	if err != nil {
		return err
	}

	form := forms.NewAvatar(a.deps())
	a.report(form.Controller, form.Change(ctx, []models.AvatarFile{{Name: name, Data: data}}))
	return nil
}
