package forms

import (
	"context"

	"github.com/dmitrijs2005/gobarber/internal/client/models"
	"github.com/dmitrijs2005/gobarber/internal/client/toast"
	"github.com/dmitrijs2005/gobarber/internal/client/validation"
)

// AvatarForm uploads a new avatar as soon as a file is picked. It has no
// schema and never navigates.
type AvatarForm struct {
	*Controller
	deps Deps
}

// NewAvatar builds the avatar form.
func NewAvatar(d Deps) *AvatarForm {
	return &AvatarForm{
		deps: d,
		Controller: d.controller(Definition{
			Name: "avatar",
			Success: toast.Message{
				Title: "Avatar atualizado",
			},
			Failure: toast.Message{
				Title:       "Erro na atualização do avatar",
				Description: "Ocorreu um erro ao atualizar o avatar, tente novamente",
			},
		}, nil),
	}
}

// Change uploads the first of files, skipping validation. An empty
// selection is ignored.
func (a *AvatarForm) Change(ctx context.Context, files []models.AvatarFile) Outcome {
	if len(files) == 0 {
		return OutcomeIgnored
	}
	file := files[0]

	return a.submit(ctx, validation.Data{FieldAvatar: file.Name}, false, func(ctx context.Context, _ validation.Data) error {
		user, err := a.deps.API.UpdateAvatar(ctx, file)
		if err != nil {
			return err
		}
		return a.deps.Session.UpdateUser(ctx, user)
	})
}
