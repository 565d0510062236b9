package forms

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/gobarber/internal/client/client"
	"github.com/dmitrijs2005/gobarber/internal/client/models"
	"github.com/dmitrijs2005/gobarber/internal/client/toast"
	"github.com/dmitrijs2005/gobarber/internal/client/validation"
	"github.com/dmitrijs2005/gobarber/internal/common"
	"github.com/dmitrijs2005/gobarber/internal/logging"
)

// Field names shared by the schemas and the REPL prompts.
const (
	FieldName                 = "name"
	FieldEmail                = "email"
	FieldPassword             = "password"
	FieldOldPassword          = "old_password"
	FieldPasswordConfirmation = "password_confirmation"
	FieldAvatar               = "avatar"
)

const (
	msgNameRequired     = "Digite seu nome completo"
	msgEmailRequired    = "Digite seu e-mail"
	msgEmailInvalid     = "Digite um e-mail válido"
	msgPasswordRequired = "Digite sua senha"
	msgPasswordMin      = "Digite uma senha com no mínimo 6 caracteres"
	msgNewPassword      = "Digite uma nova senha"
	msgNewPasswordMin   = "Digite uma nova senha com no mínimo 6 caracteres"
	msgOldPassword      = "Digite sua senha atual"
	msgPasswordsDiffer  = "Senhas não são iguais"

	minPasswordLength = 6
)

// Session is the part of the session store the forms mutate.
type Session interface {
	SignIn(ctx context.Context, creds models.Credentials) error
	UpdateUser(ctx context.Context, user models.User) error
	User() models.User
}

// Deps are the collaborators shared by every form.
type Deps struct {
	API       client.Client
	Session   Session
	Notifier  toast.Notifier
	Navigator Navigator
	Log       logging.Logger
}

func (d Deps) controller(def Definition, initial validation.Data) *Controller {
	log := d.Log
	if log == nil {
		log = logging.Discard()
	}
	return NewController(def, d.Notifier, d.Navigator, log, initial)
}

func emailRules() []validation.Rule {
	return []validation.Rule{
		validation.Required(msgEmailRequired),
		validation.Email(msgEmailInvalid),
	}
}

// NewSignIn authenticates and moves to the dashboard.
func NewSignIn(d Deps) *Controller {
	return d.controller(Definition{
		Name: "sign-in",
		Schema: validation.Schema{
			FieldEmail:    emailRules(),
			FieldPassword: {validation.Required(msgPasswordRequired)},
		},
		Run: func(ctx context.Context, data validation.Data) error {
			return d.Session.SignIn(ctx, models.Credentials{
				Email:    data[FieldEmail],
				Password: data[FieldPassword],
			})
		},
		Failure: toast.Message{
			Title:       "Erro na autenticação",
			Description: "Ocorreu um erro ao realizar o login, cheque as credenciais",
		},
		Next:           RouteDashboard,
		ExposesLoading: true,
	}, nil)
}

// NewSignUp creates an account and returns to the sign-in page.
func NewSignUp(d Deps) *Controller {
	return d.controller(Definition{
		Name: "sign-up",
		Schema: validation.Schema{
			FieldName:     {validation.Required(msgNameRequired)},
			FieldEmail:    emailRules(),
			FieldPassword: {validation.MinLength(minPasswordLength, msgPasswordMin)},
		},
		Run: func(ctx context.Context, data validation.Data) error {
			_, err := d.API.CreateUser(ctx, models.RegistrationInput{
				Name:     data[FieldName],
				Email:    data[FieldEmail],
				Password: data[FieldPassword],
			})
			return err
		},
		Success: toast.Message{
			Title:       "Cadastro realizado com sucesso",
			Description: "Você já pode fazer seu logon no GoBarber",
		},
		Failure: toast.Message{
			Title:       "Erro no cadastro",
			Description: "Ocorreu um erro ao realizar o cadastro, cheque as credenciais",
		},
		Next: RouteSignIn,
	}, nil)
}

// NewForgotPassword asks the server to e-mail a reset link. The server
// answers the same way whether or not the address is registered.
func NewForgotPassword(d Deps) *Controller {
	return d.controller(Definition{
		Name:   "forgot-password",
		Schema: validation.Schema{FieldEmail: emailRules()},
		Run: func(ctx context.Context, data validation.Data) error {
			return d.API.ForgotPassword(ctx, models.ForgotPasswordInput{Email: data[FieldEmail]})
		},
		Success: toast.Message{
			Title:       "E-mail de recuperação enviado",
			Description: "Caso esse email esteja cadastrado, enviaremos nele uma link para recuperar sua senha",
		},
		Failure: toast.Message{
			Title:       "Erro na recuperação de senha",
			Description: "Ocorreu um erro ao tentar realizar a recuperação de senha. Tente novamente",
		},
		Next:           RouteSignIn,
		ExposesLoading: true,
	}, nil)
}

// ResetToken extracts the token parameter from a query string such as
// "?token=abc". It returns common.ErrMissingResetToken when there is none.
func ResetToken(query string) (string, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(query, "?"))
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrMissingResetToken, err)
	}
	token := values.Get("token")
	if token == "" {
		return "", common.ErrMissingResetToken
	}
	return token, nil
}

// NewResetPassword sets a new password using the token found in query.
// A missing token fails the submission before any request is made.
func NewResetPassword(d Deps, query string) *Controller {
	return d.controller(Definition{
		Name: "reset-password",
		Schema: validation.Schema{
			FieldPassword: {
				validation.MinLength(minPasswordLength, msgPasswordMin),
				validation.Required(msgNewPassword),
			},
			FieldPasswordConfirmation: {
				validation.EqualTo(FieldPassword, msgPasswordsDiffer),
				validation.Required(msgPasswordRequired),
			},
		},
		Run: func(ctx context.Context, data validation.Data) error {
			token, err := ResetToken(query)
			if err != nil {
				return err
			}
			return d.API.ResetPassword(ctx, models.ResetPasswordInput{
				Password:             data[FieldPassword],
				PasswordConfirmation: data[FieldPasswordConfirmation],
				Token:                token,
			})
		},
		Failure: toast.Message{
			Title:       "Erro ao resetar senha",
			Description: "Ocorreu um erro ao resetar a senha. Tente novamente.",
		},
		Next: RouteSignIn,
	}, nil)
}

// ProfileSchema validates the profile form. The password group is checked
// only when old_password is filled in, and old_password is demanded as soon
// as a new password is typed.
func ProfileSchema() validation.Schema {
	return validation.Schema{
		FieldName:        {validation.Required(msgNameRequired)},
		FieldEmail:       emailRules(),
		FieldOldPassword: {validation.When(FieldPassword, validation.NotEmpty, validation.Required(msgOldPassword))},
		FieldPassword: {validation.When(FieldOldPassword, validation.NotEmpty,
			validation.MinLength(minPasswordLength, msgNewPasswordMin),
			validation.Required(msgNewPassword),
		)},
		FieldPasswordConfirmation: {
			validation.When(FieldOldPassword, validation.NotEmpty,
				validation.MinLength(minPasswordLength, msgNewPasswordMin),
				validation.Required(msgNewPassword),
			),
			validation.EqualTo(FieldPassword, msgPasswordsDiffer),
		},
	}
}

// NewProfile edits the signed-in user. Its values start from the current
// user's name and e-mail.
func NewProfile(d Deps) *Controller {
	user := d.Session.User()
	return d.controller(Definition{
		Name:   "profile",
		Schema: ProfileSchema(),
		Run: func(ctx context.Context, data validation.Data) error {
			in := models.ProfileUpdateInput{
				Name:                 data[FieldName],
				Email:                data[FieldEmail],
				OldPassword:          data[FieldOldPassword],
				Password:             data[FieldPassword],
				PasswordConfirmation: data[FieldPasswordConfirmation],
			}
			updated, err := d.API.UpdateProfile(ctx, in.WithoutPasswordChange())
			if err != nil {
				return err
			}
			return d.Session.UpdateUser(ctx, updated)
		},
		Success: toast.Message{
			Title:       "Perfil atualizado",
			Description: "Suas informações de perfil foram atualizadas com sucesso",
		},
		Failure: toast.Message{
			Title:       "Erro na alteração do perfil",
			Description: "Ocorreu um erro ao alterar suas informações, tente novamente",
		},
		Next: RouteDashboard,
	}, validation.Data{FieldName: user.Name, FieldEmail: user.Email})
}
