package models

// Credentials are collected per sign-in attempt and never persisted.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegistrationInput is the body of POST /users.
type RegistrationInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordInput is the body of POST /password/forgot.
type ForgotPasswordInput struct {
	Email string `json:"email"`
}

// ResetPasswordInput is the body of POST /password/reset.
type ResetPasswordInput struct {
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Token                string `json:"token"`
}

// ProfileUpdateInput is the body of PUT /profile. The password group is
// either sent whole or not at all; see WithoutPasswordChange.
type ProfileUpdateInput struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	OldPassword          string `json:"old_password,omitempty"`
	Password             string `json:"password,omitempty"`
	PasswordConfirmation string `json:"password_confirmation,omitempty"`
}

// ChangesPassword reports whether the input carries a new password.
func (p ProfileUpdateInput) ChangesPassword() bool {
	return p.Password != ""
}

// WithoutPasswordChange drops the password group unless a new password was
// given, so a half-filled group never reaches the server.
func (p ProfileUpdateInput) WithoutPasswordChange() ProfileUpdateInput {
	if p.ChangesPassword() {
		return p
	}
	return ProfileUpdateInput{Name: p.Name, Email: p.Email}
}

// AvatarFile is a file picked for PATCH /users/avatar.
type AvatarFile struct {
	Name string
	Data []byte
}
