package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Validate(t *testing.T) {
	assert.NoError(t, User{ID: "1", Email: "a@x.com"}.Validate())
	assert.Error(t, User{Email: "a@x.com"}.Validate())
	assert.Error(t, User{ID: "1"}.Validate())
}

func TestProfileUpdateInput_WithoutPasswordChange(t *testing.T) {
	t.Run("no new password drops the whole group", func(t *testing.T) {
		in := ProfileUpdateInput{Name: "Jane", Email: "jane@x.com", OldPassword: "old", PasswordConfirmation: "x"}
		got := in.WithoutPasswordChange()
		assert.Equal(t, ProfileUpdateInput{Name: "Jane", Email: "jane@x.com"}, got)

		b, err := json.Marshal(got)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Jane","email":"jane@x.com"}`, string(b))
	})

	t.Run("new password keeps the group", func(t *testing.T) {
		in := ProfileUpdateInput{Name: "Jane", Email: "jane@x.com", OldPassword: "old123", Password: "new123", PasswordConfirmation: "new123"}
		assert.Equal(t, in, in.WithoutPasswordChange())
	})
}

func TestUser_JSONFieldNames(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"id":"7","name":"Jane","email":"jane@x.com","avatar_url":"http://cdn/a.png"}`), &u))
	assert.Equal(t, User{ID: "7", Name: "Jane", Email: "jane@x.com", AvatarURL: "http://cdn/a.png"}, u)
}
