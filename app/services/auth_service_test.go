package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchstore/merchstore/app/repositories"
	"github.com/merchstore/merchstore/app/services"
	"github.com/merchstore/merchstore/pkg/apperr"
	"github.com/merchstore/merchstore/pkg/auth"
)

func TestLoginSuccess(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice@example.com", "password123", true)

	svc := services.NewAuthService(repositories.NewUserRepository(db))

	token, err := svc.Login(context.Background(), "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	require.NotEmpty(t, token.AccessToken)

	claims, err := auth.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

// Unknown email, wrong password and a deactivated account must be
// indistinguishable to the caller.
func TestLoginFailuresAreUniform(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "alice@example.com", "password123", true)
	seedUser(t, db, "inactive@example.com", "password123", false)

	svc := services.NewAuthService(repositories.NewUserRepository(db))

	cases := []struct {
		name            string
		email, password string
	}{
		{"unknown email", "nobody@example.com", "password123"},
		{"wrong password", "alice@example.com", "wrong-password"},
		{"inactive account", "inactive@example.com", "password123"},
	}

	var messages []string
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), c.email, c.password)
			require.Error(t, err)
			assert.Equal(t, apperr.CodeInvalidCredentials, apperr.CodeOf(err))
			messages = append(messages, err.Error())
		})
	}

	for i := 1; i < len(messages); i++ {
		assert.Equal(t, messages[0], messages[i], "failure messages must not differ")
	}
}
