package token_test

import (
	"testing"
	"time"

	"github.com/subahan00/job-portal/pkg/token"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	m := token.NewManager("test-secret", time.Hour)

	t.Run("Issued tokens validate and carry the principal", func(t *testing.T) {
		tok, err := m.Generate("user1", "a@b.com", "applicant")
		assert.NoError(t, err)
		assert.NotEmpty(t, tok)

		claims, err := m.Validate(tok)
		assert.NoError(t, err)
		assert.Equal(t, "user1", claims.UserID)
		assert.Equal(t, "a@b.com", claims.Email)
		assert.Equal(t, "applicant", claims.Role)
	})

	t.Run("Tokens signed with another secret are rejected", func(t *testing.T) {
		other := token.NewManager("other-secret", time.Hour)
		tok, err := other.Generate("user1", "a@b.com", "applicant")
		assert.NoError(t, err)

		_, err = m.Validate(tok)
		assert.Error(t, err)
	})

	t.Run("Expired tokens are rejected", func(t *testing.T) {
		short := token.NewManager("test-secret", -time.Minute)
		tok, err := short.Generate("user1", "a@b.com", "applicant")
		assert.NoError(t, err)

		_, err = m.Validate(tok)
		assert.Error(t, err)
	})

	t.Run("Garbage input is rejected", func(t *testing.T) {
		_, err := m.Validate("not.a.token")
		assert.Error(t, err)
	})
}
