package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/himanshu221/medium-backend/internal/errs"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	m := NewManager("test-secret")

	signed, err := m.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	userID, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestVerifyMalformedToken(t *testing.T) {
	m := NewManager("test-secret")

	for _, tok := range []string{"", "garbage", "a.b.c", "Bearer xyz"} {
		_, err := m.Verify(tok)
		assert.ErrorIs(t, err, errs.ErrUnauthorized, "token %q", tok)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewManager("secret-one")
	verifier := NewManager("secret-two")

	signed, err := issuer.Issue(7)
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestVerifyTamperedToken(t *testing.T) {
	m := NewManager("test-secret")

	signed, err := m.Issue(7)
	require.NoError(t, err)

	tampered := signed[:len(signed)-2] + "xx"
	_, err = m.Verify(tampered)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestTwoTokensSameUser(t *testing.T) {
	m := NewManager("test-secret")

	first, err := m.Issue(9)
	require.NoError(t, err)
	second, err := m.Issue(9)
	require.NoError(t, err)

	firstID, err := m.Verify(first)
	require.NoError(t, err)
	secondID, err := m.Verify(second)
	require.NoError(t, err)
	assert.Equal(t, firstID, secondID)
}
