package oauth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/callcenter/internal/clients/oauth"
	"github.com/samandr77/microservices/callcenter/internal/entity"
)

func TestStateSigner_RoundTrip(t *testing.T) {
	t.Parallel()

	s := oauth.NewStateSigner("secret", 10*time.Minute)

	token, st, err := s.Issue("slack", "org_1", "user_3")
	require.NoError(t, err)
	require.NotEmpty(t, st.Nonce)

	claims, err := s.Parse(token, "slack")
	require.NoError(t, err)
	require.Equal(t, st.Nonce, claims.ID)
	require.Equal(t, "org_1", claims.OrganizationID)
	require.Equal(t, "user_3", claims.UserID)
}

func TestStateSigner_Rejects(t *testing.T) {
	t.Parallel()

	s := oauth.NewStateSigner("secret", 10*time.Minute)

	token, _, err := s.Issue("slack", "org_1", "")
	require.NoError(t, err)

	_, err = s.Parse(token, "asana")
	require.ErrorIs(t, err, entity.ErrOAuthInvalidState)

	_, err = s.Parse("", "slack")
	require.ErrorIs(t, err, entity.ErrOAuthInvalidState)

	_, err = s.Parse("forged.state.value", "slack")
	require.ErrorIs(t, err, entity.ErrOAuthInvalidState)

	other := oauth.NewStateSigner("another-secret", 10*time.Minute)
	_, err = other.Parse(token, "slack")
	require.ErrorIs(t, err, entity.ErrOAuthInvalidState)
}

func TestStateSigner_Expired(t *testing.T) {
	t.Parallel()

	s := oauth.NewStateSigner("secret", time.Minute)

	token, _, err := s.Issue("stripe", "org_1", "")
	require.NoError(t, err)

	s.SetNow(func() time.Time { return time.Now().Add(2 * time.Minute) })

	_, err = s.Parse(token, "stripe")
	require.ErrorIs(t, err, entity.ErrOAuthInvalidState)
}
