package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"library-management/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()
	key := []byte("test-key")

	token, err := auth.NewToken(key, 7, "marian", time.Hour)
	require.NoError(t, err)

	claims, err := auth.ParseToken(key, token)
	require.NoError(t, err)
	require.Equal(t, int64(7), claims.LibrarianID)
	require.Equal(t, "marian", claims.Name)
}

func TestParseToken_WrongKey(t *testing.T) {
	t.Parallel()

	token, err := auth.NewToken([]byte("test-key"), 7, "marian", time.Hour)
	require.NoError(t, err)

	_, err = auth.ParseToken([]byte("other-key"), token)
	require.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()
	key := []byte("test-key")

	token, err := auth.NewToken(key, 7, "marian", -time.Minute)
	require.NoError(t, err)

	_, err = auth.ParseToken(key, token)
	require.Error(t, err)
}
