// FILE: logviewer/src/internal/auth/auth_test.go
package auth

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"logviewer/src/internal/config"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestLogger() *log.Logger {
	return log.NewLogger()
}

func newTestAuthenticator(t *testing.T, cfg *config.AuthConfig) *Authenticator {
	t.Helper()
	a, err := New(cfg, newTestLogger())
	require.NoError(t, err)
	require.NotNil(t, a)
	a.failureDelay = 0
	a.blockedDelay = 0
	t.Cleanup(a.Close)
	return a
}

func basicHeader(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.Regexp(t, `^\$argon2id\$v=19\$m=65536,t=3,p=4\$`, hash)

	assert.True(t, VerifyPassword("s3cret", hash))
	assert.False(t, VerifyPassword("wrong", hash))
	assert.False(t, VerifyPassword("s3cret", "$argon2id$garbage"))
	assert.False(t, VerifyPassword("s3cret", ""))

	bc, err := bcrypt.GenerateFromPassword([]byte("legacy"), bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, VerifyPassword("legacy", string(bc)))
	assert.False(t, VerifyPassword("nope", string(bc)))
}

func TestNewDisabled(t *testing.T) {
	for _, typ := range []string{"", "none"} {
		a, err := New(&config.AuthConfig{Type: typ}, newTestLogger())
		require.NoError(t, err)
		assert.Nil(t, a)

		id, err := a.AuthenticateHTTP("", "127.0.0.1:1234")
		require.NoError(t, err)
		assert.Equal(t, "none", id.Method)
		assert.Equal(t, false, a.GetStats()["enabled"])
	}

	_, err := New(&config.AuthConfig{Type: "digest"}, newTestLogger())
	assert.Error(t, err)
}

func TestBasicAuth(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)

	usersFile := filepath.Join(t.TempDir(), "users")
	fileHash, err := HashPassword("filepw")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(usersFile, []byte("# comment\n\nbob:"+fileHash+"\nmalformed\n"), 0600))

	a := newTestAuthenticator(t, &config.AuthConfig{
		Type: "basic",
		Basic: config.BasicAuthConfig{
			Users:     []config.BasicAuthUser{{Username: "alice", PasswordHash: hash}},
			UsersFile: usersFile,
			Realm:     "Logs",
		},
	})

	id, err := a.AuthenticateHTTP(basicHeader("alice", "pw"), "10.0.0.1:5000")
	require.NoError(t, err)
	assert.Equal(t, "alice", id.Username)
	assert.Equal(t, "basic", id.Method)

	id, err = a.AuthenticateHTTP(basicHeader("bob", "filepw"), "10.0.0.2:5000")
	require.NoError(t, err)
	assert.Equal(t, "bob", id.Username)

	_, err = a.AuthenticateHTTP(basicHeader("alice", "bad"), "10.0.0.3:5000")
	assert.Error(t, err)
	_, err = a.AuthenticateHTTP(basicHeader("nobody", "pw"), "10.0.0.4:5000")
	assert.Error(t, err)
	_, err = a.AuthenticateHTTP("Bearer abc", "10.0.0.5:5000")
	assert.Error(t, err)

	assert.Equal(t, "Logs", a.Realm())
	assert.Equal(t, "Basic", a.Scheme())
	assert.Equal(t, 2, a.GetStats()["basic_users"])
}

func TestBearerAuth(t *testing.T) {
	a := newTestAuthenticator(t, &config.AuthConfig{
		Type: "bearer",
		Bearer: config.BearerAuthConfig{
			Tokens: []string{"static-token"},
			JWT: config.JWTConfig{
				SigningKey: "jwt-key",
				Issuer:     "logviewer",
				Audience:   "viewers",
			},
		},
	})
	assert.Equal(t, "Bearer", a.Scheme())

	t.Run("Static", func(t *testing.T) {
		id, err := a.AuthenticateHTTP("Bearer static-token", "10.1.0.1:1")
		require.NoError(t, err)
		assert.Equal(t, "bearer", id.Method)
	})

	t.Run("JWT", func(t *testing.T) {
		token, err := IssueJWT("jwt-key", "carol", "logviewer", "viewers", time.Hour)
		require.NoError(t, err)

		id, err := a.AuthenticateHTTP("Bearer "+token, "10.1.0.2:1")
		require.NoError(t, err)
		assert.Equal(t, "jwt", id.Method)
		assert.Equal(t, "carol", id.Username)
	})

	t.Run("JWTRejected", func(t *testing.T) {
		cases := map[string]func() (string, error){
			"WrongKey":      func() (string, error) { return IssueJWT("other", "x", "logviewer", "viewers", time.Hour) },
			"WrongIssuer":   func() (string, error) { return IssueJWT("jwt-key", "x", "someone", "viewers", time.Hour) },
			"WrongAudience": func() (string, error) { return IssueJWT("jwt-key", "x", "logviewer", "admins", time.Hour) },
			"Expired":       func() (string, error) { return IssueJWT("jwt-key", "x", "logviewer", "viewers", -time.Hour) },
		}
		i := 0
		for name, issue := range cases {
			i++
			t.Run(name, func(t *testing.T) {
				token, err := issue()
				require.NoError(t, err)
				_, err = a.AuthenticateHTTP("Bearer "+token, fmt.Sprintf("10.1.1.%d:1", i))
				assert.Error(t, err)
			})
		}
	})

	t.Run("UnknownToken", func(t *testing.T) {
		_, err := a.AuthenticateHTTP("Bearer nope", "10.1.0.3:1")
		assert.Error(t, err)
	})
}

func TestAttemptBlocking(t *testing.T) {
	a := newTestAuthenticator(t, &config.AuthConfig{
		Type:   "bearer",
		Bearer: config.BearerAuthConfig{Tokens: []string{"tok"}},
	})

	// Burst of 3 is allowed
	for range 3 {
		_, err := a.AuthenticateHTTP("Bearer bad", "10.2.0.1:1")
		require.Error(t, err)
	}

	_, err := a.AuthenticateHTTP("Bearer tok", "10.2.0.1:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit exceeded")

	_, err = a.AuthenticateHTTP("Bearer tok", "10.2.0.1:2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "temporarily blocked")

	// Other clients are unaffected
	_, err = a.AuthenticateHTTP("Bearer tok", "10.2.0.2:1")
	assert.NoError(t, err)
	assert.Equal(t, 2, a.GetStats()["tracked_ips"])
}

func TestGenerateToken(t *testing.T) {
	tok, err := GenerateToken(32)
	require.NoError(t, err)
	raw, err := base64.RawURLEncoding.DecodeString(tok)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	other, err := GenerateToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)

	_, err = GenerateToken(513)
	assert.Error(t, err)
	_, err = GenerateToken(0)
	assert.Error(t, err)
}
