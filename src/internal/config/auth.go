// FILE: logviewer/src/internal/config/auth.go
package config

import "fmt"

type AuthConfig struct {
	// Authentication type: "none", "basic", "bearer"
	Type string `toml:"type"`

	Basic  BasicAuthConfig  `toml:"basic"`
	Bearer BearerAuthConfig `toml:"bearer"`
}

type BasicAuthConfig struct {
	// Static users (for simple deployments)
	Users []BasicAuthUser `toml:"users"`

	// External "username:hash" file
	UsersFile string `toml:"users_file"`

	// Realm for WWW-Authenticate header
	Realm string `toml:"realm"`
}

type BasicAuthUser struct {
	Username string `toml:"username"`
	// Argon2id PHC string or bcrypt hash
	PasswordHash string `toml:"password_hash"`
}

type BearerAuthConfig struct {
	// Static tokens
	Tokens []string `toml:"tokens"`

	// JWT validation, enabled when a signing key is set
	JWT JWTConfig `toml:"jwt"`
}

type JWTConfig struct {
	// HMAC signing key
	SigningKey string `toml:"signing_key"`

	// Expected issuer
	Issuer string `toml:"issuer"`

	// Expected audience
	Audience string `toml:"audience"`
}

func validateAuth(auth *AuthConfig) error {
	switch auth.Type {
	case "", "none":
		return nil
	case "basic":
		if len(auth.Basic.Users) == 0 && auth.Basic.UsersFile == "" {
			return fmt.Errorf("basic auth requires users or users_file")
		}
		for i, u := range auth.Basic.Users {
			if u.Username == "" || u.PasswordHash == "" {
				return fmt.Errorf("basic auth user[%d]: username and password_hash required", i)
			}
		}
	case "bearer":
		if len(auth.Bearer.Tokens) == 0 && auth.Bearer.JWT.SigningKey == "" {
			return fmt.Errorf("bearer auth requires tokens or a jwt signing_key")
		}
	default:
		return fmt.Errorf("invalid auth type: %s", auth.Type)
	}
	return nil
}
