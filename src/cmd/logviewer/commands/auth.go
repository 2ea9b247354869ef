// FILE: logviewer/src/cmd/logviewer/commands/auth.go
package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
	"time"

	"logviewer/src/internal/auth"
	"logviewer/src/internal/core"

	"golang.org/x/term"
)

// AuthCommand generates credentials for the viewer's HTTP auth
type AuthCommand struct {
	output io.Writer
	errOut io.Writer

	// Overridable for tests
	readPassword func(prompt string) (string, error)
}

func NewAuthCommand() *AuthCommand {
	ac := &AuthCommand{
		output: os.Stdout,
		errOut: os.Stderr,
	}
	ac.readPassword = ac.promptPassword
	return ac
}

func (ac *AuthCommand) Execute(args []string) error {
	cmd := flag.NewFlagSet("auth", flag.ContinueOnError)
	cmd.SetOutput(ac.errOut)

	var (
		username = cmd.String("u", "", "Username for basic auth")
		password = cmd.String("p", "", "Password (will prompt if not provided)")
		genToken = cmd.Bool("k", false, "Generate random bearer token")
		tokenLen = cmd.Int("l", core.DefaultTokenLength, "Token length in bytes")
		genJWT   = cmd.Bool("jwt", false, "Issue a signed JWT")
		key      = cmd.String("key", "", "JWT signing key")
		subject  = cmd.String("sub", "", "JWT subject")
		issuer   = cmd.String("iss", "", "JWT issuer")
		audience = cmd.String("aud", "", "JWT audience")
		ttl      = cmd.Duration("ttl", 24*time.Hour, "JWT lifetime")
	)

	cmd.Usage = func() {
		fmt.Fprint(ac.errOut, ac.Help())
	}

	if err := cmd.Parse(args); err != nil {
		return err
	}

	if cmd.NArg() > 0 {
		return fmt.Errorf("unexpected argument(s): %s", strings.Join(cmd.Args(), " "))
	}

	switch {
	case *genToken:
		return ac.generateToken(*tokenLen)
	case *genJWT:
		if *key == "" {
			return fmt.Errorf("-jwt requires -key")
		}
		return ac.issueJWT(*key, coalesceString(*subject, *username), *issuer, *audience, *ttl)
	case *username == "":
		cmd.Usage()
		return fmt.Errorf("username required for password hash generation")
	}

	pass := *password
	if pass == "" {
		var err error
		if pass, err = ac.promptForPassword(); err != nil {
			return err
		}
	}

	return ac.generateBasicAuth(*username, pass)
}

func (ac *AuthCommand) Description() string {
	return "Generate authentication credentials (password hashes, tokens, JWTs)"
}

func (ac *AuthCommand) Help() string {
	return `Auth Command - Generate authentication credentials for LogViewer

Usage:
  logviewer auth [options]

Options:
  -u <name>        Username for an Argon2id password hash
  -p <pass>        Password (will prompt if not provided)
  -k               Generate a random bearer token
  -l <bytes>       Token length in bytes (default: 32)
  -jwt             Issue an HS256 JWT signed with -key
  -key <secret>    JWT signing key (server.auth.bearer.jwt.signing_key)
  -sub <subject>   JWT subject (defaults to -u)
  -iss <issuer>    JWT issuer
  -aud <audience>  JWT audience
  -ttl <duration>  JWT lifetime (default: 24h)

Examples:
  # Generate basic auth hash
  logviewer auth -u admin

  # Generate 64-byte bearer token
  logviewer auth -k -l 64

  # Issue a JWT valid for one hour
  logviewer auth -jwt -key "$SIGNING_KEY" -sub ops -ttl 1h

Output:
  Configuration snippets ready to paste into logviewer.toml and the raw
  values for external users files.
`
}

func (ac *AuthCommand) promptForPassword() (string, error) {
	pass1, err := ac.readPassword("Enter password: ")
	if err != nil {
		return "", err
	}
	pass2, err := ac.readPassword("Confirm password: ")
	if err != nil {
		return "", err
	}
	if pass1 != pass2 {
		return "", fmt.Errorf("passwords don't match")
	}
	if pass1 == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return pass1, nil
}

func (ac *AuthCommand) promptPassword(prompt string) (string, error) {
	fmt.Fprint(ac.errOut, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(ac.errOut)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

// generateBasicAuth prints an Argon2id PHC hash for basic auth
func (ac *AuthCommand) generateBasicAuth(username, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	fmt.Fprintln(ac.output, "\n# Basic Auth Configuration")
	fmt.Fprintln(ac.output, "# Add to logviewer.toml:")
	fmt.Fprintln(ac.output, "")
	fmt.Fprintln(ac.output, "[server.auth]")
	fmt.Fprintln(ac.output, `type = "basic"`)
	fmt.Fprintln(ac.output, "")
	fmt.Fprintln(ac.output, "[[server.auth.basic.users]]")
	fmt.Fprintf(ac.output, "username = %q\n", username)
	fmt.Fprintf(ac.output, "password_hash = %q\n\n", hash)

	fmt.Fprintln(ac.output, "# For external users file:")
	fmt.Fprintf(ac.output, "%s:%s\n", username, hash)

	return nil
}

func (ac *AuthCommand) generateToken(length int) error {
	if length < 16 {
		fmt.Fprintln(ac.errOut, "Warning: tokens < 16 bytes are cryptographically weak")
	}

	token, err := auth.GenerateToken(length)
	if err != nil {
		return err
	}

	fmt.Fprintln(ac.output, "\n# Token Configuration")
	fmt.Fprintln(ac.output, "# Add to logviewer.toml under [server.auth.bearer]:")
	fmt.Fprintf(ac.output, "tokens = [%q]\n\n", token)

	fmt.Fprintln(ac.output, "# Generated Token:")
	fmt.Fprintln(ac.output, token)

	return nil
}

func (ac *AuthCommand) issueJWT(key, subject, issuer, audience string, ttl time.Duration) error {
	token, err := auth.IssueJWT(key, subject, issuer, audience, ttl)
	if err != nil {
		return fmt.Errorf("failed to issue JWT: %w", err)
	}

	fmt.Fprintf(ac.output, "# JWT (expires %s):\n", time.Now().Add(ttl).Format(time.RFC3339))
	fmt.Fprintln(ac.output, token)
	return nil
}

// coalesceString returns the first non-empty string
func coalesceString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
