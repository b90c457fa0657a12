// Command token creates a user if needed and prints a signed API token for it.
//
// It reads the same environment as the server, so the token is signed with
// JWT_SECRET and the user is written to the configured database.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fincontrol/backend/internal/auth"
	"github.com/fincontrol/backend/internal/config"
	"github.com/fincontrol/backend/internal/models"
	"github.com/fincontrol/backend/internal/store"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(stderr)

	openID := fs.String("openid", "", "Identity of the user at the identity provider")
	name := fs.String("name", "", "Display name of the user")
	email := fs.String("email", "", "Email address of the user")
	ttl := fs.Duration("ttl", cfg.Auth.TTL, "Validity of the token")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *openID == "" {
		fmt.Fprintln(stderr, "Usage: token -openid <id> [-name <name>] [-email <email>] [-ttl <duration>]")
		fs.PrintDefaults()
		return fmt.Errorf("missing required flags: openid")
	}

	if *ttl <= 0 {
		return fmt.Errorf("ttl must be positive, got %s", *ttl)
	}

	secret := cfg.Auth.Secret
	if secret == "" {
		fmt.Fprint(stderr, "JWT secret: ")
		secret, err = readSecret(stdin)
		if err != nil {
			return fmt.Errorf("failed to read secret: %w", err)
		}
		fmt.Fprintln(stderr)
	}

	if strings.TrimSpace(secret) == "" {
		return fmt.Errorf("secret cannot be empty")
	}

	dsn := ""
	if cfg.Database.Postgres() {
		dsn = cfg.Database.DSN()
	}

	db, err := models.Open(dsn, cfg.SQLitePath())
	if err != nil {
		return err
	}
	defer models.Close(db)

	user, err := store.New(db, cfg.StoreOptions()...).EnsureUser(context.Background(), models.User{
		OpenID:      *openID,
		Name:        *name,
		Email:       *email,
		LoginMethod: "token",
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	token, err := auth.GenerateToken(secret, user.ID, *ttl)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	fmt.Fprintln(stdout, token)
	return nil
}

func readSecret(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
