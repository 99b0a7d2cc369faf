package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/good-yellow-bee/siteboard/internal/backend"
)

var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the backend API and store a token",
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "account email (prompted if omitted)")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	base, err := apiBaseURL()
	if err != nil {
		return err
	}

	email := loginEmail
	if email == "" {
		fmt.Print("Email: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		email = strings.TrimSpace(line)
	}
	if email == "" {
		return fmt.Errorf("email is required")
	}

	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	api := backend.New(base)
	grant, err := api.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login: %s", backend.Detail(err))
	}

	user, err := api.WithToken(grant.AccessToken).CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("fetch profile: %s", backend.Detail(err))
	}

	if err := saveToken(grant.AccessToken); err != nil {
		return fmt.Errorf("store token: %w", err)
	}

	fmt.Printf("Signed in as %s (%s)\n", user.DisplayName(), user.Role.Label())
	if exp, ok := backend.TokenExpiry(grant.AccessToken); ok {
		fmt.Printf("Token expires %s\n", exp.Local().Format(time.RFC1123))
	}
	return nil
}

// promptPassword reads a password without echo when stdin is a terminal.
func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)

	fd := syscall.Stdin
	if term.IsTerminal(fd) {
		passwordBytes, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(passwordBytes), nil
	}

	// Piped input
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
