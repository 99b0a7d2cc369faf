// Package cmd contains the CLI commands for sitectl.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/good-yellow-bee/siteboard/internal/backend"
)

var (
	// Used for flags
	apiURL  string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sitectl",
	Short: "sitectl - SiteBoard operator CLI",
	Long: `sitectl talks directly to the construction project-management API
that backs the SiteBoard console.

Examples:
  # Sign in and store a token
  sitectl login

  # List projects
  sitectl project list

  # Download a drawing
  sitectl drawing download 17 -O plan.pdf`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "backend API base URL (or SITEBOARD_API_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// apiBaseURL resolves the backend URL from the flag or environment.
func apiBaseURL() (string, error) {
	if apiURL != "" {
		return apiURL, nil
	}
	if env := os.Getenv("SITEBOARD_API_URL"); env != "" {
		return env, nil
	}
	return "", fmt.Errorf("backend API URL is required (--api or SITEBOARD_API_URL)")
}

// apiClient returns a client authenticated with the stored token.
func apiClient() (*backend.Client, error) {
	base, err := apiBaseURL()
	if err != nil {
		return nil, err
	}

	token := os.Getenv("SITEBOARD_TOKEN")
	if token == "" {
		token, _ = loadToken()
	}
	if token == "" {
		return nil, fmt.Errorf("not signed in; run 'sitectl login' or set SITEBOARD_TOKEN")
	}
	return backend.New(base).WithToken(token), nil
}

func tokenPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".siteboard", "token"), nil
}

func saveToken(token string) error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token+"\n"), 0600)
}

func loadToken() (string, error) {
	path, err := tokenPath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// PrintError prints an error message and exits if fatal is true.
func PrintError(msg string, fatal bool) {
	fmt.Fprintln(os.Stderr, "Error:", msg)
	if fatal {
		os.Exit(1)
	}
}
