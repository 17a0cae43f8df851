package command

// root.go defines the root command for the moviereview CLI.
// set up the global flags here.

import (
	"fmt"
	"os"
	"strconv"

	"moviereview/cmd/cli/authentication"
	"moviereview/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const defaultAPIURL = "http://localhost:8080"

var apiURL string // Global flag for API server URL

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "moviereview",
	Short: "moviereview - Movie Review Command Line Interface",
	Long: `moviereview is a client for the movie review API. User can use this application to:
- Browse movies and their statistics
- Post reviews and ratings
- Keep a list of favorite movies
- Moderate pending reviews (moderators only)

Use "moviereview command --help" to see all available commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "✗", err)
		os.Exit(1)
	}
}

func init() {
	defaultURL := defaultAPIURL
	if env := os.Getenv("MOVIEREVIEW_API"); env != "" {
		defaultURL = env
	}

	// Global persistent flags = available to all subcommands
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultURL, "API server URL")

	rootCmd.AddCommand(authCmd, movieCmd, reviewCmd, ratingCmd, favoriteCmd)
}

// GetAuthenticatedClient returns a client carrying the stored access token.
func GetAuthenticatedClient() (*client.HTTPClient, *authentication.StoredCredentials, error) {
	creds, err := authentication.GetTokens()
	if err != nil {
		return nil, nil, err
	}

	httpClient := client.NewHTTPClient(apiURL)
	httpClient.SetToken(creds.AccessToken)
	return httpClient, creds, nil
}

func parseID(arg, label string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s ID: %q", label, arg)
	}
	return id, nil
}

func success(format string, a ...any) {
	color.Green("✓ "+format, a...)
}
