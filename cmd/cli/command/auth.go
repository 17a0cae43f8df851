package command

import (
	"fmt"
	"time"

	"moviereview/cmd/cli/authentication"
	"moviereview/cmd/cli/command/client"
	"moviereview/cmd/cli/dto"

	"github.com/spf13/cobra"
)

// authCmd represents the auth command for authentication related subcommands
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Authenticate with the movie review API. Supports register, login and logout.`,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req dto.RegisterRequest
		req.Username, _ = cmd.Flags().GetString("username")
		req.Password, _ = cmd.Flags().GetString("password")
		req.Email, _ = cmd.Flags().GetString("email")

		user, err := client.NewHTTPClient(apiURL).Register(&req)
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		success("Registration successful! Please login to continue.")
		fmt.Printf("User ID: %d\n", user.ID)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login and store the access token in the OS keyring",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req dto.LoginRequest
		req.Username, _ = cmd.Flags().GetString("username")
		req.Password, _ = cmd.Flags().GetString("password")

		resp, err := client.NewHTTPClient(apiURL).Login(&req)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		creds := &authentication.StoredCredentials{
			AccessToken: resp.AccessToken,
			UserID:      resp.ID,
			Username:    resp.Username,
			IsModerator: resp.IsModerator,
			IsAdmin:     resp.IsAdmin,
			ExpiresAt:   time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix(),
		}
		if err := authentication.StoreTokens(creds); err != nil {
			return fmt.Errorf("failed to store token: %w", err)
		}

		success("Logged in as %s", resp.Username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := authentication.DeleteTokens(); err != nil {
			return fmt.Errorf("logout failed: %w", err)
		}
		success("Successfully logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, _, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		user, err := httpClient.Me()
		if err != nil {
			return fmt.Errorf("failed to get account: %w", err)
		}

		fmt.Printf("ID: %d\nUsername: %s\nEmail: %s\n", user.ID, user.Username, user.Email)
		fmt.Printf("Moderator: %t\nAdmin: %t\n", user.IsModerator, user.IsAdmin)
		return nil
	},
}

func init() {
	authCmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd)

	registerCmd.Flags().StringP("username", "u", "", "Username for the new account")
	registerCmd.Flags().StringP("password", "p", "", "Password for the new account")
	registerCmd.Flags().StringP("email", "e", "", "Email address for the new account")
	registerCmd.MarkFlagRequired("username")
	registerCmd.MarkFlagRequired("password")
	registerCmd.MarkFlagRequired("email")

	loginCmd.Flags().StringP("username", "u", "", "Username for the account")
	loginCmd.Flags().StringP("password", "p", "", "Password for the account")
	loginCmd.MarkFlagRequired("username")
	loginCmd.MarkFlagRequired("password")
}
