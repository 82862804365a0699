package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/wifinity-io/rms-client/pkg/rms"
	"github.com/wifinity-io/rms-client/pkg/rmsclient"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		token       string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to RMS",
		Long:  "Store a personal access token for the RMS API and verify it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if apiEndpoint == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Printf("API base URL [%s]: ", rmsclient.DefaultBaseURL)
				apiEndpoint, _ = reader.ReadString('\n')
				apiEndpoint = strings.TrimSpace(apiEndpoint)
			}

			if token == "" {
				fmt.Print("Access token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				token = strings.TrimSpace(string(byteToken))

				fmt.Println()
			}

			client, err := rmsclient.New(&rms.Config{
				BaseURL:     apiEndpoint,
				AccessToken: token,
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the token before saving anything
			user, err := client.GetUser(context.Background())
			if err != nil {
				return fmt.Errorf("failed to verify token: %w", err)
			}

			config := loadConfig()
			config.API = apiEndpoint
			config.Token = token

			if err := saveConfig(config); err != nil {
				return err
			}

			name := user.Username
			if name == "" {
				name = user.Email
			}

			fmt.Printf("Logged in as '%s'\n", name)

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiEndpoint, "api", "a", "", "API base URL")
	cmd.Flags().StringVarP(&token, "token", "t", "", "personal access token")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from RMS",
		Long:  "Remove the stored access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Token = ""

			if err := saveConfig(config); err != nil {
				return err
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}
