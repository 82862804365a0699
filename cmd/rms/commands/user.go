package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wifinity-io/rms-client/pkg/rms"
)

// NewUserCommand creates the user command
func NewUserCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "user",
		Short: "Show the authenticated user",
		Long:  "Display the account associated with the configured access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			user, err := client.GetUser(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			return outputUser(user)
		},
	}
}

func outputUser(user *rms.User) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(user)
	case OutputFormatYAML:
		return StandardYAMLRenderer(user)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", strconv.Itoa(user.ID))
		_ = table.Append("Username", user.Username)
		_ = table.Append("Email", user.Email)
		_ = table.Append("Company ID", strconv.Itoa(user.CompanyID))
		_ = table.Render()
	}

	return nil
}
