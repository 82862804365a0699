package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wifinity-io/rms-client/internal/constants"
	"github.com/wifinity-io/rms-client/pkg/rms"
)

// NewTagsCommand creates the tags command group.
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "Manage tags",
		Long:    "List, create, and delete device tags",
	}

	cmd.AddCommand(newTagsListCommand())
	cmd.AddCommand(newTagsGetCommand())
	cmd.AddCommand(newTagsCreateCommand())
	cmd.AddCommand(newTagsDeleteCommand())

	return cmd
}

func newTagsListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var (
				tags  []rms.Tag
				total *int
			)

			if allPages {
				tags, err = client.Tags().ListAll(ctx)
				if err != nil {
					return fmt.Errorf("failed to list tags: %w", err)
				}
			} else {
				list, err := client.Tags().List(ctx, rms.NewQueryParams().WithLimit(limit))
				if err != nil {
					return fmt.Errorf("failed to list tags: %w", err)
				}

				tags = list.Data
				total = list.Meta.Total
			}

			return outputTags(tags, total, allPages)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")

	return cmd
}

func outputTags(tags []rms.Tag, total *int, allPages bool) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(tags)
	case OutputFormatYAML:
		return StandardYAMLRenderer(tags)
	default:
		if len(tags) == 0 {
			_, _ = os.Stdout.WriteString("No tags found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Name", "Company ID", "Created")

		for _, tag := range tags {
			_ = table.Append(strconv.Itoa(tag.ID), tag.Name,
				strconv.Itoa(tag.CompanyID), formatTime(tag.CreatedAt))
		}

		_ = table.Render()

		if !allPages && total != nil && *total > len(tags) {
			_, _ = fmt.Fprintf(os.Stdout, "\nShowing %d of %d. Use --all to fetch everything.\n", len(tags), *total)
		}
	}

	return nil
}

func newTagsGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get TAG_ID",
		Short: "Get tag details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tagID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid tag ID %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			tag, err := client.Tags().Get(context.Background(), tagID)
			if err != nil {
				return fmt.Errorf("failed to get tag: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(tag)
			case OutputFormatYAML:
				return StandardYAMLRenderer(tag)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", strconv.Itoa(tag.ID))
				_ = table.Append("Name", tag.Name)
				_ = table.Append("Company ID", strconv.Itoa(tag.CompanyID))
				_ = table.Append("Created", formatTime(tag.CreatedAt))
				_ = table.Render()
			}

			return nil
		},
	}

	return cmd
}

func newTagsCreateCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tag, err := client.Tags().Create(context.Background(), name, nil)
			if err != nil {
				return fmt.Errorf("failed to create tag: %w", err)
			}

			fmt.Printf("Successfully created tag '%s' with ID %d\n", tag.Name, tag.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "tag name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTagsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete TAG_ID",
		Short: "Delete a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tagID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid tag ID %q: %w", args[0], err)
			}

			if !force {
				fmt.Printf("Really delete tag %d? (y/N): ", tagID)

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Println("Cancelled")

					return nil
				}
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Tags().Delete(context.Background(), tagID)
			if err != nil {
				return fmt.Errorf("failed to delete tag: %w", err)
			}

			fmt.Printf("Successfully deleted tag %d\n", tagID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}
