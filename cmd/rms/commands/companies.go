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

// NewCompaniesCommand creates the companies command group.
func NewCompaniesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "companies",
		Aliases: []string{"company"},
		Short:   "Manage companies",
		Long:    "List, create, update, and delete RMS companies",
	}

	cmd.AddCommand(newCompaniesListCommand())
	cmd.AddCommand(newCompaniesGetCommand())
	cmd.AddCommand(newCompaniesCreateCommand())
	cmd.AddCommand(newCompaniesUpdateCommand())
	cmd.AddCommand(newCompaniesDeleteCommand())

	return cmd
}

func newCompaniesListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		search   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List companies",
		Long:  "List all companies the token has access to",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompaniesListCommand(allPages, limit, search)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&search, "search", "", "free-text search term")

	return cmd
}

func runCompaniesListCommand(allPages bool, limit int, search string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	params := rms.NewQueryParams().WithLimit(limit)
	if search != "" {
		params.WithSearch(search)
	}

	var (
		companies []rms.Company
		total     *int
	)

	if allPages {
		companies, err = rms.CollectAll[rms.Company](ctx, client.Companies(), params)
		if err != nil {
			return fmt.Errorf("failed to list companies: %w", err)
		}
	} else {
		list, err := client.Companies().List(ctx, params)
		if err != nil {
			return fmt.Errorf("failed to list companies: %w", err)
		}

		companies = list.Data
		total = list.Meta.Total
	}

	return outputCompanies(companies, total, allPages)
}

func outputCompanies(companies []rms.Company, total *int, allPages bool) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(companies)
	case OutputFormatYAML:
		return StandardYAMLRenderer(companies)
	default:
		return renderCompanyTable(companies, total, allPages)
	}
}

func renderCompanyTable(companies []rms.Company, total *int, allPages bool) error {
	if len(companies) == 0 {
		_, _ = os.Stdout.WriteString("No companies found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Parent ID", "Created")

	for _, company := range companies {
		parentID := constants.NotAvailable
		if company.ParentID != nil {
			parentID = strconv.Itoa(*company.ParentID)
		}

		_ = table.Append(strconv.Itoa(company.ID), company.Name, parentID,
			formatTime(company.CreatedAt))
	}

	_ = table.Render()

	if !allPages && total != nil && *total > len(companies) {
		_, _ = fmt.Fprintf(os.Stdout, "\nShowing %d of %d. Use --all to fetch everything.\n", len(companies), *total)
	}

	return nil
}

func newCompaniesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get COMPANY_ID_OR_NAME",
		Short: "Get company details",
		Long:  "Display detailed information about a specific company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var company *rms.Company
			if id, convErr := strconv.Atoi(args[0]); convErr == nil {
				company, err = client.Companies().Get(ctx, id)
			} else {
				company, err = client.Companies().GetByName(ctx, args[0])
			}

			if err != nil {
				return fmt.Errorf("failed to get company: %w", err)
			}

			return outputCompanyDetails(company)
		},
	}
}

func outputCompanyDetails(company *rms.Company) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(company)
	case OutputFormatYAML:
		return StandardYAMLRenderer(company)
	default:
		parentID := constants.NotAvailable
		if company.ParentID != nil {
			parentID = strconv.Itoa(*company.ParentID)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", strconv.Itoa(company.ID))
		_ = table.Append("Name", company.Name)
		_ = table.Append("Parent ID", parentID)
		_ = table.Append("Created", formatTime(company.CreatedAt))
		_ = table.Append("Updated", formatTime(company.UpdatedAt))
		_ = table.Render()
	}

	return nil
}

func newCompaniesCreateCommand() *cobra.Command {
	var (
		name     string
		parentID int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a company",
		Long:  "Create a new RMS company under a parent company",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			company, err := client.Companies().Create(context.Background(), name, parentID, nil)
			if err != nil {
				return fmt.Errorf("failed to create company: %w", err)
			}

			fmt.Printf("Successfully created company '%s' with ID %d\n", company.Name, company.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "company name (required)")
	cmd.Flags().IntVar(&parentID, "parent-id", 0, "parent company ID (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("parent-id")

	return cmd
}

func newCompaniesUpdateCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "update COMPANY_ID",
		Short: "Update a company",
		Long:  "Update an existing RMS company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			companyID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid company ID %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			data := map[string]any{}
			if cmd.Flags().Changed("name") {
				data["name"] = name
			}

			company, err := client.Companies().Update(context.Background(), companyID, data)
			if err != nil {
				return fmt.Errorf("failed to update company: %w", err)
			}

			fmt.Printf("Successfully updated company '%s'\n", company.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new company name")

	return cmd
}

func newCompaniesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete COMPANY_ID",
		Short: "Delete a company",
		Long:  "Delete an RMS company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			companyID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid company ID %q: %w", args[0], err)
			}

			if !force {
				fmt.Printf("Really delete company %d? (y/N): ", companyID)

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

			err = client.Companies().Delete(context.Background(), companyID)
			if err != nil {
				return fmt.Errorf("failed to delete company: %w", err)
			}

			fmt.Printf("Successfully deleted company %d\n", companyID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}
