package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewRegionsCommand creates the regions command group.
func NewRegionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "regions",
		Aliases: []string{"region"},
		Short:   "List regions",
	}

	cmd.AddCommand(newRegionsListCommand())
	cmd.AddCommand(newRegionsAvailabilityCommand())

	return cmd
}

func newRegionsListCommand() *cobra.Command {
	var opts ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all regions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			collection, err := client.Regions().List(cmd.Context(), ListParams(opts))
			if err != nil {
				return err
			}

			regions, err := collection.All(cmd.Context())
			if err != nil {
				return err
			}

			if handled, err := renderStructured(regions); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "City", "Country", "Continent", "Options")

			for _, region := range regions {
				_ = table.Append(
					region.ID,
					region.City,
					region.Country,
					region.Continent,
					orNotAvailable(strings.Join(region.Options, ", ")),
				)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}

	AddListFlags(cmd, &opts)

	return cmd
}

func newRegionsAvailabilityCommand() *cobra.Command {
	var planType string

	cmd := &cobra.Command{
		Use:   "availability <region-id>",
		Short: "List plans available in a region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			plans, err := client.Regions().Availability(cmd.Context(), args[0], planType)
			if err != nil {
				return err
			}

			if handled, err := renderStructured(plans); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Plan")

			for _, plan := range plans {
				_ = table.Append(plan)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&planType, "type", "", "filter by plan type")

	return cmd
}
