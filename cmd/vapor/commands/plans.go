package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewPlansCommand creates the plans command group.
func NewPlansCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plans",
		Aliases: []string{"plan"},
		Short:   "List plans",
	}

	cmd.AddCommand(newPlansListCommand())
	cmd.AddCommand(newPlansListMetalCommand())

	return cmd
}

func newPlansListCommand() *cobra.Command {
	var opts ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List compute plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			collection, err := client.Plans().List(cmd.Context(), ListParams(opts))
			if err != nil {
				return err
			}

			plans, err := collection.All(cmd.Context())
			if err != nil {
				return err
			}

			if handled, err := renderStructured(plans); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "vCPUs", "RAM (MB)", "Disk (GB)", "Bandwidth (GB)", "Monthly Cost", "Type")

			for _, plan := range plans {
				_ = table.Append(
					plan.ID,
					strconv.Itoa(plan.VCPUCount),
					strconv.Itoa(plan.RAM),
					strconv.Itoa(plan.Disk),
					strconv.Itoa(plan.Bandwidth),
					fmt.Sprintf("%.2f", plan.MonthlyCost),
					plan.Type,
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

func newPlansListMetalCommand() *cobra.Command {
	var opts ListOptions

	cmd := &cobra.Command{
		Use:   "list-metal",
		Short: "List bare metal plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			collection, err := client.Plans().ListMetal(cmd.Context(), ListParams(opts))
			if err != nil {
				return err
			}

			plans, err := collection.All(cmd.Context())
			if err != nil {
				return err
			}

			if handled, err := renderStructured(plans); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "CPU Model", "CPUs", "RAM (MB)", "Disk (GB)", "Monthly Cost")

			for _, plan := range plans {
				_ = table.Append(
					plan.ID,
					plan.CPUModel,
					strconv.Itoa(plan.CPUCount),
					strconv.Itoa(plan.RAM),
					strconv.Itoa(plan.Disk),
					fmt.Sprintf("%.2f", plan.MonthlyCost),
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
