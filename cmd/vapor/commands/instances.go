package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// NewInstancesCommand creates the instances command group.
func NewInstancesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "instances",
		Aliases: []string{"instance", "vm", "vms"},
		Short:   "Manage compute instances",
		Long:    "List, create, and control Vapor Cloud compute instances",
	}

	cmd.AddCommand(newInstancesListCommand())
	cmd.AddCommand(newInstancesGetCommand())
	cmd.AddCommand(newInstancesCreateCommand())
	cmd.AddCommand(newInstancesDeleteCommand())
	cmd.AddCommand(newInstancesActionCommand("start", "Start an instance", vapor.InstancesClient.Start))
	cmd.AddCommand(newInstancesActionCommand("halt", "Halt an instance", vapor.InstancesClient.Halt))
	cmd.AddCommand(newInstancesActionCommand("reboot", "Reboot an instance", vapor.InstancesClient.Reboot))
	cmd.AddCommand(newInstancesBandwidthCommand())

	return cmd
}

func newInstancesListCommand() *cobra.Command {
	var opts ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List instances",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstancesListCommand(cmd, opts)
		},
	}

	AddListFlags(cmd, &opts)

	return cmd
}

func runInstancesListCommand(cmd *cobra.Command, opts ListOptions) error {
	client, err := CreateClient(cmd)
	if err != nil {
		return err
	}

	collection, err := client.Instances().List(cmd.Context(), ListParams(opts))
	if err != nil {
		return err
	}

	instances, err := collection.All(cmd.Context())
	if err != nil {
		return err
	}

	if handled, err := renderStructured(instances); handled {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Label", "Region", "Plan", "Main IP", "Status", "Power")

	for _, instance := range instances {
		_ = table.Append(
			instance.ID,
			orNotAvailable(instance.Label),
			instance.Region,
			instance.Plan,
			orNotAvailable(instance.MainIP),
			instance.Status,
			instance.PowerStatus,
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}

func newInstancesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <instance-id>",
		Short: "Show instance details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			instance, err := client.Instances().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if handled, err := renderStructured(instance); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", instance.ID)
			_ = table.Append("Label", orNotAvailable(instance.Label))
			_ = table.Append("Hostname", orNotAvailable(instance.Hostname))
			_ = table.Append("OS", instance.OS)
			_ = table.Append("Region", instance.Region)
			_ = table.Append("Plan", instance.Plan)
			_ = table.Append("vCPUs", strconv.Itoa(instance.VCPUCount))
			_ = table.Append("RAM (MB)", strconv.Itoa(instance.RAM))
			_ = table.Append("Disk (GB)", strconv.Itoa(instance.Disk))
			_ = table.Append("Main IP", orNotAvailable(instance.MainIP))
			_ = table.Append("Status", instance.Status)
			_ = table.Append("Power Status", instance.PowerStatus)
			_ = table.Append("Created", instance.DateCreated)

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}
}

func newInstancesCreateCommand() *cobra.Command {
	var request vapor.InstanceCreateRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			instance, err := client.Instances().Create(cmd.Context(), &request)
			if err != nil {
				return err
			}

			if handled, err := renderStructured(instance); handled {
				return err
			}

			fmt.Fprintf(os.Stdout, "Instance %s created\n", instance.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&request.Region, "region", "", "region ID")
	cmd.Flags().StringVar(&request.Plan, "plan", "", "plan ID")
	cmd.Flags().IntVar(&request.OSID, "os", 0, "operating system ID")
	cmd.Flags().StringVar(&request.Label, "label", "", "instance label")
	cmd.Flags().StringVar(&request.Hostname, "hostname", "", "instance hostname")
	cmd.Flags().StringVar(&request.Tag, "tag", "", "instance tag")
	cmd.Flags().StringSliceVar(&request.SSHKeyIDs, "ssh-key", nil, "SSH key IDs to install")
	_ = cmd.MarkFlagRequired("region")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func newInstancesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <instance-id>",
		Short: "Delete an instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			if err := client.Instances().Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Instance %s deleted\n", args[0])

			return nil
		},
	}
}

func newInstancesActionCommand(action, short string, run func(vapor.InstancesClient, context.Context, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <instance-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			if err := run(client.Instances(), cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Instance %s: %s requested\n", args[0], action)

			return nil
		},
	}
}

func newInstancesBandwidthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bandwidth <instance-id>",
		Short: "Show instance bandwidth usage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			bandwidth, err := client.Instances().Bandwidth(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if handled, err := renderStructured(bandwidth); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Date", "Incoming (bytes)", "Outgoing (bytes)")

			for date, usage := range bandwidth {
				_ = table.Append(date,
					strconv.FormatInt(usage.IncomingBytes, 10),
					strconv.FormatInt(usage.OutgoingBytes, 10))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}
}
