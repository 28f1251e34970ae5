package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// NewSnapshotsCommand creates the snapshots command group.
func NewSnapshotsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "snapshots",
		Aliases: []string{"snapshot"},
		Short:   "Manage snapshots",
	}

	cmd.AddCommand(newSnapshotsListCommand())
	cmd.AddCommand(newSnapshotsGetCommand())
	cmd.AddCommand(newSnapshotsCreateCommand())
	cmd.AddCommand(newSnapshotsDeleteCommand())

	return cmd
}

func newSnapshotsListCommand() *cobra.Command {
	var opts ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			collection, err := client.Snapshots().List(cmd.Context(), ListParams(opts))
			if err != nil {
				return err
			}

			snapshots, err := collection.All(cmd.Context())
			if err != nil {
				return err
			}

			if handled, err := renderStructured(snapshots); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Description", "Size (bytes)", "Status", "Created")

			for _, snapshot := range snapshots {
				_ = table.Append(
					snapshot.ID,
					orNotAvailable(snapshot.Description),
					strconv.FormatInt(snapshot.Size, 10),
					snapshot.Status,
					snapshot.DateCreated,
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

func newSnapshotsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <snapshot-id>",
		Short: "Show snapshot details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			snapshot, err := client.Snapshots().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if handled, err := renderStructured(snapshot); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", snapshot.ID)
			_ = table.Append("Description", orNotAvailable(snapshot.Description))
			_ = table.Append("Size (bytes)", strconv.FormatInt(snapshot.Size, 10))
			_ = table.Append("Status", snapshot.Status)
			_ = table.Append("OS ID", strconv.Itoa(snapshot.OSID))
			_ = table.Append("Created", snapshot.DateCreated)

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}
}

func newSnapshotsCreateCommand() *cobra.Command {
	var request vapor.SnapshotCreateRequest

	cmd := &cobra.Command{
		Use:   "create <instance-id>",
		Short: "Snapshot an instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			request.InstanceID = args[0]

			snapshot, err := client.Snapshots().Create(cmd.Context(), &request)
			if err != nil {
				return err
			}

			if handled, err := renderStructured(snapshot); handled {
				return err
			}

			fmt.Fprintf(os.Stdout, "Snapshot %s created\n", snapshot.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&request.Description, "description", "", "snapshot description")

	return cmd
}

func newSnapshotsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <snapshot-id>",
		Short: "Delete a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			if err := client.Snapshots().Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Snapshot %s deleted\n", args[0])

			return nil
		},
	}
}
