package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// NewSSHKeysCommand creates the ssh-keys command group.
func NewSSHKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ssh-keys",
		Aliases: []string{"ssh-key", "keys"},
		Short:   "Manage SSH keys",
	}

	cmd.AddCommand(newSSHKeysListCommand())
	cmd.AddCommand(newSSHKeysGetCommand())
	cmd.AddCommand(newSSHKeysCreateCommand())
	cmd.AddCommand(newSSHKeysDeleteCommand())

	return cmd
}

func newSSHKeysListCommand() *cobra.Command {
	var opts ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List SSH keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			collection, err := client.SSHKeys().List(cmd.Context(), ListParams(opts))
			if err != nil {
				return err
			}

			keys, err := collection.All(cmd.Context())
			if err != nil {
				return err
			}

			if handled, err := renderStructured(keys); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Created")

			for _, key := range keys {
				_ = table.Append(key.ID, key.Name, key.DateCreated)
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

func newSSHKeysGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key-id>",
		Short: "Show SSH key details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			key, err := client.SSHKeys().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if handled, err := renderStructured(key); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", key.ID)
			_ = table.Append("Name", key.Name)
			_ = table.Append("Created", key.DateCreated)
			_ = table.Append("Key", key.SSHKey)

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}
}

func newSSHKeysCreateCommand() *cobra.Command {
	var request vapor.SSHKeyRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an SSH key",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			key, err := client.SSHKeys().Create(cmd.Context(), &request)
			if err != nil {
				return err
			}

			if handled, err := renderStructured(key); handled {
				return err
			}

			fmt.Fprintf(os.Stdout, "SSH key %s created\n", key.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&request.Name, "name", "", "key name")
	cmd.Flags().StringVar(&request.SSHKey, "public-key", "", "public key material")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("public-key")

	return cmd
}

func newSSHKeysDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key-id>",
		Short: "Delete an SSH key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			if err := client.SSHKeys().Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "SSH key %s deleted\n", args[0])

			return nil
		},
	}
}
