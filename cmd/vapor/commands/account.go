package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewAccountCommand creates the account command.
func NewAccountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show account information",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			account, err := client.Account().Get(cmd.Context())
			if err != nil {
				return err
			}

			if handled, err := renderStructured(account); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Name", orNotAvailable(account.Name))
			_ = table.Append("Email", orNotAvailable(account.Email))
			_ = table.Append("Balance", fmt.Sprintf("%.2f", account.Balance))
			_ = table.Append("Pending Charges", fmt.Sprintf("%.2f", account.PendingCharges))
			_ = table.Append("ACLs", orNotAvailable(strings.Join(account.ACLs, ", ")))

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}
}
