package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/vapor-io/vapor-client/pkg/vapor"
)

// NewDNSCommand creates the dns command group.
func NewDNSCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dns",
		Short: "Manage DNS domains and records",
	}

	cmd.AddCommand(newDNSDomainsCommand())
	cmd.AddCommand(newDNSRecordsCommand())

	return cmd
}

func newDNSDomainsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "domains",
		Aliases: []string{"domain"},
		Short:   "Manage DNS domains",
	}

	cmd.AddCommand(newDNSDomainsListCommand())
	cmd.AddCommand(newDNSDomainsCreateCommand())
	cmd.AddCommand(newDNSDomainsDeleteCommand())

	return cmd
}

func newDNSDomainsListCommand() *cobra.Command {
	var opts ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List DNS domains",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			collection, err := client.DNS().ListDomains(cmd.Context(), ListParams(opts))
			if err != nil {
				return err
			}

			domains, err := collection.All(cmd.Context())
			if err != nil {
				return err
			}

			if handled, err := renderStructured(domains); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Domain", "DNSSEC", "Created")

			for _, domain := range domains {
				_ = table.Append(domain.Domain, domain.DNSSec, domain.DateCreated)
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

func newDNSDomainsCreateCommand() *cobra.Command {
	var request vapor.DNSDomainCreateRequest

	cmd := &cobra.Command{
		Use:   "create <domain>",
		Short: "Create a DNS domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			request.Domain = args[0]

			domain, err := client.DNS().CreateDomain(cmd.Context(), &request)
			if err != nil {
				return err
			}

			if handled, err := renderStructured(domain); handled {
				return err
			}

			fmt.Fprintf(os.Stdout, "Domain %s created\n", domain.Domain)

			return nil
		},
	}

	cmd.Flags().StringVar(&request.IP, "ip", "", "default A record address")

	return cmd
}

func newDNSDomainsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <domain>",
		Short: "Delete a DNS domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			if err := client.DNS().DeleteDomain(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Domain %s deleted\n", args[0])

			return nil
		},
	}
}

func newDNSRecordsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "records",
		Aliases: []string{"record"},
		Short:   "Manage DNS records",
	}

	cmd.AddCommand(newDNSRecordsListCommand())
	cmd.AddCommand(newDNSRecordsCreateCommand())
	cmd.AddCommand(newDNSRecordsDeleteCommand())

	return cmd
}

func newDNSRecordsListCommand() *cobra.Command {
	var opts ListOptions

	cmd := &cobra.Command{
		Use:   "list <domain>",
		Short: "List records in a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			collection, err := client.DNS().ListRecords(cmd.Context(), args[0], ListParams(opts))
			if err != nil {
				return err
			}

			records, err := collection.All(cmd.Context())
			if err != nil {
				return err
			}

			if handled, err := renderStructured(records); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Type", "Name", "Data", "TTL")

			for _, record := range records {
				_ = table.Append(record.ID, record.Type, record.Name, record.Data, strconv.Itoa(record.TTL))
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

func newDNSRecordsCreateCommand() *cobra.Command {
	var request vapor.DNSRecordCreateRequest

	cmd := &cobra.Command{
		Use:   "create <domain>",
		Short: "Create a DNS record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			record, err := client.DNS().CreateRecord(cmd.Context(), args[0], &request)
			if err != nil {
				return err
			}

			if handled, err := renderStructured(record); handled {
				return err
			}

			fmt.Fprintf(os.Stdout, "Record %s created\n", record.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&request.Type, "type", "", "record type (A, AAAA, CNAME, ...)")
	cmd.Flags().StringVar(&request.Name, "name", "", "record name")
	cmd.Flags().StringVar(&request.Data, "data", "", "record data")
	cmd.Flags().IntVar(&request.TTL, "ttl", 0, "record TTL in seconds")
	cmd.Flags().IntVar(&request.Priority, "priority", 0, "record priority (MX, SRV)")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func newDNSRecordsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <domain> <record-id>",
		Short: "Delete a DNS record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			if err := client.DNS().DeleteRecord(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Record %s deleted\n", args[1])

			return nil
		},
	}
}
