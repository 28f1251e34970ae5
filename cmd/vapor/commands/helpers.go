// Package commands implements the vapor CLI command tree.
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vapor-io/vapor-client/internal/constants"
	"github.com/vapor-io/vapor-client/pkg/vapor"
	"github.com/vapor-io/vapor-client/pkg/vaporclient"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
	OutputFormatTable = "table"

	// JSON formatting.
	defaultJSONIndent = "  "
)

// ListOptions holds the pagination options common to list commands.
type ListOptions struct {
	AllPages bool
	PerPage  int
	Cursor   string
}

// AddListFlags registers the shared pagination flags on a list command.
func AddListFlags(cmd *cobra.Command, opts *ListOptions) {
	cmd.Flags().BoolVar(&opts.AllPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&opts.PerPage, "per-page", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&opts.Cursor, "cursor", "", "pagination cursor to start from")
}

// ListParams translates list options into query parameters. Without --all the
// collection is capped at a single page worth of items.
func ListParams(opts ListOptions) *vapor.QueryParams {
	params := vapor.NewQueryParams()

	if opts.PerPage > 0 {
		params.WithPerPage(opts.PerPage)
	}

	if opts.Cursor != "" {
		params.WithCursor(opts.Cursor)
	}

	if !opts.AllPages {
		perPage := opts.PerPage
		if perPage <= 0 {
			perPage = constants.DefaultPageSize
		}

		params.WithCapacity(perPage)
	}

	return params
}

// CreateClient builds an API client from the resolved CLI configuration.
func CreateClient(cmd *cobra.Command) (vapor.Client, error) {
	config := &vapor.Config{
		APIEndpoint: viper.GetString("api-endpoint"),
		APIKey:      viper.GetString("api-key"),
		Debug:       viper.GetBool("verbose"),
	}

	client, err := vaporclient.New(cmd.Context(), config)
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}

	return client, nil
}

// renderJSON writes the value to stdout as indented JSON.
func renderJSON(value interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", defaultJSONIndent)

	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

// renderYAML writes the value to stdout as YAML.
func renderYAML(value interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer func() { _ = encoder.Close() }()

	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}

	return nil
}

// renderStructured writes the value as JSON or YAML depending on the
// configured output format. It returns false when the format is tabular and
// the caller should render a table instead.
func renderStructured(value interface{}) (bool, error) {
	format := viper.GetString("output")

	switch format {
	case OutputFormatJSON:
		return true, renderJSON(value)
	case OutputFormatYAML:
		return true, renderYAML(value)
	case OutputFormatTable, "":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s", vapor.ErrInvalidOutputFormat, format)
	}
}

// orNotAvailable substitutes a placeholder for empty table cells.
func orNotAvailable(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}
