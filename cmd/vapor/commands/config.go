package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vapor-io/vapor-client/internal/constants"
	"github.com/vapor-io/vapor-client/pkg/vapor"
	"golang.org/x/term"
)

// Masked replaces secret values in config output.
const Masked = "***"

// configKeys lists the keys the config command accepts.
var configKeys = []string{"api-endpoint", "api-key", "output"}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the vapor CLI configuration stored in ~/.vapor/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigSetKeyCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make(map[string]string, len(configKeys))
			for _, key := range configKeys {
				values[key] = viper.GetString(key)
			}

			if values["api-key"] != "" {
				values["api-key"] = Masked
			}

			if handled, err := renderStructured(values); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Key", "Value")

			for _, key := range configKeys {
				_ = table.Append(key, orNotAvailable(values[key]))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("rendering table: %w", err)
			}

			return nil
		},
	}
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !isKnownConfigKey(key) {
				return fmt.Errorf("%w: %s", vapor.ErrUnknownConfigKey, key)
			}

			value := viper.GetString(key)
			if key == "api-key" && value != "" {
				value = Masked
			}

			fmt.Fprintln(os.Stdout, value)

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if !isKnownConfigKey(key) {
				return fmt.Errorf("%w: %s", vapor.ErrUnknownConfigKey, key)
			}

			viper.Set(key, value)

			return persistConfig()
		},
	}
}

func newConfigSetKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key",
		Short: "Set the API key",
		Long:  "Prompt for the API key without echoing it and store it in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(os.Stderr, "API key: ")

			keyBytes, err := term.ReadPassword(int(syscall.Stdin))

			fmt.Fprintln(os.Stderr)

			if err != nil {
				return fmt.Errorf("reading API key: %w", err)
			}

			apiKey := strings.TrimSpace(string(keyBytes))
			if apiKey == "" {
				return vapor.ErrAPIKeyRequired
			}

			viper.Set("api-key", apiKey)

			return persistConfig()
		},
	}
}

func isKnownConfigKey(key string) bool {
	for _, known := range configKeys {
		if key == known {
			return true
		}
	}

	return false
}

// persistConfig writes the known config keys to ~/.vapor/config.yml.
func persistConfig() error {
	path := viper.ConfigFileUsed()
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}

		configDir := filepath.Join(home, ".vapor")
		if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}

		path = filepath.Join(configDir, "config.yml")
	}

	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	if err := os.Chmod(path, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("restricting config file permissions: %w", err)
	}

	return nil
}
