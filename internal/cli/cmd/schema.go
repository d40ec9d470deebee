package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/lrutrace/internal/domain/entity"
	"github.com/bnema/lrutrace/internal/infrastructure/config"
	"github.com/bnema/lrutrace/internal/infrastructure/scenario"
)

var (
	schemaForConfig bool
	schemaExample   bool
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of scenario files",
	Long: `Print the JSON schema describing scenario files, for editor completion and
validation. With --config-file the schema of config.toml is printed instead.
With --example a scenario file holding the built-in walkthrough is printed,
ready to be edited and passed to run or step.`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolVar(&schemaForConfig, "config-file", false, "print the config file schema")
	schemaCmd.Flags().BoolVar(&schemaExample, "example", false, "print an example scenario file")
	schemaCmd.MarkFlagsMutuallyExclusive("config-file", "example")
}

func runSchema(cmd *cobra.Command, _ []string) error {
	var (
		data []byte
		err  error
	)
	switch {
	case schemaExample:
		var buf bytes.Buffer
		err = scenario.Encode(&buf, entity.DemoScenario())
		data = bytes.TrimRight(buf.Bytes(), "\n")
	case schemaForConfig:
		data, err = config.Schema()
	default:
		data, err = scenario.Schema()
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
