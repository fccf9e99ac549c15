package cli

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print one supply and price snapshot as JSON",
	Long:  `Runs the same aggregation the API serves, once, and prints the payload to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApplication(cfg, zapLogger)
		if err != nil {
			return err
		}
		defer app.close()

		snapshot, err := app.snapshotService.Snapshot(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch data: %w", err)
		}

		out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
