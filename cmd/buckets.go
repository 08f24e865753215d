package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// bucketsCmd lists all buckets.
var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "List all buckets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		buckets, err := client.ListBuckets(cmd.Context())
		if err != nil {
			return err
		}
		for _, b := range buckets {
			fmt.Fprintln(cmd.OutOrStdout(), b.Name)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(bucketsCmd)
}
