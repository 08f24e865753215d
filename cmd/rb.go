package cmd

import (
	"fmt"

	"bucketpath/feature/pathfs"

	"github.com/spf13/cobra"
)

// rbCmd deletes a bucket.
var rbCmd = &cobra.Command{
	Use:   "rb <path>",
	Short: "Delete a bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		path := pathfs.ParsePath(args[0])
		if path.Root() == "" {
			return fmt.Errorf("path %q has no bucket name", args[0])
		}

		if err := client.DeleteBucket(cmd.Context(), path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted bucket %s\n", path.Root())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(rbCmd)
}
