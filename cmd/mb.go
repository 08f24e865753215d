package cmd

import (
	"fmt"

	"bucketpath/feature/pathfs"

	"github.com/spf13/cobra"
)

// mbCmd creates a bucket.
var mbCmd = &cobra.Command{
	Use:   "mb <path>",
	Short: "Create a bucket",
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

		bucket, err := client.CreateBucket(cmd.Context(), path)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created bucket %s\n", bucket.Name)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(mbCmd)
}
