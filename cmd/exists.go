package cmd

import (
	"fmt"

	"bucketpath/feature/pathfs"

	"github.com/spf13/cobra"
)

// existsCmd checks whether a path names an object or a directory-like prefix.
var existsCmd = &cobra.Command{
	Use:   "exists <path>",
	Short: "Check whether a path exists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		path := pathfs.ParsePath(args[0])
		fmt.Fprintln(cmd.OutOrStdout(), client.Exists(cmd.Context(), path))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(existsCmd)
}
