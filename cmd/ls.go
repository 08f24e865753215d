package cmd

import (
	"fmt"
	"time"

	"bucketpath/feature/pathfs"

	"github.com/spf13/cobra"
)

// lsCmd lists the entries directly under a path, directory-style.
var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "List the entries under a path",
	Long: `Lists the entries directly under a path, folding deeper keys into
directory entries. Without an argument, lists the buckets.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		var path pathfs.Path
		if len(args) == 1 {
			path = pathfs.ParsePath(args[0])
		}

		prefix := ""
		if key := path.Key(); key != "" {
			prefix = key + pathfs.Sep
		}

		for e := range client.Scandir(cmd.Context(), path, prefix) {
			if e.IsDir {
				fmt.Fprintf(cmd.OutOrStdout(), "%26s  %s/\n", "", e.Name)
				continue
			}
			mtime := time.Unix(e.LastModified, 0).UTC().Format(time.RFC3339)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %5d  %s\n", mtime, e.Size, e.Name)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(lsCmd)
}
