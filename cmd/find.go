package cmd

import (
	"fmt"

	"bucketpath/feature/pathfs"

	"github.com/spf13/cobra"
)

var findDelimiter string

// findCmd lists every object under a path, flat, across all pages.
var findCmd = &cobra.Command{
	Use:   "find <path>",
	Short: "List objects flat, one line per object",
	Long: `Walks every object under the path regardless of nesting, printing the
full URI of each. The path's key acts as a prefix filter.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		path := pathfs.ParsePath(args[0])
		if path.Root() == "" {
			return fmt.Errorf("path %q has no bucket", args[0])
		}

		opts := pathfs.ListBlobsOptions{Delimiter: findDelimiter}
		if key := path.Key(); key != "" {
			opts.Prefix = key + pathfs.Sep
		}

		for b := range client.ListBlobs(cmd.Context(), path, opts) {
			uri := client.MakeURI(pathfs.NewPath(path.Root(), b.Name))
			fmt.Fprintf(cmd.OutOrStdout(), "%10d  %s\n", b.Size, uri)
		}
		return nil
	},
}

func init() {
	findCmd.Flags().StringVar(&findDelimiter, "delimiter", "", "fold keys at this delimiter instead of listing them")
	RootCmd.AddCommand(findCmd)
}
