package cmd

import (
	"fmt"
	"time"

	"bucketpath/feature/pathfs"

	"github.com/spf13/cobra"
)

// statCmd prints the metadata of a single object.
var statCmd = &cobra.Command{
	Use:   "stat <path>",
	Short: "Show the metadata of an object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		path := pathfs.ParsePath(args[0])
		if path.Key() == "" {
			return fmt.Errorf("path %q does not name an object", args[0])
		}

		bucket, err := client.GetBucket(cmd.Context(), path)
		if err != nil {
			return err
		}
		blob, err := bucket.GetBlob(cmd.Context(), path.Key())
		if err != nil {
			return err
		}
		if blob == nil {
			return fmt.Errorf("object not found: %s", client.MakeURI(path))
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "uri:     %s\n", client.MakeURI(path))
		fmt.Fprintf(out, "size:    %d\n", blob.Size)
		fmt.Fprintf(out, "updated: %s\n", time.Unix(blob.Updated, 0).UTC().Format(time.RFC3339))
		if blob.Owner != "" {
			fmt.Fprintf(out, "owner:   %s\n", blob.Owner)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(statCmd)
}
