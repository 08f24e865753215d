package cmd

import (
	"fmt"

	"bucketpath/feature/pathfs"

	"github.com/spf13/cobra"
)

// rmCmd deletes one or more objects. Multiple paths go through the bulk
// deletion call and must share a bucket.
var rmCmd = &cobra.Command{
	Use:   "rm <path>...",
	Short: "Delete objects",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		paths := make([]pathfs.Path, 0, len(args))
		for _, arg := range args {
			p := pathfs.ParsePath(arg)
			if p.Key() == "" {
				return fmt.Errorf("path %q does not name an object", arg)
			}
			if len(paths) > 0 && p.Root() != paths[0].Root() {
				return fmt.Errorf("all paths must share one bucket")
			}
			paths = append(paths, p)
		}

		bucket, err := client.GetBucket(cmd.Context(), paths[0])
		if err != nil {
			return err
		}

		if len(paths) == 1 {
			blob, err := bucket.GetBlob(cmd.Context(), paths[0].Key())
			if err != nil {
				return err
			}
			if blob == nil {
				return fmt.Errorf("object not found: %s", client.MakeURI(paths[0]))
			}
			return blob.Delete(cmd.Context())
		}

		blobs := make([]*pathfs.Blob, 0, len(paths))
		for _, p := range paths {
			blobs = append(blobs, &pathfs.Blob{Name: p.Key()})
		}
		return bucket.DeleteBlobs(cmd.Context(), blobs)
	},
}

func init() {
	RootCmd.AddCommand(rmCmd)
}
