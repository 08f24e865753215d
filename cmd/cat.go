package cmd

import (
	"fmt"
	"io"

	"bucketpath/feature/pathfs"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
)

// catCmd streams an object's content to stdout.
var catCmd = &cobra.Command{
	Use:   "cat <path>",
	Short: "Print an object's content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, _, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		path := pathfs.ParsePath(args[0])
		if path.Root() == "" || path.Key() == "" {
			return fmt.Errorf("path %q does not name an object", args[0])
		}

		rc, err := store.GetObject(cmd.Context(), path.Root(), path.Key(), minio.GetObjectOptions{})
		if err != nil {
			return fmt.Errorf("get %s: %w", path, err)
		}
		defer rc.Close()

		if _, err := io.Copy(cmd.OutOrStdout(), rc); err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(catCmd)
}
