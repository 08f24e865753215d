package cmd

import (
	"fmt"
	"os"

	"bucketpath/feature/pathfs"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
)

// putCmd uploads a local file to an object path.
var putCmd = &cobra.Command{
	Use:   "put <file> <path>",
	Short: "Upload a local file to an object path",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, _, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		path := pathfs.ParsePath(args[1])
		if path.Root() == "" || path.Key() == "" {
			return fmt.Errorf("path %q does not name an object", args[1])
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		fi, err := f.Stat()
		if err != nil {
			return err
		}

		info, err := store.PutObject(cmd.Context(), path.Root(), path.Key(), f, fi.Size(), minio.PutObjectOptions{})
		if err != nil {
			return fmt.Errorf("put %s: %w", path, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s (%d bytes)\n", path, info.Size)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(putCmd)
}
