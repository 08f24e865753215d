package cmd

import (
	"fmt"

	"bucketpath/feature/pathfs"

	"github.com/spf13/cobra"
)

// cpCmd copies an object, possibly across buckets.
var cpCmd = &cobra.Command{
	Use:   "cp <source> <target>",
	Short: "Copy an object to another path",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		src := pathfs.ParsePath(args[0])
		dst := pathfs.ParsePath(args[1])
		if src.Key() == "" || dst.Key() == "" {
			return fmt.Errorf("source and target must both name objects")
		}

		srcBucket, err := client.GetBucket(cmd.Context(), src)
		if err != nil {
			return err
		}
		dstBucket, err := client.GetBucket(cmd.Context(), dst)
		if err != nil {
			return err
		}

		blob, err := srcBucket.GetBlob(cmd.Context(), src.Key())
		if err != nil {
			return err
		}
		if blob == nil {
			return fmt.Errorf("object not found: %s", client.MakeURI(src))
		}

		copied, err := srcBucket.CopyBlob(cmd.Context(), blob, dstBucket, dst.Key())
		if err != nil {
			return err
		}
		if copied == nil {
			return fmt.Errorf("source vanished during copy: %s", client.MakeURI(src))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "copied %s -> %s\n", client.MakeURI(src), client.MakeURI(dst))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cpCmd)
}
