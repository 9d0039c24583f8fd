package main

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/emplace/pkg/archive"
)

var extractCmd = &cobra.Command{
	Use:   "extract TARBALL [DEST]",
	Short: "Extract a package tarball into a fresh directory",
	Long: `Extract a package tarball into DEST, which must not already exist.
When DEST is omitted it defaults to TARBALL with the archive suffix
stripped. Gzip, bzip2 and zstd compression are detected automatically.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dest := ""
		if len(args) == 2 {
			dest = args[1]
		}
		return archive.Extract(args[0], dest)
	},
}
