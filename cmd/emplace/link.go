package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/emplace/pkg/config"
	"github.com/arthur-debert/emplace/pkg/errors"
	"github.com/arthur-debert/emplace/pkg/filesystem"
	"github.com/arthur-debert/emplace/pkg/link"
	"github.com/arthur-debert/emplace/pkg/types"
)

var linkTypeName string

var linkCmd = &cobra.Command{
	Use:   "link SRC DST",
	Short: "Place a single file into an environment",
	Long: `Place SRC at DST by hard link, symbolic link, or copy. With
--type directory, DST is created as a directory instead. An existing
DST fails unless --force is given.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		linkType, err := types.ParseLinkType(linkTypeName)
		if err != nil {
			return errors.Wrap(err, errors.ErrInvalidInput, "invalid --type")
		}

		src, err := filepath.Abs(args[0])
		if err != nil {
			return errors.Wrap(err, errors.ErrInvalidInput, "invalid source path")
		}
		dst, err := filepath.Abs(args[1])
		if err != nil {
			return errors.Wrap(err, errors.ErrInvalidInput, "invalid destination path")
		}

		m := link.New(filesystem.NewOS(), link.NewNativeLinker())
		return m.Materialize(types.LinkOperation{
			Source:      src,
			Destination: dst,
			LinkType:    effectiveLinkType(linkType, cfg),
			Force:       force,
		})
	},
}

// effectiveLinkType applies the configured placement policy to the
// requested link type: always_copy downgrades both link kinds to a copy,
// and a softlink request degrades to a copy when softlinks are disallowed.
func effectiveLinkType(requested types.LinkType, cfg *config.Config) types.LinkType {
	switch requested {
	case types.LinkTypeHardLink:
		if cfg.Link.AlwaysCopy {
			return types.LinkTypeCopy
		}
	case types.LinkTypeSoftLink:
		if cfg.Link.AlwaysCopy || !cfg.Link.AllowSoftlinks {
			return types.LinkTypeCopy
		}
	}
	return requested
}

func init() {
	linkCmd.Flags().StringVarP(&linkTypeName, "type", "t", "hardlink", "Link type: hardlink, softlink, copy, or directory")
}
