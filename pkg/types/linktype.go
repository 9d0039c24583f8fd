package types

import "fmt"

// LinkType describes how a file reaches its destination path.
type LinkType int

const (
	// LinkTypeHardLink places the file as a second directory entry for the
	// same inode. Fails across filesystem boundaries.
	LinkTypeHardLink LinkType = iota + 1

	// LinkTypeSoftLink places the file as a symbolic link.
	LinkTypeSoftLink

	// LinkTypeCopy places the file as an independent copy, preserving
	// permission bits and timestamps.
	LinkTypeCopy

	// LinkTypeDirectory is not a link at all: it means "ensure this
	// destination directory exists".
	LinkTypeDirectory
)

// String implements fmt.Stringer.
func (lt LinkType) String() string {
	switch lt {
	case LinkTypeHardLink:
		return "hardlink"
	case LinkTypeSoftLink:
		return "softlink"
	case LinkTypeCopy:
		return "copy"
	case LinkTypeDirectory:
		return "directory"
	default:
		return fmt.Sprintf("LinkType(%d)", int(lt))
	}
}

// ParseLinkType parses the string form used in configuration files.
func ParseLinkType(s string) (LinkType, error) {
	switch s {
	case "hardlink":
		return LinkTypeHardLink, nil
	case "softlink":
		return LinkTypeSoftLink, nil
	case "copy":
		return LinkTypeCopy, nil
	case "directory":
		return LinkTypeDirectory, nil
	default:
		return 0, fmt.Errorf("unknown link type %q", s)
	}
}
