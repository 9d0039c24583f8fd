package errors

import "fmt"

// NewClobberError reports that a destination path already exists and the
// caller did not ask to overwrite it. Nothing has been mutated when this
// error is returned.
func NewClobberError(dst, src string, linkType fmt.Stringer) *EmplaceError {
	return Newf(ErrClobber, "destination %q already exists", dst).
		WithDetail("destination", dst).
		WithDetail("source", src).
		WithDetail("link_type", linkType.String())
}

// NewUnsupportedLinkTypeError reports a link type the materializer does not
// understand. This is a caller defect, not a runtime condition.
func NewUnsupportedLinkTypeError(linkType fmt.Stringer) *EmplaceError {
	return Newf(ErrLinkType, "did not expect link type %s", linkType.String()).
		WithDetail("link_type", linkType.String())
}

// NewOsLinkError reports a failed native link call.
func NewOsLinkError(err error, op, src, dst string) *EmplaceError {
	return Wrapf(err, ErrOsLink, "%s failed: %s => %s", op, src, dst).
		WithDetail("source", src).
		WithDetail("destination", dst)
}
