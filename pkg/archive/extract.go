package archive

import (
	"archive/tar"
	"bufio"
	"bytes"
	"compress/bzip2"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/arthur-debert/emplace/pkg/errors"
	"github.com/arthur-debert/emplace/pkg/logging"
)

// tarballSuffixLen is the length of the canonical ".tar.bz2" suffix
// stripped to derive the default destination directory.
const tarballSuffixLen = 8

// Magic byte prefixes of the supported compression formats.
var (
	magicGzip  = []byte{0x1f, 0x8b}
	magicBzip2 = []byte{'B', 'Z', 'h'}
	magicZstd  = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// DefaultDestination returns the destination directory implied by a
// tarball path: the path with the ".tar.bz2"-length suffix stripped.
func DefaultDestination(tarballPath string) string {
	if len(tarballPath) <= tarballSuffixLen {
		return tarballPath
	}
	return tarballPath[:len(tarballPath)-tarballSuffixLen]
}

// Extract unpacks tarballPath into destDir. An empty destDir defaults to
// DefaultDestination(tarballPath).
//
// The destination must not exist; an existing destination is a caller
// defect and fails before anything is written. After extraction, file
// ownership is normalized when running privileged (see package doc).
func Extract(tarballPath, destDir string) error {
	logger := logging.GetLogger("archive")

	if destDir == "" {
		destDir = DefaultDestination(tarballPath)
	}
	logger.Debug().Str("tarball", tarballPath).Str("destination", destDir).Msg("extracting")

	if _, err := os.Lstat(destDir); err == nil {
		return errors.Newf(errors.ErrDestExists, "extraction destination already exists: %s", destDir).
			WithDetail("destination", destDir)
	}

	f, err := os.Open(tarballPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileNotFound, "failed to open tarball %s", tarballPath)
	}
	defer f.Close()

	reader, closer, err := decompressionReader(bufio.NewReader(f))
	if err != nil {
		return errors.Wrapf(err, errors.ErrExtract, "failed to read tarball %s", tarballPath)
	}
	defer closer()

	if err := unpack(tar.NewReader(reader), destDir); err != nil {
		return err
	}

	if err := normalizeOwnership(destDir); err != nil {
		return errors.Wrapf(err, errors.ErrExtract, "failed to normalize ownership under %s", destDir)
	}
	return nil
}

// decompressionReader sniffs the stream's magic bytes and wraps it in the
// matching decompressor. The returned closer releases decoder resources;
// it does not close the underlying file.
func decompressionReader(br *bufio.Reader) (io.Reader, func(), error) {
	noop := func() {}

	magic, err := br.Peek(4)
	if err != nil && len(magic) < 2 {
		return nil, noop, err
	}

	switch {
	case bytes.HasPrefix(magic, magicGzip):
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, noop, err
		}
		return gz, func() { _ = gz.Close() }, nil
	case bytes.HasPrefix(magic, magicBzip2):
		// Decode-only; the stdlib reader is the only bzip2 decoder in use.
		return bzip2.NewReader(br), noop, nil
	case bytes.HasPrefix(magic, magicZstd):
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, noop, err
		}
		return dec, dec.Close, nil
	default:
		return br, noop, nil
	}
}

// unpack streams every archive member into destDir.
func unpack(tr *tar.Reader, destDir string) error {
	logger := logging.GetLogger("archive")
	cleanDest := filepath.Clean(destDir)

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, errors.ErrExtract, "failed to read archive member")
		}

		target, err := memberPath(cleanDest, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, dirMode(hdr)); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", target)
			}
		case tar.TypeReg:
			if err := writeMember(tr, hdr, target); err != nil {
				return err
			}
		case tar.TypeSymlink:
			if err := ensureParent(target); err != nil {
				return err
			}
			if err := os.Symlink(hdr.Linkname, target); err != nil {
				return errors.Wrapf(err, errors.ErrExtract, "failed to create symlink %s", target)
			}
		case tar.TypeLink:
			linkTarget, err := memberPath(cleanDest, hdr.Linkname)
			if err != nil {
				return err
			}
			if err := ensureParent(target); err != nil {
				return err
			}
			if err := os.Link(linkTarget, target); err != nil {
				return errors.Wrapf(err, errors.ErrExtract, "failed to create hard link %s", target)
			}
		default:
			logger.Debug().
				Str("name", hdr.Name).
				Int("type", int(hdr.Typeflag)).
				Msg("skipping unsupported archive member")
		}
	}
}

// memberPath joins a member name onto the destination, rejecting names
// that would escape it.
func memberPath(cleanDest, name string) (string, error) {
	target := filepath.Join(cleanDest, name)
	if target != cleanDest && !strings.HasPrefix(target, cleanDest+string(os.PathSeparator)) {
		return "", errors.Newf(errors.ErrExtract, "archive member escapes destination: %s", name).
			WithDetail("member", name)
	}
	return target, nil
}

func writeMember(tr *tar.Reader, hdr *tar.Header, target string) error {
	if err := ensureParent(target); err != nil {
		return err
	}
	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, hdr.FileInfo().Mode().Perm())
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "failed to create %s", target)
	}
	if _, err := io.Copy(out, tr); err != nil {
		_ = out.Close()
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", target)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to close %s", target)
	}
	return nil
}

func ensureParent(target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create parent of %s", target)
	}
	return nil
}

func dirMode(hdr *tar.Header) os.FileMode {
	mode := hdr.FileInfo().Mode().Perm()
	if mode == 0 {
		mode = 0755
	}
	return mode
}
