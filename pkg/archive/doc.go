// Package archive extracts package tarballs into fresh destination
// directories.
//
// Compression is sniffed from the stream's magic bytes, so gzip, bzip2,
// zstd and plain tar archives all work regardless of file extension.
// When the process runs as root on a POSIX system, extracted regular
// files are re-owned to root:root, overriding whatever owner the archive
// recorded (the --no-same-owner normalization).
package archive
