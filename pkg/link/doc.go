// Package link decides and executes how a single file reaches its
// destination inside a target environment.
//
// # Overview
//
// The Materializer takes a source path, a destination path, a requested
// link type and a force flag, enforces the clobber policy, and performs
// the placement: hard link, symbolic link, copy, or directory creation.
// The native link primitives are behind the types.Linker capability with
// one implementation per platform, selected at build time.
//
// Two contracts exist for hard links and they are deliberately separate
// operations:
//
//   - Materialize surfaces every native link failure to the caller.
//   - HardLinkOrCopy treats a failed hard link as a silent, logged
//     fallback to a full copy. It still refuses symlink sources outright,
//     because copying one would change "identical inode" semantics to
//     "independent file" without warning the caller.
//
// All operations are synchronous and make no promise of safety under
// concurrent invocation against the same destination path.
package link
