// Package types defines the shared types and interfaces for emplace.
//
// This package contains the link-type enumeration, the transient operation
// descriptors consumed by the materializer and entry-point generator, and
// the capability interfaces (filesystem, native linker, menu installer,
// byte-compiler) that the rest of the codebase depends on.
package types
