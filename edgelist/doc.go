// Package edgelist reads undirected edge lists in the "u,v" text format.
//
// Format
//
//	The first line is a header and is skipped (WithHeader(false) disables
//	this). Every other line is trimmed and split on ','; a line is accepted
//	only if it has exactly two fields and both parse as non-negative base-10
//	integers. Anything else is skipped and counted in Dataset.Skipped.
//
// Sources
//
//   - Parse(r)          any io.Reader
//   - Load(path)        a file; ".zst" and ".gz" are decompressed transparently
//   - LoadGlob(pattern) every file matching a doublestar pattern, in lexical
//     order, concatenated (sharded edge lists)
//
// Every Dataset carries a BLAKE3-256 digest of the decompressed bytes it was
// parsed from, so reports can identify their input.
//
// Errors
//
//   - ErrInputUnavailable if a source cannot be opened or read.
//   - ErrEmptyInput       if no valid edge was parsed (same sentinel as core).
package edgelist
