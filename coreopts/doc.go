// Package coreopts is a matching and allocation engine for
// coreutils-style command lines. A Spec declares the options (with
// per-spelling value arity), the positional slots, and any deprecated
// numeric shorthands a utility accepts; Parse turns argv into an ordered
// stream of normalized events; Fold reduces the stream into settings
// with plain later-wins semantics.
//
// The matching rules follow GNU getopt behavior: long options resolve by
// unambiguous prefix with exact matches winning, short options cluster,
// "--" ends option scanning, and the first violation fails the whole
// parse with a typed *ParseError.
package coreopts
