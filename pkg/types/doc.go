// Package types defines the public data model shared by the cfgkit
// packages: the typed variable union, the entry tree, the text interchange
// records, and the error taxonomy. It has no dependencies on the codec
// internals so downstream tools can consume decoded documents without
// pulling in the parser.
package types
