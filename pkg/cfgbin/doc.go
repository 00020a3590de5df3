// Package cfgbin decodes and re-encodes the cfg.bin binary configuration
// container used by Level-5 game engines.
//
// A cfg.bin file serializes a forest of named, typed records into a flat
// byte stream: records reference their names by CRC32 through an embedded
// key table, string parameters reference an embedded string table by byte
// offset, and nesting exists only by naming convention (paired BEG/END
// names, self-describing PTREE markers). Parse rebuilds the semantic tree
// from those conventions; Save flattens it back.
//
// Two independent strategies expose the file's text fields for translation
// work: the sequential layer (Texts/ApplyTexts) walks the rebuilt tree and
// re-encodes the whole container, while the address layer
// (ExtractAddressed/PatchAddressed) operates on raw string-table offsets
// and patches the original buffer in place without touching its layout.
package cfgbin
