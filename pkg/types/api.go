package types

import "strconv"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat      ErrKind = iota // malformed header or table offsets
	ErrKindUnknownKey                 // record hash missing from the key table (fatal for the parse)
	ErrKindInterchange                // malformed structured input or line-count mismatch
	ErrKindPatch                      // invalid in-place patch (bad address, oversized replacement)
	ErrKindState                      // invalid operation for current state
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrNotCfgBin indicates the buffer does not describe a valid container.
	ErrNotCfgBin = &Error{Kind: ErrKindFormat, Msg: "not a cfg.bin container"}
	// ErrLineCount indicates a line-oriented update supplied the wrong
	// number of lines; the wrapping message names both counts.
	ErrLineCount = &Error{Kind: ErrKindInterchange, Msg: "line count mismatch"}
	// ErrBadInterchange indicates structurally invalid interchange input.
	ErrBadInterchange = &Error{Kind: ErrKindInterchange, Msg: "malformed interchange data"}
	// ErrPatchTooLong indicates an in-place replacement that would overflow
	// the original string allocation; growing the file would invalidate
	// every subsequent offset.
	ErrPatchTooLong = &Error{Kind: ErrKindPatch, Msg: "replacement exceeds original allocation"}
	// ErrBadPatchAddress indicates a patch address outside the string table.
	ErrBadPatchAddress = &Error{Kind: ErrKindPatch, Msg: "patch address outside string table"}
)

// -----------------------------------------------------------------------------
// Variables
// -----------------------------------------------------------------------------

// VarType enumerates the parameter types a record can carry. Unknown exists
// so an unrecognized 2-bit tag round-trips without interpretation; decoded
// variables keep their original type rather than re-deriving it from the
// payload.
type VarType uint8

const (
	VarString VarType = iota
	VarInt
	VarFloat
	VarUnknown
)

func (t VarType) String() string {
	switch t {
	case VarString:
		return "String"
	case VarInt:
		return "Int"
	case VarFloat:
		return "Float"
	default:
		return "Unknown"
	}
}

// Variable is one typed parameter of an entry. Exactly one of the payload
// fields is meaningful, selected by Type. A String variable with a nil Text
// is "absent" (null offset in the file), which is distinct from an empty
// string.
type Variable struct {
	Type  VarType
	Text  *string
	Int   int32
	Float float32
	Raw   uint32
}

// StringVar returns a present String variable.
func StringVar(s string) Variable {
	return Variable{Type: VarString, Text: &s}
}

// AbsentString returns a String variable with no payload.
func AbsentString() Variable {
	return Variable{Type: VarString}
}

// IntVar returns an Int variable.
func IntVar(v int32) Variable {
	return Variable{Type: VarInt, Int: v}
}

// FloatVar returns a Float variable.
func FloatVar(v float32) Variable {
	return Variable{Type: VarFloat, Float: v}
}

// UnknownVar returns an Unknown variable carrying an opaque payload.
func UnknownVar(raw uint32) Variable {
	return Variable{Type: VarUnknown, Raw: raw}
}

// -----------------------------------------------------------------------------
// Entries
// -----------------------------------------------------------------------------

// Entry is one logical record: a canonical name, its parameters, the child
// entries it owns, and whether a matching closing record was observed in
// the source stream. The tree is strictly parent-owns-children and acyclic;
// no parent back-references exist because encoding only traverses top-down.
//
// Occurrence disambiguates repeated sibling names sharing one base name.
// It exists as an explicit field instead of a string suffix so base names
// containing underscores stay unambiguous.
type Entry struct {
	Name          string
	Occurrence    int
	Variables     []Variable
	Children      []*Entry
	EndTerminator bool
}

// Decorated returns the occurrence-indexed name used transiently during
// parsing, e.g. "ITEM_INFO_BEG_0". Stripping the last underscore-delimited
// segment of a decorated name always yields the canonical name back.
func (e *Entry) Decorated() string {
	return e.Name + "_" + strconv.Itoa(e.Occurrence)
}

// Count returns the number of flat records this subtree flattens to,
// terminator records included.
func (e *Entry) Count() int {
	total := 1
	if e.EndTerminator {
		total++
	}
	for _, c := range e.Children {
		total += c.Count()
	}
	return total
}

// -----------------------------------------------------------------------------
// Text interchange records
// -----------------------------------------------------------------------------

// TextEntry is one sequential-mode text field: a zero-based global index in
// depth-first, variables-before-children order, plus the owning entry's
// canonical name and the variable position for human context.
type TextEntry struct {
	Index         int    `json:"index"`
	Entry         string `json:"entry"`
	VariableIndex int    `json:"variable_index"`
	Value         string `json:"value"`
}

// AddressedText is one address-mode text field, keyed by its byte offset in
// the original file's string table rather than by tree position.
type AddressedText struct {
	Address int32  `json:"address"`
	Value   string `json:"value"`
}
