package printer

import (
	"encoding/json"
	"fmt"

	"github.com/joshuapare/cfgkit/pkg/types"
)

// jsonEntry represents an entry in JSON format.
type jsonEntry struct {
	Name       string         `json:"name"`
	Occurrence int            `json:"occurrence,omitempty"`
	Variables  []jsonVariable `json:"variables,omitempty"`
	Children   []jsonEntry    `json:"children,omitempty"`
	Terminated bool           `json:"terminated,omitempty"`
}

// jsonVariable represents a typed variable in JSON format.
type jsonVariable struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// printEntriesJSON prints the whole forest as one JSON document.
func (p *Printer) printEntriesJSON(entries []*types.Entry) error {
	out := make([]jsonEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, p.toJSONEntry(e, 0))
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}

func (p *Printer) toJSONEntry(e *types.Entry, depth int) jsonEntry {
	je := jsonEntry{
		Name:       e.Name,
		Occurrence: e.Occurrence,
		Terminated: e.EndTerminator,
	}
	if p.opts.ShowValues {
		je.Variables = make([]jsonVariable, 0, len(e.Variables))
		for _, v := range e.Variables {
			je.Variables = append(je.Variables, toJSONVariable(v))
		}
	}
	if !p.withinDepth(depth + 1) {
		return je
	}
	for _, child := range e.Children {
		je.Children = append(je.Children, p.toJSONEntry(child, depth+1))
	}
	return je
}

func toJSONVariable(v types.Variable) jsonVariable {
	jv := jsonVariable{Type: v.Type.String()}
	switch v.Type {
	case types.VarString:
		if v.Text != nil {
			jv.Value = *v.Text
		}
	case types.VarInt:
		jv.Value = v.Int
	case types.VarFloat:
		jv.Value = v.Float
	default:
		jv.Value = v.Raw
	}
	return jv
}
