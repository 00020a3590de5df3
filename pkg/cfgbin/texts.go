package cfgbin

import (
	"github.com/joshuapare/cfgkit/pkg/types"
)

// Sequential text correlation: every String-typed variable gets a
// zero-based global index in depth-first, variables-before-children order.
// Updates address fields by that index; the entry name and variable
// position ride along for human context only.

// Texts extracts every String-typed variable as a TextEntry. Absent
// strings export as empty values, mirroring how updates treat empty input.
func (d *Document) Texts() []types.TextEntry {
	var out []types.TextEntry
	index := 0
	var walk func(*types.Entry)
	walk = func(e *types.Entry) {
		for varIdx, v := range e.Variables {
			if v.Type != types.VarString {
				continue
			}
			value := ""
			if v.Text != nil {
				value = *v.Text
			}
			out = append(out, types.TextEntry{
				Index:         index,
				Entry:         e.Name,
				VariableIndex: varIdx,
				Value:         value,
			})
			index++
		}
		for _, c := range e.Children {
			walk(c)
		}
	}
	for _, e := range d.Entries {
		walk(e)
	}
	return out
}

// ApplyTexts replaces String-variable payloads by global index. An empty
// update value means "absent", not an empty string; indexes not present in
// the update set keep their current payload.
func (d *Document) ApplyTexts(texts []types.TextEntry) {
	byIndex := make(map[int]string, len(texts))
	for _, t := range texts {
		byIndex[t.Index] = t.Value
	}
	index := 0
	var walk func(*types.Entry)
	walk = func(e *types.Entry) {
		for i := range e.Variables {
			if e.Variables[i].Type != types.VarString {
				continue
			}
			if value, ok := byIndex[index]; ok {
				if value == "" {
					e.Variables[i].Text = nil
				} else {
					v := value
					e.Variables[i].Text = &v
				}
			}
			index++
		}
		for _, c := range e.Children {
			walk(c)
		}
	}
	for _, e := range d.Entries {
		walk(e)
	}
}
