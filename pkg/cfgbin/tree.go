package cfgbin

import (
	"strings"

	"github.com/joshuapare/cfgkit/pkg/types"
)

// Tree reconstruction. The byte layout carries no nesting information at
// all: composite records exist only by engine naming convention (paired
// BEG/END names, START blocks, self-describing PTREE markers). The builder
// below pattern-matches decorated names in a single pass over the flat
// stream, maintaining a stack of open scopes plus an ordered list of
// (decorated name, depth) frames for END resolution.
//
// The heuristics are reverse-engineered conventions of a specific engine,
// not a documented grammar. They are preserved exactly as observed, quirks
// included; "improving" them would silently misgroup real files.

// scopeFrame records one open scope: the decorated name of its opening
// record and the stack depth right after it was pushed. Frames live in an
// append-only slice because insertion order breaks depth ties.
type scopeFrame struct {
	name  string
	depth int
}

func frameDepth(frames []scopeFrame, key string) (int, bool) {
	for _, f := range frames {
		if f.name == key {
			return f.depth, true
		}
	}
	return 0, false
}

func removeFrame(frames []scopeFrame, key string) []scopeFrame {
	out := frames[:0]
	for _, f := range frames {
		if f.name != key {
			out = append(out, f)
		}
	}
	return out
}

// deepestFrame returns the name of the frame with the maximum depth. On
// ties the latest frame wins, matching the original resolution order.
func deepestFrame(frames []scopeFrame) string {
	best := ""
	bestDepth := -1
	for _, f := range frames {
		if f.depth >= bestDepth {
			best = f.name
			bestDepth = f.depth
		}
	}
	return best
}

// nodeType extracts the lower-cased second-to-last underscore-delimited
// segment of a decorated name, i.e. the last segment of the canonical
// name. That segment carries the begin/end convention.
func nodeType(decorated string) string {
	parts := strings.Split(decorated, "_")
	if len(parts) < 2 {
		return strings.ToLower(decorated)
	}
	return strings.ToLower(parts[len(parts)-2])
}

func isBeginName(decorated string) bool {
	t := nodeType(decorated)
	if strings.Contains(decorated, "_PTREE") {
		return false
	}
	return strings.HasSuffix(t, "beg") ||
		strings.HasSuffix(t, "begin") ||
		strings.HasSuffix(t, "start") ||
		strings.HasSuffix(t, "ptree")
}

func isEndName(decorated string) bool {
	return strings.HasSuffix(nodeType(decorated), "end") ||
		strings.Contains(decorated, "_PTREE")
}

// scopeBase derives the grouping prefix of an open scope's decorated name:
// the "_LIST_BEG_" spelling collapses to "_BEG_", then the last two
// segments (the begin tag and the occurrence index) are dropped. A name
// with fewer than three segments collapses to the empty prefix, which
// matches everything.
func scopeBase(decorated string) string {
	adjusted := strings.ReplaceAll(decorated, "_LIST_BEG_", "_BEG_")
	parts := strings.Split(adjusted, "_")
	if len(parts) <= 2 {
		return ""
	}
	return strings.Join(parts[:len(parts)-2], "_")
}

// endScopeKey resolves which open scope an END record closes: the first
// substitution of the END spelling back to a begin spelling that names a
// live frame wins. No match yields the empty key, a no-op close.
func endScopeKey(decorated string, frames []scopeFrame) string {
	candidates := []string{
		strings.ReplaceAll(decorated, "_END_", "_BEG_"),
		strings.ReplaceAll(decorated, "_END_", "_BEGIN_"),
		strings.ReplaceAll(decorated, "_END_", "_START_"),
		strings.ReplaceAll(decorated, "_PTREE", "PTREE"),
	}
	for _, cand := range candidates {
		if _, ok := frameDepth(frames, cand); ok {
			return cand
		}
	}
	return ""
}

// buildTree converts the ordered flat record list into the rooted forest.
func buildTree(flat []flatEntry) []*types.Entry {
	var (
		output []*types.Entry
		stack  []*types.Entry
		frames []scopeFrame
	)

	appendToDeepestChild := func(node *types.Entry) {
		// Attaches one level below the top of stack, under the top's last
		// appended child ("list of typed sub-blocks" grouping).
		top := stack[len(stack)-1]
		if n := len(top.Children); n > 0 {
			last := top.Children[n-1]
			last.Children = append(last.Children, node)
		} else {
			top.Children = append(top.Children, node)
		}
	}

	for _, rec := range flat {
		decorated := rec.decorated()
		node := &types.Entry{
			Name:       rec.name,
			Occurrence: rec.occurrence,
			Variables:  rec.vars,
		}

		switch {
		case isBeginName(decorated):
			if len(stack) > 0 {
				deepest := deepestFrame(frames)
				t := nodeType(decorated)
				grouped := strings.HasPrefix(decorated, scopeBase(deepest)) &&
					(strings.HasSuffix(t, "beg") || strings.HasSuffix(t, "begin"))
				if grouped {
					appendToDeepestChild(node)
				} else {
					top := stack[len(stack)-1]
					top.Children = append(top.Children, node)
				}
			} else {
				output = append(output, node)
			}
			stack = append(stack, node)
			frames = append(frames, scopeFrame{name: decorated, depth: len(stack)})

		case isEndName(decorated):
			if len(stack) > 0 {
				stack[len(stack)-1].EndTerminator = true
			}
			key := endScopeKey(decorated, frames)
			if len(frames) > 1 {
				// Pop one level only when the END resolved to a live frame.
				if _, ok := frameDepth(frames, key); ok {
					stack = stack[:len(stack)-1]
					frames = removeFrame(frames, key)
				}
			} else {
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				frames = removeFrame(frames, key)
			}

		default:
			if len(frames) == 0 || len(stack) == 0 {
				// A bare top-level record is self-terminating.
				node.EndTerminator = true
				output = append(output, node)
				continue
			}
			deepest := deepestFrame(frames)
			if strings.HasPrefix(decorated, scopeBase(deepest)) {
				top := stack[len(stack)-1]
				top.Children = append(top.Children, node)
				continue
			}
			beginType := strings.Contains(deepest, "BEGIN") ||
				strings.Contains(deepest, "BEG") ||
				strings.Contains(deepest, "START") ||
				strings.Contains(deepest, "PTREE")
			if !beginType && !strings.Contains(decorated, "_PTREE") {
				// The deepest scope does not own this record: close it
				// implicitly, then attach the record one level up.
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
					frames = removeFrame(frames, deepest)
				}
				if len(stack) > 0 {
					top := stack[len(stack)-1]
					top.Children = append(top.Children, node)
				} else {
					node.EndTerminator = true
					output = append(output, node)
				}
			} else {
				top := stack[len(stack)-1]
				if len(top.Children) == 0 {
					// First record under a still-empty begin scope is a
					// plain child of that scope.
					top.Children = append(top.Children, node)
					continue
				}
				// The deepest scope is a begin-style tag that this record
				// does not belong to: nest one level deeper, under the
				// scope's last grouped block.
				appendToDeepestChild(node)
				stack = append(stack, node)
				frames = append(frames, scopeFrame{name: decorated, depth: len(stack)})
			}
		}
	}

	return output
}
