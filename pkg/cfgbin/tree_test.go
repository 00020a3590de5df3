package cfgbin

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/cfgkit/pkg/types"
)

func fe(name string, occ int, vars ...types.Variable) flatEntry {
	return flatEntry{name: name, occurrence: occ, vars: vars}
}

func TestBuildTreeBegEndScope(t *testing.T) {
	roots := buildTree([]flatEntry{
		fe("FOO_BEG", 0),
		fe("BAR", 0, types.IntVar(7)),
		fe("FOO_END", 0),
	})

	require.Len(t, roots, 1)
	root := roots[0]
	require.Equal(t, "FOO_BEG", root.Name)
	require.True(t, root.EndTerminator)
	require.Len(t, root.Children, 1)
	require.Equal(t, "BAR", root.Children[0].Name)
	require.False(t, root.Children[0].EndTerminator)
}

func TestBuildTreeBareTopLevelSelfTerminates(t *testing.T) {
	roots := buildTree([]flatEntry{
		fe("VERSION", 0),
		fe("BUILD", 0),
	})

	require.Len(t, roots, 2)
	for _, r := range roots {
		require.True(t, r.EndTerminator)
		require.Empty(t, r.Children)
	}
}

func TestBuildTreePrefixChildren(t *testing.T) {
	roots := buildTree([]flatEntry{
		fe("ITEM_INFO_BEG", 0),
		fe("ITEM_INFO", 0),
		fe("ITEM_INFO", 1),
		fe("ITEM_INFO_END", 0),
	})

	require.Len(t, roots, 1)
	root := roots[0]
	require.Equal(t, "ITEM_INFO_BEG", root.Name)
	require.True(t, root.EndTerminator)
	require.Len(t, root.Children, 2)
	require.Equal(t, 0, root.Children[0].Occurrence)
	require.Equal(t, 1, root.Children[1].Occurrence)
}

func TestBuildTreeNestedScopes(t *testing.T) {
	roots := buildTree([]flatEntry{
		fe("WORLD_BEG", 0),
		fe("WORLD", 0),
		fe("WORLD_AREA_BEG", 0),
		fe("WORLD_AREA", 0),
		fe("WORLD_AREA_END", 0),
		fe("WORLD_END", 0),
	})

	require.Len(t, roots, 1)
	world := roots[0]
	require.Equal(t, "WORLD_BEG", world.Name)
	require.True(t, world.EndTerminator)

	// A begin record sharing the scope prefix groups under the scope's
	// last appended child, not under the scope itself.
	require.Len(t, world.Children, 1)
	require.Equal(t, "WORLD", world.Children[0].Name)
	require.Len(t, world.Children[0].Children, 1)

	area := world.Children[0].Children[0]
	require.Equal(t, "WORLD_AREA_BEG", area.Name)
	require.True(t, area.EndTerminator)
	require.Len(t, area.Children, 1)
	require.Equal(t, "WORLD_AREA", area.Children[0].Name)
}

func TestBuildTreePtreeScope(t *testing.T) {
	roots := buildTree([]flatEntry{
		fe("PTREE", 0),
		fe("NODE", 0),
		fe("_PTREE", 0),
	})

	require.Len(t, roots, 1)
	root := roots[0]
	require.Equal(t, "PTREE", root.Name)
	require.True(t, root.EndTerminator)
	require.Len(t, root.Children, 1)
	require.Equal(t, "NODE", root.Children[0].Name)
}

func TestBuildTreeRecordAfterClosedScope(t *testing.T) {
	roots := buildTree([]flatEntry{
		fe("MENU_BEG", 0),
		fe("MENU", 0),
		fe("MENU_END", 0),
		fe("TITLE", 0),
	})

	require.Len(t, roots, 2)
	require.Equal(t, "MENU_BEG", roots[0].Name)
	require.True(t, roots[0].EndTerminator)
	require.Equal(t, "TITLE", roots[1].Name)
	require.True(t, roots[1].EndTerminator)
}

func TestBuildTreeImplicitClose(t *testing.T) {
	// DATA_SET opens a nested leaf scope under CFG; MISC_ITEM shares
	// neither prefix and DATA_SET is not begin-type, so the leaf scope
	// closes implicitly and MISC_ITEM attaches one level up.
	roots := buildTree([]flatEntry{
		fe("CFG_BEG", 0),
		fe("CFG", 0),
		fe("DATA_SET", 0),
		fe("MISC_ITEM", 0),
		fe("CFG_END", 0),
	})

	require.Len(t, roots, 1)
	root := roots[0]
	require.Equal(t, "CFG_BEG", root.Name)
	require.True(t, root.EndTerminator)
	require.Len(t, root.Children, 2)
	require.Equal(t, "CFG", root.Children[0].Name)
	require.Equal(t, "MISC_ITEM", root.Children[1].Name)
	require.Len(t, root.Children[0].Children, 1)
	require.Equal(t, "DATA_SET", root.Children[0].Children[0].Name)
}

func TestNodeType(t *testing.T) {
	require.Equal(t, "beg", nodeType("FOO_BEG_0"))
	require.Equal(t, "info", nodeType("ITEM_INFO_12"))
	require.Equal(t, "foo", nodeType("FOO"))
}

func TestScopeBase(t *testing.T) {
	require.Equal(t, "ITEM_INFO", scopeBase("ITEM_INFO_BEG_0"))
	require.Equal(t, "ITEM_INFO", scopeBase("ITEM_INFO_LIST_BEG_0"))
	require.Equal(t, "", scopeBase("PTREE_0"))
}

func TestEndScopeKey(t *testing.T) {
	frames := []scopeFrame{
		{name: "A_BEG_0", depth: 1},
		{name: "B_BEGIN_0", depth: 2},
		{name: "C_START_0", depth: 3},
		{name: "PTREE_0", depth: 4},
	}
	require.Equal(t, "A_BEG_0", endScopeKey("A_END_0", frames))
	require.Equal(t, "B_BEGIN_0", endScopeKey("B_END_0", frames))
	require.Equal(t, "C_START_0", endScopeKey("C_END_0", frames))
	require.Equal(t, "PTREE_0", endScopeKey("_PTREE_0", frames))
	require.Equal(t, "", endScopeKey("X_END_0", frames))
}

func TestIsBeginIsEnd(t *testing.T) {
	require.True(t, isBeginName("FOO_BEG_0"))
	require.True(t, isBeginName("FOO_BEGIN_0"))
	require.True(t, isBeginName("FOO_START_0"))
	require.True(t, isBeginName("PTREE_0"))
	require.False(t, isBeginName("FOO_0"))

	require.True(t, isEndName("FOO_END_0"))
	require.True(t, isEndName("_PTREE_0"))
	require.False(t, isEndName("FOO_BEG_0"))
}
