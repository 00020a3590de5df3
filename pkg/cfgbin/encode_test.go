package cfgbin

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/cfgkit/internal/buf"
	"github.com/joshuapare/cfgkit/internal/format"
	"github.com/joshuapare/cfgkit/pkg/types"
)

func TestTerminatorName(t *testing.T) {
	require.Equal(t, "FOO_END", terminatorName("FOO_BEG"))
	require.Equal(t, "FOO_END", terminatorName("FOO_BEGIN"))
	require.Equal(t, "ITEM_LIST_END", terminatorName("ITEM_LIST_BEG"))
	require.Equal(t, "_PTREE", terminatorName("PTREE"))
	require.Equal(t, "_PTREE", terminatorName("PTREE2"))
}

func TestSaveParseRoundTrip(t *testing.T) {
	d := New(false)
	d.Entries = []*types.Entry{
		{
			Name:          "DATA_INFO_BEG",
			EndTerminator: true,
			Variables: []types.Variable{
				types.StringVar("abcdef"),
				types.IntVar(42),
				types.FloatVar(1.5),
			},
			Children: []*types.Entry{
				{
					Name: "DATA_INFO",
					Variables: []types.Variable{
						types.StringVar("cdef"),
						types.AbsentString(),
						types.IntVar(-7),
					},
				},
			},
		},
	}

	data, err := d.Save()
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, d.Entries, got.Entries)
	require.Equal(t, "UTF-8", got.EncodingName())
	require.Equal(t, uint16(1), got.EncodingFlag())
}

func TestSaveParseRoundTripShiftJIS(t *testing.T) {
	d := New(true)
	d.Entries = []*types.Entry{
		{
			Name:          "TEXT_INFO_BEG",
			EndTerminator: true,
			Children: []*types.Entry{
				{
					Name: "TEXT_INFO",
					Variables: []types.Variable{
						types.StringVar("こんにちは"),
						types.IntVar(3),
					},
				},
			},
		},
	}

	data, err := d.Save()
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, d.Entries, got.Entries)
	require.Equal(t, "Shift_JIS", got.EncodingName())
	require.Equal(t, uint16(0), got.EncodingFlag())
}

func TestSaveDistinctStringsGetOwnAllocations(t *testing.T) {
	// "cdef" is a suffix of "abcdef"; a rebuilt table stores both as
	// separate allocations rather than sharing storage.
	d := New(false)
	d.Entries = []*types.Entry{
		{
			Name:          "STR_INFO",
			EndTerminator: true,
			Variables: []types.Variable{
				types.StringVar("abcdef"),
				types.StringVar("cdef"),
			},
		},
	}

	data, err := d.Save()
	require.NoError(t, err)

	h, err := format.ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, int32(2), h.StringTableCount)

	blob := data[h.StringTableOffset : h.StringTableOffset+h.StringTableLength]
	require.Equal(t, []byte("abcdef\x00cdef\x00"), blob)
}

func TestSaveFooterShape(t *testing.T) {
	d := New(false)
	d.Entries = []*types.Entry{
		{Name: "EMPTY_INFO", EndTerminator: true},
	}

	data, err := d.Save()
	require.NoError(t, err)

	require.Zero(t, len(data)%16)
	// Magic, marker, flag, constant 1, then 0xFF from byte 10.
	footer := data[len(data)-format.FooterSize:]
	require.Equal(t, []byte{
		0x01, 0x74, 0x32, 0x62,
		0xFE, 0x01,
		0x01, 0x00,
		0x01, 0x00,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	}, footer)
	require.Equal(t, uint16(1), buf.U16LE(data[len(data)-format.EncodingFlagTailOffset:]))
}

func TestParseUnknownKeyFails(t *testing.T) {
	d := New(false)
	d.Entries = []*types.Entry{
		{Name: "KEY_INFO", EndTerminator: true, Variables: []types.Variable{types.IntVar(1)}},
	}
	data, err := d.Save()
	require.NoError(t, err)

	// Corrupt the first record's name hash so the key table cannot
	// resolve it.
	data[format.EntriesBase] ^= 0xFF

	_, err = Parse(data)
	require.Error(t, err)
	require.ErrorIs(t, err, format.ErrUnknownKey)

	var typed *types.Error
	require.ErrorAs(t, err, &typed)
	require.Equal(t, types.ErrKindUnknownKey, typed.Kind)
}

func TestParseTruncatedFails(t *testing.T) {
	_, err := Parse([]byte{0x01, 0x00})
	require.Error(t, err)

	var typed *types.Error
	require.ErrorAs(t, err, &typed)
	require.Equal(t, types.ErrKindFormat, typed.Kind)
}
