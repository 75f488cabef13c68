package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func testSnapshot() tetris.Snapshot {
	var g tetris.Grid
	g.Set(17, 0, core.ColorRed)
	g.Set(17, 9, core.ColorRed)
	g.Set(16, 4, core.ColorBlue)

	return tetris.Snapshot{
		Grid:   g,
		Active: tetris.Piece{Type: tetris.TypeT, Blocks: tetris.BlocksAt(tetris.TypeT, tetris.Coordinates{X: 4, Y: 0})},
		Next:   tetris.Piece{Type: tetris.TypeLong, Blocks: tetris.BlocksAt(tetris.TypeLong, tetris.Coordinates{X: 15, Y: 13})},
		Score:  300,
		Rows:   12,
		Level:  2,
	}
}

func TestRecordSize(t *testing.T) {
	assert.Equal(t, 56, RecordSize)
}

func TestRecordRoundTrip(t *testing.T) {
	in := tetris.Sample{}
	in[tetris.ButtonLeft] = true
	in[tetris.ButtonRotateClockwise] = true

	r := NewRecord(testSnapshot(), in)
	data, err := r.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, RecordSize)

	decoded, err := UnmarshalRecord(data)
	require.NoError(t, err)
	assert.Equal(t, r, decoded)
	assert.Equal(t, in, decoded.Sample())
	assert.Equal(t, int32(2), decoded.Level)
	assert.Equal(t, uint8(tetris.TypeLong), decoded.Next)
	assert.Equal(t, uint16(1|1<<9), decoded.RowMasks[17])
	assert.Equal(t, tetris.Coordinates{X: 5, Y: 0}, decoded.Block(0))
}

func TestPackBlockNegative(t *testing.T) {
	for _, c := range []tetris.Coordinates{{X: 0, Y: 0}, {X: 9, Y: 17}, {X: -2, Y: -1}, {X: 3, Y: -4}} {
		assert.Equal(t, c, unpackBlock(packBlock(c)))
	}
}

func TestUnmarshalRecordErrors(t *testing.T) {
	_, err := UnmarshalRecord(make([]byte, RecordSize-1))
	assert.ErrorIs(t, err, ErrShortRecord)

	data, err := NewRecord(testSnapshot(), tetris.Sample{}).MarshalBinary()
	require.NoError(t, err)
	data[9] = 200
	_, err = UnmarshalRecord(data)
	assert.Error(t, err)
}

func TestRecordInputs(t *testing.T) {
	r := NewRecord(testSnapshot(), tetris.Sample{})
	in := r.Inputs()
	require.Len(t, in, InputSize)

	assert.InDelta(t, 2/levelScale, in[0], 1e-12)
	assert.InDelta(t, 12/rowsScale, in[1], 1e-12)
	assert.InDelta(t, 1.0, in[2], 1e-12, "Long is the last type")
	assert.InDelta(t, 0.0, in[3], 1e-12, "T is the first type")
	assert.InDelta(t, 0.5, in[4], 1e-12, "first block x = 5")

	cells := in[12:]
	assert.Equal(t, 1.0, cells[17*tetris.Columns+0])
	assert.Equal(t, 1.0, cells[17*tetris.Columns+9])
	assert.Equal(t, 1.0, cells[16*tetris.Columns+4])
	filled := 0.0
	for _, v := range cells {
		filled += v
	}
	assert.Equal(t, 3.0, filled)

	assert.Equal(t, in, Encode(testSnapshot()))
}

func TestRecordTargets(t *testing.T) {
	in := tetris.Sample{}
	in[tetris.ButtonDown] = true
	in[tetris.ButtonRotateAntiClockwise] = true

	r := NewRecord(testSnapshot(), in)
	assert.Equal(t, []float64{1, 0, 0, 0, 1}, r.Targets())

	ex := r.Example()
	assert.Len(t, ex.Input, InputSize)
	assert.Len(t, ex.Target, OutputSize)
}

func TestExamplesSkipsBadRecords(t *testing.T) {
	good, err := NewRecord(testSnapshot(), tetris.Sample{}).MarshalBinary()
	require.NoError(t, err)

	examples, skipped := Examples([][]byte{good, {1, 2, 3}, good})
	assert.Len(t, examples, 2)
	assert.Equal(t, 1, skipped)
}
