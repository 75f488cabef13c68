package ai

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// RecordSize is the encoded length of a Record.
const RecordSize = 4 + 4 + 1 + 1 + 4*2 + tetris.Rows*2 + 2

// ErrShortRecord is returned when decoding fewer than RecordSize bytes.
var ErrShortRecord = errors.New("ai: short record")

// Record is one recorded frame: the state a tick started from and the
// buttons that were held during it.
type Record struct {
	Level    int32
	Rows     int32
	Next     uint8
	Active   uint8
	Blocks   [4]int16 // active piece, x in the high byte, y in the low byte
	RowMasks [tetris.Rows]uint16
	Input    uint16 // tetris.Sample mask
}

// NewRecord captures a snapshot and the sample applied to it.
func NewRecord(s tetris.Snapshot, in tetris.Sample) Record {
	r := Record{
		Level:  int32(s.Level),
		Rows:   int32(s.Rows),
		Next:   uint8(s.Next.Type),
		Active: uint8(s.Active.Type),
		Input:  in.Mask(),
	}
	for i, b := range s.Active.Blocks {
		r.Blocks[i] = packBlock(b)
	}
	for row := range tetris.Rows {
		r.RowMasks[row] = s.Grid.RowMask(row)
	}
	return r
}

func packBlock(c tetris.Coordinates) int16 {
	return int16(uint16(uint8(int8(c.X)))<<8 | uint16(uint8(int8(c.Y))))
}

func unpackBlock(v int16) tetris.Coordinates {
	u := uint16(v)
	return tetris.Coordinates{X: int(int8(u >> 8)), Y: int(int8(u & 0xff))}
}

// Block returns the i-th active block.
func (r Record) Block(i int) tetris.Coordinates {
	return unpackBlock(r.Blocks[i])
}

// Sample returns the recorded buttons.
func (r Record) Sample() tetris.Sample {
	return tetris.SampleFromMask(r.Input)
}

// MarshalBinary encodes the record in RecordSize little-endian bytes.
func (r Record) MarshalBinary() ([]byte, error) {
	return r.AppendBinary(make([]byte, 0, RecordSize))
}

// AppendBinary appends the encoded record to b.
func (r Record) AppendBinary(b []byte) ([]byte, error) {
	le := binary.LittleEndian
	b = le.AppendUint32(b, uint32(r.Level))
	b = le.AppendUint32(b, uint32(r.Rows))
	b = append(b, r.Next, r.Active)
	for _, v := range r.Blocks {
		b = le.AppendUint16(b, uint16(v))
	}
	for _, m := range r.RowMasks {
		b = le.AppendUint16(b, m)
	}
	b = le.AppendUint16(b, r.Input)
	return b, nil
}

// UnmarshalRecord decodes the first RecordSize bytes of b.
func UnmarshalRecord(b []byte) (Record, error) {
	var r Record
	if len(b) < RecordSize {
		return r, fmt.Errorf("%w: %d bytes, want %d", ErrShortRecord, len(b), RecordSize)
	}

	le := binary.LittleEndian
	r.Level = int32(le.Uint32(b[0:]))
	r.Rows = int32(le.Uint32(b[4:]))
	r.Next = b[8]
	r.Active = b[9]
	off := 10
	for i := range r.Blocks {
		r.Blocks[i] = int16(le.Uint16(b[off:]))
		off += 2
	}
	for i := range r.RowMasks {
		r.RowMasks[i] = le.Uint16(b[off:])
		off += 2
	}
	r.Input = le.Uint16(b[off:])

	if r.Next >= uint8(tetris.TypeCount) || r.Active >= uint8(tetris.TypeCount) {
		return r, fmt.Errorf("ai: record has piece types %d/%d", r.Next, r.Active)
	}
	return r, nil
}

// Scales that bring every input roughly into [0, 1].
const (
	levelScale = 20.0
	rowsScale  = 200.0
	typeScale  = float64(tetris.TypeCount - 1)
)

// Inputs encodes the record as network input: level, rows cleared, next and
// active type, the four active blocks as x,y pairs, then one value per well
// cell row by row.
func (r Record) Inputs() []float64 {
	in := make([]float64, 0, InputSize)
	in = append(in,
		float64(r.Level)/levelScale,
		min(float64(r.Rows)/rowsScale, 1),
		float64(r.Next)/typeScale,
		float64(r.Active)/typeScale,
	)
	for i := range r.Blocks {
		b := r.Block(i)
		in = append(in, float64(b.X)/tetris.Columns, float64(b.Y)/tetris.Rows)
	}
	for _, mask := range r.RowMasks {
		for col := range tetris.Columns {
			v := 0.0
			if mask&(1<<col) != 0 {
				v = 1
			}
			in = append(in, v)
		}
	}
	return in
}

// Targets returns the recorded buttons as training targets, 1 for held.
func (r Record) Targets() []float64 {
	s := r.Sample()
	out := make([]float64, tetris.ButtonCount)
	for b := range tetris.ButtonCount {
		if s.Pressed(b) {
			out[b] = 1
		}
	}
	return out
}

// Example converts the record to a training pair.
func (r Record) Example() Example {
	return Example{Input: r.Inputs(), Target: r.Targets()}
}

// Examples decodes raw records into training pairs, skipping ones that fail
// to decode. It returns the number skipped.
func Examples(raw [][]byte) ([]Example, int) {
	out := make([]Example, 0, len(raw))
	skipped := 0
	for _, b := range raw {
		r, err := UnmarshalRecord(b)
		if err != nil {
			skipped++
			continue
		}
		out = append(out, r.Example())
	}
	return out, skipped
}

// Encode converts a snapshot into network input.
func Encode(s tetris.Snapshot) []float64 {
	return NewRecord(s, tetris.Sample{}).Inputs()
}
