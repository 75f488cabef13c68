package ai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

type memSink struct {
	batches [][][]byte
	err     error
}

func (s *memSink) SaveRecords(_ string, records [][]byte) error {
	if s.err != nil {
		return s.err
	}
	s.batches = append(s.batches, records)
	return nil
}

func TestRecorderBatches(t *testing.T) {
	sink := &memSink{}
	r := NewRecorder(sink, "s1", 3, nil)

	for range 7 {
		r.ObserveTick(testSnapshot(), tetris.Sample{}, tetris.TickResult{})
	}

	assert.Len(t, sink.batches, 2)
	assert.Equal(t, 1, r.Pending())
	assert.Equal(t, 7, r.Recorded())

	require.NoError(t, r.Flush())
	require.Len(t, sink.batches, 3)
	assert.Len(t, sink.batches[2], 1)
	assert.Len(t, sink.batches[0][0], RecordSize)
	assert.Zero(t, r.Pending())
	assert.NoError(t, r.Flush(), "empty flush")
}

func TestRecorderCountsFailures(t *testing.T) {
	sink := &memSink{err: errors.New("disk full")}
	r := NewRecorder(sink, "s1", 2, nil)

	for range 5 {
		r.ObserveTick(testSnapshot(), tetris.Sample{}, tetris.TickResult{})
	}
	assert.Equal(t, 4, r.Failed())
	assert.Error(t, r.Flush())
	assert.Equal(t, 5, r.Failed())
}

func TestRecorderObservesGame(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	sink := &memSink{}
	r := NewRecorder(sink, "s1", 0, nil)

	g := tetris.New()
	clk := &fakeClock{}
	g.SetClock(clk)
	g.SetObserver(r)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	clk.now += 5 * tetris.Delta
	g.Step(in)

	require.NoError(t, r.Flush())
	require.Len(t, sink.batches, 1)
	require.Len(t, sink.batches[0], 5)

	first, err := UnmarshalRecord(sink.batches[0][0])
	require.NoError(t, err)
	assert.True(t, first.Sample().Pressed(tetris.ButtonLeft))
	assert.Equal(t, int32(1), first.Level)
}

func pressedSample() tetris.Sample {
	var s tetris.Sample
	s[tetris.ButtonLeft] = true
	return s
}

func emptyResult() tetris.TickResult { return tetris.TickResult{} }
