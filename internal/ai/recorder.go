package ai

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// RecordSink stores encoded records for a play session.
type RecordSink interface {
	SaveRecords(session string, records [][]byte) error
}

// Recorder collects one Record per tick and writes them to a sink in
// batches. It implements tetris.TickObserver.
type Recorder struct {
	sink       RecordSink
	session    string
	flushEvery int
	logger     *log.Logger

	pending [][]byte
	total   int
	failed  int
}

// NewRecorder creates a recorder for session. flushEvery <= 0 buffers
// everything until Flush. logger may be nil.
func NewRecorder(sink RecordSink, session string, flushEvery int, logger *log.Logger) *Recorder {
	return &Recorder{
		sink:       sink,
		session:    session,
		flushEvery: flushEvery,
		logger:     logger,
	}
}

// ObserveTick records the state the tick started from with its input.
func (r *Recorder) ObserveTick(before tetris.Snapshot, in tetris.Sample, _ tetris.TickResult) {
	b, err := NewRecord(before, in).MarshalBinary()
	if err != nil {
		return
	}
	r.pending = append(r.pending, b)
	r.total++

	if r.flushEvery > 0 && len(r.pending) >= r.flushEvery {
		if err := r.Flush(); err != nil && r.logger != nil {
			r.logger.Warn("could not save recorded frames", "session", r.session, "error", err)
		}
	}
}

// Flush writes buffered records to the sink. Records that fail to save are
// dropped and counted.
func (r *Recorder) Flush() error {
	if len(r.pending) == 0 {
		return nil
	}
	batch := r.pending
	r.pending = nil

	if err := r.sink.SaveRecords(r.session, batch); err != nil {
		r.failed += len(batch)
		return err
	}
	if r.logger != nil {
		r.logger.Debug("saved recorded frames", "session", r.session, "count", len(batch))
	}
	return nil
}

// Recorded returns how many ticks have been recorded, saved or not.
func (r *Recorder) Recorded() int { return r.total }

// Failed returns how many records were lost to sink errors.
func (r *Recorder) Failed() int { return r.failed }

// Pending returns how many records are waiting for the next flush.
func (r *Recorder) Pending() int { return len(r.pending) }
