package watch

import "github.com/fwojciec/plfhelper"

// EventType indicates what happened to a snapshot.
type EventType int

const (
	EventStarted EventType = iota
	EventSkipped
	EventUnrecognized
	EventUnchanged
	EventChanged
	EventFailed
	EventFinished
)

func (t EventType) String() string {
	switch t {
	case EventStarted:
		return "started"
	case EventSkipped:
		return "skipped"
	case EventUnrecognized:
		return "unrecognized"
	case EventUnchanged:
		return "unchanged"
	case EventChanged:
		return "changed"
	case EventFailed:
		return "failed"
	case EventFinished:
		return "finished"
	}
	return "unknown"
}

// Event reports progress during a Run or Replay.
type Event struct {
	Type      EventType
	Session   string
	Completed int
	Total     int
	Hash      string
	Outcome   *plfhelper.ParseOutcome
	Error     error
}

// ProgressFunc is a callback for reporting watch progress.
type ProgressFunc func(event Event)

func emit(progress ProgressFunc, ev Event) {
	if progress != nil {
		progress(ev)
	}
}
