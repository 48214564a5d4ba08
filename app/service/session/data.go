package session

// State is derived from the summary slot, never stored on its own.
type State int

const (
	StateEmpty State = iota
	StateSummarized
)

func (s State) String() string {
	if s == StateSummarized {
		return "summarized"
	}

	return "empty"
}

// Turn is one recorded follow-up exchange.
type Turn struct {
	Question string
	Answer   string
}

// Snapshot is a consistent read of the whole context, taken under one lock.
type Snapshot struct {
	State   State
	Summary string
	History string
	Turns   []Turn
}
