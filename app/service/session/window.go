package session

import (
	"fmt"
	"strings"
)

// Follow-up context never spans more than the last few exchanges.
const windowSize = 3

type turnWindow struct {
	turns []Turn
}

func (w *turnWindow) add(question, answer string) {
	turn := Turn{
		Question: question,
		Answer:   answer,
	}

	if len(w.turns) >= windowSize {
		w.turns = append(w.turns[1:], turn)
	} else {
		w.turns = append(w.turns, turn)
	}
}

func (w *turnWindow) clear() {
	w.turns = nil
}

func (w *turnWindow) format() string {
	if len(w.turns) == 0 {
		return ""
	}

	var builder strings.Builder

	for _, turn := range w.turns {
		builder.WriteString(fmt.Sprintf("Human: %s\nAI: %s\n", turn.Question, turn.Answer))
	}

	return builder.String()
}

func (w *turnWindow) snapshot() []Turn {
	result := make([]Turn, len(w.turns))
	copy(result, w.turns)

	return result
}
