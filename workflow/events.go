package workflow

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Event is published to the observers on every state change
type Event struct {
	Operation Operation
	Phase     Phase
	TxHash    common.Hash
	State     State
	Time      time.Time
}

// Observer receives the workflow events in the order they happened
type Observer interface {
	OnEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(Event)

// OnEvent calls f(e)
func (f ObserverFunc) OnEvent(e Event) {
	f(e)
}
