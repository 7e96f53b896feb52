package playable

import (
	"drawpoker/pkg/deck"
	"drawpoker/pkg/playable/poker/action"
	"fmt"
	"github.com/google/uuid"
	"strings"
	"time"
)

// EventType identifies what happened at the table
type EventType string

// event types
const (
	EventHandStarted       EventType = "hand-started"
	EventCardsDealt        EventType = "cards-dealt"
	EventRoundStarted      EventType = "round-started"
	EventAction            EventType = "action"
	EventInsufficientFunds EventType = "insufficient-funds"
	EventExchange          EventType = "exchange"
	EventRoundSettled      EventType = "round-settled"
	EventShowdown          EventType = "showdown"
	EventWinner            EventType = "winner"
	EventStacks            EventType = "stacks"
	EventGameOver          EventType = "game-over"
)

// Event is the format the engine sends presentation events in
// If PlayerIDs is empty, assume it's a general statement, otherwise the message will
// be rendered like "{player} did X, Y, Z"
// When Private is true, Cards must only be shown to the players in PlayerIDs.
type Event struct {
	UUID      string        `json:"uuid"`
	Type      EventType     `json:"type"`
	HandID    string        `json:"handId"`
	PlayerIDs []int64       `json:"playerIds"`
	Cards     deck.Hand     `json:"cards,omitempty"`
	Private   bool          `json:"private"`
	Action    action.Action `json:"action,omitempty"`
	Amount    int           `json:"amount"`
	Pot       int           `json:"pot"`
	Stacks    map[int64]int `json:"stacks,omitempty"`
	Message   string        `json:"message"`
	Time      time.Time     `json:"time"`
}

// NewEvent returns a new Event
func NewEvent(eventType EventType, handID string, playerID int64, format string, a ...interface{}) *Event {
	var playerIDs []int64
	if playerID > 0 {
		playerIDs = []int64{playerID}
	}

	return &Event{
		UUID:      uuid.New().String(),
		Type:      eventType,
		HandID:    handID,
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

// Render replaces the {} placeholder with the supplied name
func (e *Event) Render(name string) string {
	return strings.Replace(e.Message, "{}", name, 1)
}

// IsVisibleTo returns true if the viewer may see the event's cards
func (e *Event) IsVisibleTo(playerID int64) bool {
	if !e.Private {
		return true
	}

	for _, id := range e.PlayerIDs {
		if id == playerID {
			return true
		}
	}

	return false
}

// EventSink receives events for presentation
// Emit must return quickly; the engine does not wait for a response
type EventSink interface {
	Emit(event *Event)
}

// SinkFunc adapts a function to an EventSink
type SinkFunc func(event *Event)

// Emit calls the function
func (s SinkFunc) Emit(event *Event) {
	s(event)
}

// Discard is an EventSink that drops every event
var Discard EventSink = SinkFunc(func(*Event) {})

// Recorder is an EventSink that keeps every event, useful in tests
type Recorder struct {
	Events []*Event
}

// Emit records the event
func (r *Recorder) Emit(event *Event) {
	r.Events = append(r.Events, event)
}

// OfType returns the recorded events of the given type, in order
func (r *Recorder) OfType(eventType EventType) []*Event {
	events := make([]*Event, 0)
	for _, e := range r.Events {
		if e.Type == eventType {
			events = append(events, e)
		}
	}

	return events
}

// Types returns the type of every recorded event, in order
func (r *Recorder) Types() []EventType {
	types := make([]EventType, len(r.Events))
	for i, e := range r.Events {
		types[i] = e.Type
	}

	return types
}
