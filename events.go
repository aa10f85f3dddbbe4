package revenue

import (
	"context"
	"fmt"

	"github.com/tendermint/tendermint/libs/common"
)

// Event is a notification about a state change that external observers can
// rely on. Events are collected while an operation executes and only
// released to the caller when the operation succeeds.
type Event interface {
	// EventType is the name of the event, for example "IncomeAdded".
	EventType() string
	// Attributes returns the event payload as key value pairs.
	Attributes() []common.KVPair
}

// EventSink collects events emitted within a single context.
type EventSink struct {
	events []Event
}

// Events returns all events collected so far, in emission order.
func (s *EventSink) Events() []Event {
	return s.events
}

// Append adds events to the sink.
func (s *EventSink) Append(events ...Event) {
	s.events = append(s.events, events...)
}

// Reset drops all collected events.
func (s *EventSink) Reset() {
	s.events = nil
}

// WithEventSink sets the sink that collects events emitted within the
// returned context.
func WithEventSink(ctx Context, sink *EventSink) Context {
	return context.WithValue(ctx, contextKeyEvents, sink)
}

// GetEventSink returns the sink of this context, if any was set.
func GetEventSink(ctx Context) (*EventSink, bool) {
	s, ok := ctx.Value(contextKeyEvents).(*EventSink)
	return s, ok && s != nil
}

// Emit records an event in the context sink. Emitting into a context
// without a sink is a no-op.
func Emit(ctx Context, ev Event) {
	if s, ok := GetEventSink(ctx); ok {
		s.Append(ev)
	}
}

// EventTags renders events as a flat list of tags. Every attribute key is
// prefixed with the event type.
//
//	IncomeAdded.amount=10, IncomeAdded.index=1
func EventTags(events []Event) []common.KVPair {
	var tags []common.KVPair
	for _, ev := range events {
		prefix := ev.EventType() + "."
		for _, a := range ev.Attributes() {
			tags = append(tags, common.KVPair{
				Key:   append([]byte(prefix), a.Key...),
				Value: a.Value,
			})
		}
	}
	return tags
}

// Attr builds a single event attribute. The value is rendered with its
// default format, so addresses are rendered as hex.
func Attr(key string, value interface{}) common.KVPair {
	return common.KVPair{Key: []byte(key), Value: []byte(fmt.Sprint(value))}
}
