package communication

import (
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

// SubjectLessonEvents carries every lesson lifecycle event.
const SubjectLessonEvents = "lesson.events"

// Messenger encapsulates a NATS connection used to publish lesson events so
// processes outside this one can observe lesson activity. A nil Messenger is
// valid and publishes nothing.
type Messenger struct {
	nc *nats.Conn
}

// NewMessenger connects to NATS at the given URL.
func NewMessenger(url string) (*Messenger, error) {
	nc, err := nats.Connect(url,
		nats.Timeout(10*time.Second),
	)
	if err != nil {
		return nil, err
	}
	return &Messenger{nc: nc}, nil
}

// PublishEvent publishes a lesson event on the shared subject. Publishing is
// best-effort; failures are logged, never surfaced to the lesson flow.
func (m *Messenger) PublishEvent(eventType string, payload interface{}) {
	if m == nil || m.nc == nil {
		return
	}

	data, err := json.Marshal(WSEvent{Type: eventType, Payload: payload})
	if err != nil {
		log.Printf("Failed to encode lesson event: %v", err)
		return
	}
	if err := m.nc.Publish(SubjectLessonEvents, data); err != nil {
		log.Printf("Failed to publish lesson event: %v", err)
	}
}

// BridgeToWebSocket re-broadcasts lesson events arriving over NATS into the
// local websocket hub, so a UI connected here also sees events published by
// other processes.
func (m *Messenger) BridgeToWebSocket() error {
	if m == nil || m.nc == nil {
		return nil
	}

	_, err := m.nc.Subscribe(SubjectLessonEvents, func(msg *nats.Msg) {
		var event WSEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			log.Printf("Ignoring malformed lesson event: %v", err)
			return
		}
		BroadcastEvent(event.Type, event.Payload)
	})
	return err
}

// Close gracefully closes the connection.
func (m *Messenger) Close() {
	if m != nil && m.nc != nil {
		m.nc.Close()
	}
}
