package app

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

const (
	EventLockObserved     = "lock.observed"
	EventUnlockSettled    = "unlock.settled"
	EventUnlockDispatched = "unlock.dispatched"
	EventUnlockFailed     = "unlock.failed"
)

// EventPublisher notifies other bridge components of record changes.
// Publishing is best effort, the database stays the source of truth.
type EventPublisher interface {
	Publish(event string, payload interface{}) error
	Close()
}

type noopPublisher struct{}

func (p *noopPublisher) Publish(string, interface{}) error { return nil }

func (p *noopPublisher) Close() {}

type natsConn interface {
	Publish(subject string, data []byte) error
	Close()
}

type natsPublisher struct {
	conn          natsConn
	subjectPrefix string
}

func (p *natsPublisher) Subject(event string) string {
	if p.subjectPrefix == "" {
		return event
	}
	return fmt.Sprintf("%s.%s", p.subjectPrefix, event)
}

func (p *natsPublisher) Publish(event string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event, err)
	}
	return p.conn.Publish(p.Subject(event), data)
}

func (p *natsPublisher) Close() {
	p.conn.Close()
}

var (
	Events EventPublisher = &noopPublisher{}
)

// PublishEvent logs instead of failing when the event cannot be sent.
func PublishEvent(event string, payload interface{}) {
	if err := Events.Publish(event, payload); err != nil {
		log.WithField("event", event).Warn("[EVENTS] Error publishing event: ", err)
	}
}

func InitEvents() {
	if !Config.Nats.Enabled {
		log.Debug("[EVENTS] NATS is disabled")
		return
	}

	timeout := 10 * time.Second
	if Config.Nats.TimeoutMillis > 0 {
		timeout = time.Duration(Config.Nats.TimeoutMillis) * time.Millisecond
	}

	conn, err := nats.Connect(Config.Nats.URL,
		nats.Name("ada-bridge-"+Config.Bridge.ValidatorID),
		nats.Timeout(timeout),
		nats.ReconnectWait(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn("[EVENTS] NATS disconnected: ", err)
			NatsConnectionStatus.Set(0)
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Info("[EVENTS] NATS reconnected")
			NatsConnectionStatus.Set(1)
		}),
	)
	if err != nil {
		log.Fatal("[EVENTS] Error connecting to NATS: ", err)
	}
	NatsConnectionStatus.Set(1)

	Events = &natsPublisher{
		conn:          conn,
		subjectPrefix: Config.Nats.SubjectPrefix,
	}
	log.Info("[EVENTS] Connected to NATS")
}
