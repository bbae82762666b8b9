package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockNatsConn struct {
	subject string
	data    []byte
	err     error
	closed  bool
}

func (m *mockNatsConn) Publish(subject string, data []byte) error {
	m.subject = subject
	m.data = data
	return m.err
}

func (m *mockNatsConn) Close() {
	m.closed = true
}

func TestNatsPublisher(t *testing.T) {
	t.Run("With Prefix", func(t *testing.T) {
		conn := &mockNatsConn{}
		p := &natsPublisher{conn: conn, subjectPrefix: "bridge.ada"}

		err := p.Publish(EventLockObserved, map[string]string{"tx_id": "abc"})

		assert.NoError(t, err)
		assert.Equal(t, "bridge.ada.lock.observed", conn.subject)
		assert.JSONEq(t, `{"tx_id":"abc"}`, string(conn.data))
	})

	t.Run("Without Prefix", func(t *testing.T) {
		conn := &mockNatsConn{}
		p := &natsPublisher{conn: conn}

		err := p.Publish(EventUnlockSettled, "0x01")

		assert.NoError(t, err)
		assert.Equal(t, "unlock.settled", conn.subject)
	})

	t.Run("Marshal Error", func(t *testing.T) {
		conn := &mockNatsConn{}
		p := &natsPublisher{conn: conn}

		err := p.Publish(EventUnlockFailed, make(chan int))

		assert.Error(t, err)
		assert.Empty(t, conn.subject)
	})

	t.Run("Close", func(t *testing.T) {
		conn := &mockNatsConn{}
		p := &natsPublisher{conn: conn}

		p.Close()

		assert.True(t, conn.closed)
	})
}

func TestPublishEvent(t *testing.T) {
	conn := &mockNatsConn{err: errors.New("error")}
	Events = &natsPublisher{conn: conn}
	defer func() { Events = &noopPublisher{} }()

	assert.NotPanics(t, func() { PublishEvent(EventUnlockDispatched, "payload") })
	assert.Equal(t, EventUnlockDispatched, conn.subject)
}

func TestInitEventsDisabled(t *testing.T) {
	Config.Nats.Enabled = false
	Events = &noopPublisher{}

	InitEvents()

	_, ok := Events.(*noopPublisher)
	assert.True(t, ok)
}
