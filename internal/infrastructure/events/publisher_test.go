package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/inkwell/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/inkwell/internal/ports"
)

type sampleEvent struct {
	eventType string
	payload   interface{}
}

func (e sampleEvent) EventType() string    { return e.eventType }
func (e sampleEvent) Payload() interface{} { return e.payload }

func TestPublisherLogsEventWithCorrelationID(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := logging.New(logging.Options{
		Writer:    buf,
		Level:     "debug",
		Format:    logging.FormatJSON,
		Component: "publisher",
	})
	require.NoError(t, err)

	publisher := NewPublisher(logger)

	ctx := ports.WithCorrelationID(context.Background(), "abc-123")
	err = publisher.Publish(ctx, sampleEvent{
		eventType: ports.EventItemCreated,
		payload:   map[string]interface{}{"item_id": "i-1"},
	})
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "domain event", entry["message"])
	assert.Equal(t, ports.EventItemCreated, entry["event_type"])
	assert.Equal(t, "abc-123", entry["correlation_id"])
	assert.Equal(t, "i-1", entry["item_id"])
}

func TestPublisherDispatchesToTypedAndWildcardSubscribers(t *testing.T) {
	publisher := NewPublisher(nil)

	var typed, wildcard []string
	_, err := publisher.Subscribe(ports.EventItemDeleted, func(ctx context.Context, e ports.DomainEvent) error {
		typed = append(typed, e.EventType())
		return nil
	})
	require.NoError(t, err)
	_, err = publisher.Subscribe(AllEvents, func(ctx context.Context, e ports.DomainEvent) error {
		wildcard = append(wildcard, e.EventType())
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), sampleEvent{eventType: ports.EventItemDeleted}))
	require.NoError(t, publisher.Publish(context.Background(), sampleEvent{eventType: ports.EventSelectionChanged}))

	assert.Equal(t, []string{ports.EventItemDeleted}, typed)
	assert.Equal(t, []string{ports.EventItemDeleted, ports.EventSelectionChanged}, wildcard)
}

func TestPublisherUnsubscribe(t *testing.T) {
	publisher := NewPublisher(nil)

	calls := 0
	sub, err := publisher.Subscribe(ports.EventItemCreated, func(context.Context, ports.DomainEvent) error {
		calls++
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), sampleEvent{eventType: ports.EventItemCreated}))
	sub.Unsubscribe()
	require.NoError(t, publisher.Publish(context.Background(), sampleEvent{eventType: ports.EventItemCreated}))

	assert.Equal(t, 1, calls)
}

func TestPublisherContinuesAfterHandlerError(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := logging.New(logging.Options{Writer: buf, Format: logging.FormatJSON})
	require.NoError(t, err)
	publisher := NewPublisher(logger)

	second := false
	_, _ = publisher.Subscribe(ports.EventItemCreated, func(context.Context, ports.DomainEvent) error {
		return errors.New("boom")
	})
	_, _ = publisher.Subscribe(ports.EventItemCreated, func(context.Context, ports.DomainEvent) error {
		second = true
		return nil
	})

	require.NoError(t, publisher.Publish(context.Background(), sampleEvent{eventType: ports.EventItemCreated}))
	assert.True(t, second)
	assert.Contains(t, buf.String(), "event handler failed")
}
