//go:build integration

package audit

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"idcheck/pkg/testutil/containers"
)

func TestKafkaStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	rp := containers.NewRedpandaContainer(t)
	rp.CreateTopic(t, DefaultTopic)

	store, err := NewKafkaStore(rp.Brokers, DefaultTopic)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })

	pub := NewPublisher(store)
	digest := DigestInput("510108197205052137")
	require.NoError(t, pub.Emit(ctx, Event{
		RequestID:    "req-1",
		InputDigest:  digest,
		Outcome:      "valid",
		DivisionCode: "510108",
	}))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(rp.Brokers...),
		kgo.ConsumeTopics(DefaultTopic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	t.Cleanup(consumer.Close)

	fetchCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	fetches := consumer.PollFetches(fetchCtx)
	require.NoError(t, fetches.Err())

	records := fetches.Records()
	require.Len(t, records, 1)
	require.Equal(t, digest, string(records[0].Key))

	var got Event
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	require.Equal(t, "valid", got.Outcome)
	require.Equal(t, "510108", got.DivisionCode)
	require.Equal(t, "req-1", got.RequestID)
	require.False(t, got.Timestamp.IsZero())
}
