package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/mark3labs/stepflow/internal/logger"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/xid"
)

// Event represents one entry in the append-only run journal. Run
// lifecycle, step entries and collected field values are all stored as
// events and reduced back into RunState on replay.
type Event struct {
	ID        string          `json:"id"`        // globally unique event id
	Timestamp time.Time       `json:"timestamp"` // When the event occurred
	RunID     string          `json:"run_id"`    // Run identity
	Flow      string          `json:"flow"`      // Flow slug
	Type      string          `json:"type"`      // Event type: run, step, field
	Action    string          `json:"action"`    // started, entered, set, finished, cancelled
	Meta      json.RawMessage `json:"meta"`      // Action-specific metadata
	Data      string          `json:"data"`      // Primary content (step id, field value)
}

// NewRunID builds a run identity from the flow slug plus a unique suffix,
// e.g. "project-setup-c9f2a8qk4".
func NewRunID(flowSlug string) string {
	return flowSlug + "-" + xid.New().String()
}

// Store manages run history through JetStream event sourcing.
type Store struct {
	js     jetstream.JetStream // JetStream context for operations
	stream jetstream.Stream    // The stepflow_events stream
}

// NewStore creates a new Store instance with the given JetStream context and stream.
func NewStore(js jetstream.JetStream, stream jetstream.Stream) *Store {
	return &Store{
		js:     js,
		stream: stream,
	}
}

// PublishEvent appends an event to the JetStream event log.
// Events are published to subjects following the pattern: stepflow.{run}.{type}
func (s *Store) PublishEvent(ctx context.Context, event Event) (*jetstream.PubAck, error) {
	// Set identity and timestamp if not already set
	if event.ID == "" {
		event.ID = xid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal event: %v", err)
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := SubjectForEvent(event.RunID, event.Type)

	logger.Debug("Publishing event: run=%s type=%s action=%s", event.RunID, event.Type, event.Action)

	ack, err := s.js.Publish(ctx, subject, data)
	if err != nil {
		logger.Error("Failed to publish event to subject %s: %v", subject, err)
		return nil, fmt.Errorf("failed to publish event: %w", err)
	}

	return ack, nil
}

// StepVisit records one entry into a step during a run.
type StepVisit struct {
	StepID    string    `json:"step_id"`
	EnteredAt time.Time `json:"entered_at"`
}

// RunState is the current state of a run, reconstructed from events by
// the reduce pattern.
type RunState struct {
	RunID     string            `json:"run_id"`
	Flow      string            `json:"flow"`
	StartedAt time.Time         `json:"started_at"`
	EndedAt   time.Time         `json:"ended_at,omitempty"`
	Outcome   string            `json:"outcome"` // "", "finished", "cancelled"
	Visits    []StepVisit       `json:"visits"`
	Fields    map[string]string `json:"fields"`
}

// Apply applies an event to the state, implementing the reduce pattern.
func (st *RunState) Apply(event Event) {
	if st.Flow == "" {
		st.Flow = event.Flow
	}

	switch event.Type {
	case EventTypeRun:
		switch event.Action {
		case "started":
			st.StartedAt = event.Timestamp
		case "finished", "cancelled":
			st.Outcome = event.Action
			st.EndedAt = event.Timestamp
		}

	case EventTypeStep:
		if event.Action == "entered" {
			st.Visits = append(st.Visits, StepVisit{
				StepID:    event.Data,
				EnteredAt: event.Timestamp,
			})
		}

	case EventTypeField:
		if event.Action == "set" {
			var meta struct {
				Name string `json:"name"`
			}
			json.Unmarshal(event.Meta, &meta)
			if meta.Name != "" {
				if st.Fields == nil {
					st.Fields = make(map[string]string)
				}
				st.Fields[meta.Name] = event.Data
			}
		}
	}
}

// LoadRun reconstructs the state of one run by reading and reducing all
// of its events from the event log.
func (s *Store) LoadRun(ctx context.Context, runID string) (*RunState, error) {
	logger.Debug("Loading run: %s", runID)

	state := &RunState{
		RunID:  runID,
		Fields: make(map[string]string),
	}

	err := s.replay(ctx, SubjectForRun(runID), func(event Event) {
		state.Apply(event)
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// RunSummary is one row of the run listing.
type RunSummary struct {
	RunID     string    `json:"run_id"`
	Flow      string    `json:"flow"`
	StartedAt time.Time `json:"started_at"`
	Outcome   string    `json:"outcome"`
	Steps     int       `json:"steps"`
}

// ListRuns scans the whole event log and summarizes every recorded run,
// most recent first.
func (s *Store) ListRuns(ctx context.Context) ([]*RunSummary, error) {
	byRun := make(map[string]*RunSummary)

	err := s.replay(ctx, "stepflow.>", func(event Event) {
		sum, ok := byRun[event.RunID]
		if !ok {
			sum = &RunSummary{RunID: event.RunID, Flow: event.Flow}
			byRun[event.RunID] = sum
		}
		switch {
		case event.Type == EventTypeRun && event.Action == "started":
			sum.StartedAt = event.Timestamp
		case event.Type == EventTypeRun:
			sum.Outcome = event.Action
		case event.Type == EventTypeStep && event.Action == "entered":
			sum.Steps++
		}
	})
	if err != nil {
		return nil, err
	}

	runs := make([]*RunSummary, 0, len(byRun))
	for _, sum := range byRun {
		runs = append(runs, sum)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})
	return runs, nil
}

// replay feeds every event matching subject through fn, in stream order.
func (s *Store) replay(ctx context.Context, subject string, fn func(Event)) error {
	consumer, err := s.stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		FilterSubject: subject,
		DeliverPolicy: jetstream.DeliverAllPolicy, // Start from beginning
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		logger.Error("Failed to create consumer for %s: %v", subject, err)
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	// Fetch events in batches to minimize round trips.
	const batchSize = 1000
	malformedCount := 0
	for {
		msgs, err := consumer.FetchNoWait(batchSize)
		if err != nil {
			// No more messages or error - we've read everything
			break
		}

		msgCount := 0
		for msg := range msgs.Messages() {
			msgCount++

			var event Event
			if err := json.Unmarshal(msg.Data(), &event); err != nil {
				// Skip malformed events but acknowledge to prevent redelivery
				malformedCount++
				meta, _ := msg.Metadata()
				logger.Warn("Skipping malformed event (seq=%d): %v", meta.Sequence.Stream, err)
				msg.Ack()
				continue
			}

			fn(event)
			msg.Ack()
		}

		// If we got fewer messages than batch size, we've reached the end
		if msgCount < batchSize {
			break
		}
	}

	if malformedCount > 0 {
		logger.Warn("Skipped %d malformed events during replay", malformedCount)
	}
	return nil
}
