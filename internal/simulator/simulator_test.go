package simulator

import (
	"context"
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"transitlive/tracking-service/internal/catalog"
	"transitlive/tracking-service/internal/models"
)

type capturePublisher struct {
	room     string
	payloads [][]byte
}

func (p *capturePublisher) Broadcast(room string, payload []byte) {
	p.room = room
	p.payloads = append(p.payloads, payload)
}

type envelope struct {
	Event     string               `json:"event"`
	Data      models.LocationEvent `json:"data"`
	CreatedAt time.Time            `json:"created_at"`
}

func TestTickPublishesOneEvent(t *testing.T) {
	stops := catalog.Load()
	pub := &capturePublisher{}
	sim := New(stops.Stops(), pub, Config{Interval: 15 * time.Second, Room: "bus-tracking"})
	sim.rng = rand.New(rand.NewSource(1))
	frozen := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	sim.now = func() time.Time { return frozen }

	sim.tick()

	if len(pub.payloads) != 1 {
		t.Fatalf("expected 1 publish per tick, got %d", len(pub.payloads))
	}
	if pub.room != "bus-tracking" {
		t.Fatalf("expected publish to bus-tracking, got %s", pub.room)
	}

	var env envelope
	if err := json.Unmarshal(pub.payloads[0], &env); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if env.Event != "bus-location-update" {
		t.Fatalf("unexpected event name: %s", env.Event)
	}
	if env.Data.BusID < 1 || env.Data.BusID > 50 {
		t.Fatalf("bus id out of range: %d", env.Data.BusID)
	}
	if env.Data.EstimatedArrival < 1 || env.Data.EstimatedArrival > 60 {
		t.Fatalf("estimated arrival out of range: %d", env.Data.EstimatedArrival)
	}
	if _, ok := stops.ByID(env.Data.CurrentStop.ID); !ok {
		t.Fatalf("current stop %d not in catalog", env.Data.CurrentStop.ID)
	}
	if _, ok := stops.ByID(env.Data.NextStop.ID); !ok {
		t.Fatalf("next stop %d not in catalog", env.Data.NextStop.ID)
	}
	if !env.Data.Timestamp.Equal(frozen) {
		t.Fatalf("expected timestamp %v, got %v", frozen, env.Data.Timestamp)
	}
}

func TestEventsAreIndependent(t *testing.T) {
	stops := catalog.Load()
	pub := &capturePublisher{}
	sim := New(stops.Stops(), pub, Config{Room: "bus-tracking"})
	sim.rng = rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		sim.tick()
	}
	if len(pub.payloads) != 50 {
		t.Fatalf("expected 50 publishes, got %d", len(pub.payloads))
	}

	// Current and next stop may coincide; over 50 draws we should still see
	// more than one distinct current stop.
	distinct := make(map[int]bool)
	for _, payload := range pub.payloads {
		var env envelope
		if err := json.Unmarshal(payload, &env); err != nil {
			t.Fatalf("unmarshal payload: %v", err)
		}
		distinct[env.Data.CurrentStop.ID] = true
	}
	if len(distinct) < 2 {
		t.Fatalf("expected varied stop selection, got %d distinct", len(distinct))
	}
}

func TestTickWithEmptyCatalog(t *testing.T) {
	pub := &capturePublisher{}
	sim := New(nil, pub, Config{Room: "bus-tracking"})

	sim.tick()

	if len(pub.payloads) != 0 {
		t.Fatalf("expected no publish without stops, got %d", len(pub.payloads))
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	stops := catalog.Load()
	pub := &capturePublisher{}
	sim := New(stops.Stops(), pub, Config{Interval: 5 * time.Millisecond, Room: "bus-tracking"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sim.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("simulator did not stop after cancellation")
	}
	if len(pub.payloads) == 0 {
		t.Fatal("expected at least one publish before cancellation")
	}
}
