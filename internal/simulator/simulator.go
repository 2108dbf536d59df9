package simulator

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"time"

	"transitlive/tracking-service/internal/models"
)

// Publisher is the only capability the simulator holds on the broadcast
// layer.
type Publisher interface {
	Broadcast(room string, payload []byte)
}

type eventEnvelope struct {
	Event     string               `json:"event"`
	Data      models.LocationEvent `json:"data"`
	CreatedAt time.Time            `json:"created_at"`
}

const eventBusLocationUpdate = "bus-location-update"

const (
	maxBusID      = 50
	maxArrivalMin = 60
)

type Config struct {
	Interval time.Duration
	Room     string
}

// Simulator synthesizes a vehicle-position event on a fixed period and
// publishes it to the tracking room. Events are independent: no state is
// carried between ticks, and current and next stop may coincide. This is a
// placeholder for real telemetry, not a model of continuous motion.
type Simulator struct {
	stops    []models.Stop
	pub      Publisher
	interval time.Duration
	room     string
	rng      *rand.Rand
	now      func() time.Time
}

func New(stops []models.Stop, pub Publisher, cfg Config) *Simulator {
	interval := cfg.Interval
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &Simulator{
		stops:    stops,
		pub:      pub,
		interval: interval,
		room:     cfg.Room,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// Run fires until ctx is cancelled. It is started from main and owns no
// other lifecycle.
func (s *Simulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Simulator) tick() {
	if len(s.stops) == 0 {
		return
	}
	event := models.LocationEvent{
		BusID:            s.rng.Intn(maxBusID) + 1,
		CurrentStop:      s.stops[s.rng.Intn(len(s.stops))],
		NextStop:         s.stops[s.rng.Intn(len(s.stops))],
		EstimatedArrival: s.rng.Intn(maxArrivalMin) + 1,
		Timestamp:        s.now().UTC(),
	}
	payload, err := json.Marshal(eventEnvelope{
		Event:     eventBusLocationUpdate,
		Data:      event,
		CreatedAt: event.Timestamp,
	})
	if err != nil {
		log.Printf("marshal location event: %v", err)
		return
	}
	s.pub.Broadcast(s.room, payload)
}
