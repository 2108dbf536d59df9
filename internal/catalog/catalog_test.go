package catalog

import "testing"

func TestLoad(t *testing.T) {
	c := Load()
	if c.Size() != 15 {
		t.Fatalf("expected 15 stops, got %d", c.Size())
	}

	seen := make(map[int]bool)
	for _, stop := range c.Stops() {
		if seen[stop.ID] {
			t.Fatalf("duplicate stop id %d", stop.ID)
		}
		seen[stop.ID] = true
		if stop.Name == "" || stop.City == "" {
			t.Fatalf("stop %d missing name or city", stop.ID)
		}
		if stop.Lat == 0 || stop.Lng == 0 {
			t.Fatalf("stop %d missing coordinates", stop.ID)
		}
	}
}

func TestByID(t *testing.T) {
	c := Load()

	stop, ok := c.ByID(1)
	if !ok {
		t.Fatal("expected stop 1 to exist")
	}
	if stop.Name != "Amritsar Bus Stand" {
		t.Fatalf("unexpected stop 1 name: %s", stop.Name)
	}

	if _, ok := c.ByID(99); ok {
		t.Fatal("expected stop 99 to be absent")
	}
}
