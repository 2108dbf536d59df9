package catalog

import "transitlive/tracking-service/internal/models"

// Catalog holds the static set of Punjab bus stops. It is loaded once at
// startup and is read-only afterwards.
type Catalog struct {
	stops []models.Stop
	byID  map[int]models.Stop
}

func Load() *Catalog {
	stops := []models.Stop{
		{ID: 1, Name: "Amritsar Bus Stand", Lat: 31.6340, Lng: 74.8723, City: "Amritsar"},
		{ID: 2, Name: "Ludhiana Bus Terminal", Lat: 30.9010, Lng: 75.8573, City: "Ludhiana"},
		{ID: 3, Name: "Jalandhar Bus Stand", Lat: 31.3260, Lng: 75.5762, City: "Jalandhar"},
		{ID: 4, Name: "Patiala Bus Terminal", Lat: 30.3398, Lng: 76.3869, City: "Patiala"},
		{ID: 5, Name: "Bathinda Bus Stand", Lat: 30.2115, Lng: 74.9455, City: "Bathinda"},
		{ID: 6, Name: "Mohali Bus Terminal", Lat: 30.7046, Lng: 76.7179, City: "Mohali"},
		{ID: 7, Name: "Firozpur Bus Stand", Lat: 30.9251, Lng: 74.6107, City: "Firozpur"},
		{ID: 8, Name: "Batala Bus Terminal", Lat: 31.8188, Lng: 75.2028, City: "Batala"},
		{ID: 9, Name: "Moga Bus Stand", Lat: 30.8138, Lng: 75.1688, City: "Moga"},
		{ID: 10, Name: "Abohar Bus Terminal", Lat: 30.1445, Lng: 74.1995, City: "Abohar"},
		{ID: 11, Name: "Malerkotla Bus Stand", Lat: 30.5309, Lng: 75.8805, City: "Malerkotla"},
		{ID: 12, Name: "Khanna Bus Terminal", Lat: 30.7046, Lng: 76.2201, City: "Khanna"},
		{ID: 13, Name: "Phagwara Bus Stand", Lat: 31.2240, Lng: 75.7708, City: "Phagwara"},
		{ID: 14, Name: "Muktsar Bus Terminal", Lat: 30.4745, Lng: 74.5160, City: "Muktsar"},
		{ID: 15, Name: "Barnala Bus Stand", Lat: 30.3745, Lng: 75.5487, City: "Barnala"},
	}
	byID := make(map[int]models.Stop, len(stops))
	for _, stop := range stops {
		byID[stop.ID] = stop
	}
	return &Catalog{stops: stops, byID: byID}
}

func (c *Catalog) Stops() []models.Stop {
	return c.stops
}

func (c *Catalog) Size() int {
	return len(c.stops)
}

func (c *Catalog) ByID(id int) (models.Stop, bool) {
	stop, ok := c.byID[id]
	return stop, ok
}
