package models

import "time"

type Account struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash []byte    `json:"-"`
	ProfileIcon  string    `json:"profileIcon"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Stop struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	City string  `json:"city"`
}

type LocationEvent struct {
	BusID            int       `json:"busId"`
	CurrentStop      Stop      `json:"currentStop"`
	NextStop         Stop      `json:"nextStop"`
	EstimatedArrival int       `json:"estimatedArrival"`
	Timestamp        time.Time `json:"timestamp"`
}
