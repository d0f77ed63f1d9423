package models

import "time"

// Profile is the athlete using the app. Level and VMA seed new programs.
type Profile struct {
	Name      string    `json:"name" toml:"name"`
	Email     string    `json:"email" toml:"email"`
	Level     Level     `json:"level" toml:"level"`
	VMA       float64   `json:"vma" toml:"vma"`
	Weight    float64   `json:"weight" toml:"weight"` // kg
	Height    float64   `json:"height" toml:"height"` // cm
	BirthDate string    `json:"birth_date" toml:"birth_date"`
	UpdatedAt time.Time `json:"updated_at" toml:"updated_at"`
}
