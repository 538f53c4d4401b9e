// internal/models/location.go
package models

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location sources.
const (
	LocationSourceKnownArea = "known-area"
	LocationSourceKakao     = "kakao"
)

type ResolvedLocation struct {
	Query       string      `json:"query"`
	Name        string      `json:"name"`
	Address     string      `json:"address,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
	Source      string      `json:"source"`
}
