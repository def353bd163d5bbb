package domain

import "math"

// Location describes a place the user wants to navigate to. Every field is
// optional; callers build one per navigation and throw it away afterwards.
type Location struct {
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
	Name    string   `json:"name,omitempty"`
	Address string   `json:"address,omitempty"`
}

// NewCoordinateLocation returns a Location with both coordinates set.
func NewCoordinateLocation(lat, lng float64) Location {
	return Location{Lat: &lat, Lng: &lng}
}

// HasCoordinates reports whether both latitude and longitude are present and
// numeric. Zero is a valid coordinate.
func (l Location) HasCoordinates() bool {
	return isNumber(l.Lat) && isNumber(l.Lng)
}

// HasText reports whether a name or an address is available for a search.
func (l Location) HasText() bool {
	return l.Name != "" || l.Address != ""
}

func isNumber(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}
