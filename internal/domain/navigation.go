package domain

import "time"

// Navigation target kinds.
const (
	NavigationDirections = "directions"
	NavigationSearch     = "search"
)

// NavigationEvent records one external map URL handed to a viewing context.
type NavigationEvent struct {
	URL      string    `json:"url"`
	Kind     string    `json:"kind"`
	OpenedAt time.Time `json:"opened_at"`
}

// NewNavigationEvent stamps a navigation with the package clock.
func NewNavigationEvent(url, kind string) NavigationEvent {
	return NavigationEvent{
		URL:      url,
		Kind:     kind,
		OpenedAt: clock.Now().UTC(),
	}
}
