// Package mapnav opens an external map application at a location, preferring
// exact coordinates over a text search.
package mapnav

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/couchcryptid/storm-data-web/internal/domain"
)

const (
	directionsURL = "https://www.google.com/maps/dir/?api=1&destination=%s,%s&travelmode=driving"
	searchURL     = "https://www.google.com/maps/search/?api=1&query="
)

// Opener shows a target's URL in a new viewing context, such as a browser
// tab.
type Opener interface {
	Open(ctx context.Context, target Target) error
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(ctx context.Context, target Target) error

func (f OpenerFunc) Open(ctx context.Context, target Target) error { return f(ctx, target) }

// Target is a resolved map URL.
type Target struct {
	Kind string // domain.NavigationDirections or domain.NavigationSearch
	URL  string
}

// Resolve picks the map URL for loc. Coordinates win over text; with neither
// it returns false.
func Resolve(loc domain.Location) (Target, bool) {
	switch {
	case loc.HasCoordinates():
		return Target{
			Kind: domain.NavigationDirections,
			URL:  fmt.Sprintf(directionsURL, formatCoord(*loc.Lat), formatCoord(*loc.Lng)),
		}, true
	case loc.HasText():
		query := loc.Name + ", " + loc.Address
		return Target{
			Kind: domain.NavigationSearch,
			URL:  searchURL + encodeURIComponent(query),
		}, true
	default:
		return Target{}, false
	}
}

// Helper resolves locations and hands the result to an Opener.
type Helper struct {
	opener Opener
}

// NewHelper creates a Helper that opens targets with opener.
func NewHelper(opener Opener) *Helper {
	return &Helper{opener: opener}
}

// Navigate opens loc in the map application. At most one URL is opened; a
// location with nothing to navigate to is a no-op. The error, if any, comes
// from the opener.
func (h *Helper) Navigate(ctx context.Context, loc domain.Location) (Target, bool, error) {
	target, ok := Resolve(loc)
	if !ok {
		return Target{}, false, nil
	}
	return target, true, h.opener.Open(ctx, target)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// encodeURIComponent escapes s the way browsers do for a single URI
// component: spaces become %20 and the marks !'()* stay literal.
func encodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	return uriComponentFixups.Replace(escaped)
}

var uriComponentFixups = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)
