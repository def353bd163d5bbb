package http

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/couchcryptid/storm-data-web/internal/domain"
	"github.com/couchcryptid/storm-data-web/internal/mapnav"
)

// handleNavigate opens the requested location in the map application. In
// redirect mode the browser is sent straight to the map; in push mode the
// URL goes to the user's connected clients and the request is accepted.
func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	loc, err := parseLocation(r.URL.Query())
	if err != nil {
		sharedobs.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	opener := s.push
	if opener == nil {
		opener = redirectOpener(w, r)
	}

	target, ok, err := mapnav.NewHelper(opener).Navigate(r.Context(), loc)
	if !ok {
		s.metrics.Navigations.WithLabelValues("none").Inc()
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.metrics.Navigations.WithLabelValues(target.Kind).Inc()

	if err != nil {
		s.logger.Error("navigation failed", "kind", target.Kind, "error", err)
		sharedobs.WriteJSON(w, http.StatusBadGateway, map[string]string{"error": "navigation could not be delivered"})
		return
	}
	if s.push != nil {
		sharedobs.WriteJSON(w, http.StatusAccepted, map[string]string{"kind": target.Kind, "url": target.URL})
	}
}

func redirectOpener(w http.ResponseWriter, r *http.Request) mapnav.Opener {
	return mapnav.OpenerFunc(func(_ context.Context, target mapnav.Target) error {
		http.Redirect(w, r, target.URL, http.StatusFound)
		return nil
	})
}

// parseLocation reads lat, lng, name and address. Blank coordinates are
// absent; malformed ones are an error.
func parseLocation(q url.Values) (domain.Location, error) {
	lat, err := parseCoord(q, "lat")
	if err != nil {
		return domain.Location{}, err
	}
	lng, err := parseCoord(q, "lng")
	if err != nil {
		return domain.Location{}, err
	}
	return domain.Location{
		Lat:     lat,
		Lng:     lng,
		Name:    q.Get("name"),
		Address: q.Get("address"),
	}, nil
}

func parseCoord(q url.Values, key string) (*float64, error) {
	s := q.Get(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", key, s)
	}
	return &v, nil
}
