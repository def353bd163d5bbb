// Package browser opens map URLs in the local desktop browser.
package browser

import (
	"context"
	"fmt"

	"github.com/couchcryptid/storm-data-web/internal/mapnav"
	"github.com/pkg/browser"
)

// Opener implements mapnav.Opener with the system browser.
type Opener struct {
	openURL func(string) error
}

// NewOpener returns an Opener that launches the system browser. Launcher
// output follows browser.Stdout and browser.Stderr, which the caller owns.
func NewOpener() *Opener {
	return &Opener{openURL: browser.OpenURL}
}

// Open launches the target URL. The launcher is fire-and-forget; only a
// failure to start it is reported.
func (o *Opener) Open(_ context.Context, target mapnav.Target) error {
	if err := o.openURL(target.URL); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}
