// Command mapnav opens a location in Google Maps from the command line.
//
// Usage:
//
//	go run ./cmd/mapnav -lat 30.2672 -lng -97.7431
//	go run ./cmd/mapnav -name "Zilker Park" -address "Austin, TX"
//	go run ./cmd/mapnav -name "Zilker Park" -print
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/couchcryptid/storm-data-web/internal/adapter/browser"
	"github.com/couchcryptid/storm-data-web/internal/domain"
	"github.com/couchcryptid/storm-data-web/internal/mapnav"
	pkgbrowser "github.com/pkg/browser"
)

func main() {
	// Launcher chatter stays off stdout, which -print owns.
	pkgbrowser.Stdout = os.Stderr
	pkgbrowser.Stderr = os.Stderr
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mapnav", flag.ContinueOnError)
	fs.SetOutput(stderr)
	lat := fs.String("lat", "", "latitude in decimal degrees")
	lng := fs.String("lng", "", "longitude in decimal degrees")
	name := fs.String("name", "", "place name")
	address := fs.String("address", "", "street address")
	printOnly := fs.Bool("print", false, "print the map URL instead of opening a browser")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	loc := domain.Location{Name: *name, Address: *address}
	var err error
	if loc.Lat, err = parseCoord("lat", *lat); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if loc.Lng, err = parseCoord("lng", *lng); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	var opener mapnav.Opener
	if *printOnly {
		opener = mapnav.OpenerFunc(func(_ context.Context, target mapnav.Target) error {
			_, err := fmt.Fprintln(stdout, target.URL)
			return err
		})
	} else {
		opener = browser.NewOpener()
	}

	_, ok, err := mapnav.NewHelper(opener).Navigate(context.Background(), loc)
	if !ok {
		fmt.Fprintln(stderr, "nothing to open: pass -lat and -lng, or -name/-address")
		return 1
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func parseCoord(flagName, s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid -%s %q", flagName, s)
	}
	return &v, nil
}
