// Package domain holds the small value types shared by the web client glue:
// location descriptors for map navigation, opaque notification records and
// the navigation events pushed to connected clients.
//
// # Locations
//
// A [Location] carries optional coordinates and optional text. Coordinates
// are pointers so that "absent" and "zero" stay distinguishable: a point on
// the equator or the prime meridian is a real destination.
//
// # Notifications
//
// Notification records are owned by the upstream API. They are carried as
// raw JSON and never decoded, so fields added upstream reach the browser
// without a deploy here.
package domain
