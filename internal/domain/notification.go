package domain

import (
	"encoding/json"
	"strconv"
)

// NotificationID is the caller-supplied token identifying one notification.
// It is never generated or interpreted here.
type NotificationID string

// NotificationIDFromInt formats a numeric identifier as a NotificationID.
func NotificationIDFromInt(id int64) NotificationID {
	return NotificationID(strconv.FormatInt(id, 10))
}

func (id NotificationID) String() string { return string(id) }

// Notification is one server-defined notification record, kept verbatim.
type Notification = json.RawMessage
