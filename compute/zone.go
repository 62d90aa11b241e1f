// Package compute maps provider compute resources from their JSON representation.
package compute

import (
	"encoding/json"
	"io"
	"time"
)

// timestampLayout is the provider's zoneless ISO 8601 timestamp format.
const timestampLayout = "2006-01-02T15:04:05.000"

// Timestamp is a provider timestamp. Values carry no zone and are read as UTC.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var value string

	err := json.Unmarshal(data, &value)
	if err != nil {
		return err
	}

	parsed, err := time.ParseInLocation(timestampLayout, value, time.UTC)
	if err != nil {
		return err
	}

	t.Time = parsed

	return nil
}

// ZoneStatus is the availability status of a zone.
type ZoneStatus string

// Zone statuses
const (
	ZoneUp   ZoneStatus = "UP"
	ZoneDown ZoneStatus = "DOWN"
)

// MaintenanceWindow is a scheduled outage of a zone.
type MaintenanceWindow struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	BeginTime   Timestamp `json:"beginTime"`
	EndTime     Timestamp `json:"endTime"`
}

// Zone is a provider zone descriptor.
type Zone struct {
	ID                 string              `json:"id"`
	CreationTimestamp  Timestamp           `json:"creationTimestamp"`
	SelfLink           string              `json:"selfLink"`
	Name               string              `json:"name"`
	Description        string              `json:"description"`
	Status             ZoneStatus          `json:"status"`
	MaintenanceWindows []MaintenanceWindow `json:"maintenanceWindows"`
}

// ParseZone reads a zone descriptor from its JSON representation.
func ParseZone(r io.Reader) (Zone, error) {
	var zone Zone

	err := json.NewDecoder(r).Decode(&zone)
	if err != nil {
		return Zone{}, err
	}

	return zone, nil
}
