package model

import "time"

// WireDateLayout is the calendar-date format used by the products API.
const WireDateLayout = "2006-01-02"

// Product represents one financial catalog item.
// DateReleased and DateRevision carry calendar dates at day granularity.
type Product struct {
	ID           string
	Name         string
	Description  string
	Logo         string
	DateReleased time.Time
	DateRevision time.Time
}
