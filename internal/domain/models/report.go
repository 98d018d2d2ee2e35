package models

import "time"

// BillingReport aggregates the dues of a roster at a point in time.
type BillingReport struct {
	RunID       string
	GeneratedAt time.Time
	AsOf        Date
	Members     int
	Expired     int
	ByKind      map[Kind]int
	TotalDue    Money
}
