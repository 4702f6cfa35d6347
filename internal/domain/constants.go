package domain

import "time"

// Default pricing, in HKD
const (
	DefaultBasePrice       = 2800
	DefaultPerVehiclePrice = 800
	DefaultPerVideoPrice   = 500
)

// MaxNotesLength limits admin notes
const MaxNotesLength = 1000

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// StatusFilterAll disables status filtering on the dashboard
const StatusFilterAll = "all"

// HongKong is the business timezone. Hong Kong has no DST, so a fixed zone is exact.
var HongKong = time.FixedZone("HKT", 8*60*60)
