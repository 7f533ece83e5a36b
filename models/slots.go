package models

// DateOption is a candidate calendar date from the availability window.
type DateOption struct {
	Key        string `json:"key"`        // "2006-01-02"
	Weekday    string `json:"weekday"`    // "Monday"
	ShortLabel string `json:"shortLabel"` // "Mon 2 Jan"
	LongLabel  string `json:"longLabel"`  // "Monday, 2 January 2006"
}

// TimeOption is a candidate time slot from the business-hour grid. Membership
// in the grid says nothing about real-world availability.
type TimeOption struct {
	Key   string `json:"key"`   // "15:04", 24-hour
	Label string `json:"label"` // "3:04 PM"
}
