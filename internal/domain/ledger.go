package domain

// CapacityLedger is the authoritative count of tickets currently approved
// against an event's capacity. Version grows on every write; writers update
// conditionally on the version they read.
type CapacityLedger struct {
	EventID         string `json:"event_id"`
	ApprovedTickets int    `json:"approved_tickets"`
	Version         int64  `json:"version"`
}

// LedgerDrift reports a ledger row that disagrees with the sum of approved
// bookings for its event.
type LedgerDrift struct {
	EventID         string `json:"event_id"`
	LedgerTickets   int    `json:"ledger_tickets"`
	ApprovedTickets int    `json:"approved_tickets"`
}
