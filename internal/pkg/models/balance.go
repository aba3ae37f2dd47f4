package models

import "time"

// BalanceSource identifies which of the candidate sources produced a balance
type BalanceSource string

const (
	BalanceSourceSummary BalanceSource = "summary"
	BalanceSourceProfile BalanceSource = "profile"
	BalanceSourceSession BalanceSource = "session"
	BalanceSourceNone    BalanceSource = "none"
)

// BalanceResult is a resolved balance with its provenance. Reliable is true
// only when the summary or profile source succeeded; an unreliable result
// must never overwrite a previously reliable stored value.
type BalanceResult struct {
	Amount     float64       `json:"amount"`
	Source     BalanceSource `json:"source"`
	Reliable   bool          `json:"reliable"`
	ResolvedAt time.Time     `json:"resolved_at"`
}

// WalletSummary is the authoritative wallet endpoint response
type WalletSummary struct {
	Balance      *float64      `json:"balance"`
	Transactions []Transaction `json:"transactions,omitempty"`
}

// Transaction is a single wallet ledger entry
type Transaction struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// DriverProfile is the profile-record balance source
type DriverProfile struct {
	DriverID    string   `json:"driver_id"`
	VehicleType string   `json:"vehicle_type,omitempty"`
	Balance     *float64 `json:"balance"`
}

// GateDecision is the outcome of the go-online balance gate
type GateDecision struct {
	Allowed bool          `json:"allowed"`
	Balance BalanceResult `json:"balance"`
	// Prompt carries the actionable settle-your-balance message when blocked
	Prompt string `json:"prompt,omitempty"`
}
