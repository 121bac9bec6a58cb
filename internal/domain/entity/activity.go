package entity

// Activity groups the ledger rows that explain a profile's balance.
type Activity struct {
	Profile     *Profile           `json:"profile"`
	Completions []*ChoreCompletion `json:"completions"`
	Behavior    []*BehaviorLog     `json:"behavior_logs"`
	Redemptions []*Redemption      `json:"redemptions"`
}
