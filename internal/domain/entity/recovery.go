package entity

import "time"

// Selection is where the customer was in the quote wizard.
type Selection struct {
	DeviceID      string          `json:"deviceId"`
	Type          TransactionType `json:"type"`
	Storage       string          `json:"storage,omitempty"`
	IssueIDs      []string        `json:"issueIds,omitempty"`
	ScreenVariant string          `json:"screenVariant,omitempty"`
	Step          string          `json:"step,omitempty"`
}

// RecoverySession is an abandoned quote that can be resumed by token. It never
// holds a price: resuming re-runs the input through the current price table.
type RecoverySession struct {
	Token     string         `json:"token,omitempty"` // Only set on the session returned by save.
	TokenHash string         `json:"-"`
	Input     ConditionInput `json:"conditionInput"`
	Selection Selection      `json:"selection"`
	Email     *string        `json:"email,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	ExpiresAt time.Time      `json:"expiresAt"`
}

// IsExpired reports whether now is past the session's expiry.
func (s *RecoverySession) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
