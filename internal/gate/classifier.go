// Package gate contains the gating decisions for newly joined members:
// account-age classification, role mutation planning, and the paging state used
// by the pending review listing. Everything in this package is pure so the bot
// layer can be exercised in tests without a live gateway connection.
package gate

import (
	"fmt"
	"time"
)

// MinTrustedAgeDays is the account age below which a joining member is flagged
// for manual review instead of entering the normal pending flow.
const MinTrustedAgeDays = 30

// Outcome is the bucket a joining member is routed into.
type Outcome int

const (
	// OutcomeFlagged marks accounts younger than MinTrustedAgeDays.
	OutcomeFlagged Outcome = iota
	// OutcomePending marks accounts old enough for the normal verification flow.
	OutcomePending
)

// String returns the outcome name for logging.
func (o Outcome) String() string {
	switch o {
	case OutcomeFlagged:
		return "flagged"
	case OutcomePending:
		return "pending"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Classification is the result of routing a joining member.
type Classification struct {
	Outcome Outcome
	AgeDays int
}

// AccountAgeDays returns the whole days elapsed between account creation and
// now. Both timestamps are normalized to UTC before subtracting so the result
// does not depend on the zone either value was carried in.
func AccountAgeDays(createdAt, now time.Time) int {
	return int(now.UTC().Sub(createdAt.UTC()).Hours() / 24)
}

// Classify routes a joining member by account age.
func Classify(createdAt, now time.Time) Classification {
	age := AccountAgeDays(createdAt, now)
	if age < MinTrustedAgeDays {
		return Classification{Outcome: OutcomeFlagged, AgeDays: age}
	}
	return Classification{Outcome: OutcomePending, AgeDays: age}
}

// AdminNotice returns the administrator-channel message for this classification.
func (c Classification) AdminNotice(mention string) string {
	if c.Outcome == OutcomeFlagged {
		return fmt.Sprintf("%s joined with a new account (%d days old). Flagged for review.", mention, c.AgeDays)
	}
	return fmt.Sprintf("%s joined and was assigned Pending.", mention)
}

// WelcomeDM returns the direct message sent to the joining member.
func (c Classification) WelcomeDM() string {
	if c.Outcome == OutcomeFlagged {
		return "Welcome! Your account is too new to be auto-approved. Admins will review your membership."
	}
	return "Welcome! You've been placed in pending verification. An admin will confirm your membership soon."
}
