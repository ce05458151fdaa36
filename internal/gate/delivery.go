package gate

import "fmt"

// DeliveryResult is the outcome of a best-effort notification send. Sends never
// surface as errors to event handlers; callers and tests branch on the result
// instead.
type DeliveryResult int

const (
	// DeliverySent means the message was delivered.
	DeliverySent DeliveryResult = iota
	// DeliveryBlocked means the recipient's privacy settings refused the DM.
	DeliveryBlocked
	// DeliveryFailed means the send failed for any other reason.
	DeliveryFailed
	// DeliverySkipped means no destination was configured or resolvable.
	DeliverySkipped
)

// String returns the result name for logging.
func (r DeliveryResult) String() string {
	switch r {
	case DeliverySent:
		return "sent"
	case DeliveryBlocked:
		return "blocked"
	case DeliveryFailed:
		return "failed"
	case DeliverySkipped:
		return "skipped"
	default:
		return fmt.Sprintf("DeliveryResult(%d)", int(r))
	}
}
