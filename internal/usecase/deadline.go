package usecase

import "time"

// CompletionGracePeriod is the window a sale gets to reach COMPLETED before
// it is flagged overdue in list views. The clock starts at the sale's
// creation time, not at the advance payment.
const CompletionGracePeriod = 5 * 24 * time.Hour

// DeadlineStatus is the display-only triage annotation for a sale awaiting
// completion. It carries no enforcement; an overdue sale is not cancelled
// automatically.
type DeadlineStatus struct {
	Overdue   bool          `json:"overdue"`
	Magnitude time.Duration `json:"magnitude"`
}

// ComputeDeadline turns a sale's creation time and the current time into
// "time remaining" or "time overdue". Pure; the caller supplies now.
func ComputeDeadline(createdAt, now time.Time) DeadlineStatus {
	deadline := createdAt.Add(CompletionGracePeriod)
	if now.After(deadline) {
		return DeadlineStatus{Overdue: true, Magnitude: now.Sub(deadline)}
	}
	return DeadlineStatus{Overdue: false, Magnitude: deadline.Sub(now)}
}
