package crowdfund

import (
	"errors"
	"fmt"
)

// ErrValidation marks a rejected mutation: the add operation would break a
// ledger invariant and the project state is left unchanged. Callers match it
// with errors.Is.
var ErrValidation = errors.New("validation failed")

// OverpaymentError reports an attempt to pay more against an expense than its
// amount allows. It carries the figures a caller needs to report the
// rejection: the expense total, what is already paid, and the headroom left.
type OverpaymentError struct {
	Description string // expense description
	Total       Money  // original expense amount, the cap for all payments
	Paid        Money  // sum of payments already applied
	Attempted   Money  // amount of the rejected payment
}

func (e *OverpaymentError) Error() string {
	remaining := e.Total.Sub(e.Paid)
	return fmt.Sprintf("payment of %s exceeds expense %q: total %s, paid %s, remaining %s",
		e.Attempted, e.Description, e.Total, e.Paid, remaining)
}

// Remaining returns the headroom left on the expense before the rejected payment.
func (e *OverpaymentError) Remaining() Money { return e.Total.Sub(e.Paid) }

// Is makes OverpaymentError match ErrValidation.
func (e *OverpaymentError) Is(target error) bool { return target == ErrValidation }
