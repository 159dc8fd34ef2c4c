package user

import "context"

// CreditSource says which balance a consumed credit came from.
type CreditSource string

const (
	CreditSourceFree CreditSource = "free"
	CreditSourcePaid CreditSource = "paid"
)

// CreditLedger owns the listing credit balances. Both operations are single
// atomic statements so concurrent callers cannot drive a balance negative.
type CreditLedger interface {
	// ConsumeOneCredit decrements the free balance if positive, otherwise the
	// paid balance. It fails with NotFound for an unknown user, Forbidden for a
	// locked account and InsufficientCredits when both balances are zero.
	ConsumeOneCredit(ctx context.Context, userID uint) (CreditSource, error)
	// GrantCredits adds amount to the paid balance.
	GrantCredits(ctx context.Context, userID uint, amount int) error
}
