package repayment

import "errors"

type LoanKind string

const (
	KindInterestOnly                 LoanKind = "interest_only"
	KindInterestOnlyVariable         LoanKind = "interest_only_variable"
	KindInterestAndRepayment         LoanKind = "interest_and_repayment"
	KindInterestAndRepaymentVariable LoanKind = "interest_and_repayment_variable"
)

var (
	ErrNoRemainingTerm = errors.New("loan has no remaining term")
	ErrInvalidLoan     = errors.New("invalid loan info")
	ErrUnknownStrategy = errors.New("unknown repayment strategy")
	ErrOverflow        = errors.New("repayment amount out of range")
)

// LoanInfo is the state of a loan at the start of a month.
// Interest and ReferenceRate are annual percentages (5 means 5%).
type LoanInfo struct {
	LoanID            string   `json:"loan_id"`
	Kind              LoanKind `json:"loan_kind"`
	OriginalDuration  int      `json:"original_duration"  validate:"gte=1"`
	RemainingDuration int      `json:"remaining_duration" validate:"gte=1,ltefield=OriginalDuration"`
	Interest          float64  `json:"interest"           validate:"finite,gte=0"`
	Amount            float64  `json:"amount"             validate:"finite,gte=0"`
	CreditScore       int      `json:"current_credit_score" validate:"gte=0"`
	ReferenceRate     float64  `json:"reference_rate"     validate:"finite"`
}

// MonthlyRepayment is what is due this month and where the loan stands afterwards.
type MonthlyRepayment struct {
	LoanID            string  `json:"loan_id"`
	Payment           float64 `json:"payment"`
	AmountRemaining   float64 `json:"amount_remaining"`
	RemainingDuration int     `json:"remaining_duration"`
}

// Strategy computes the next monthly repayment for a loan.
type Strategy interface {
	MonthlyRepayment(info LoanInfo) (MonthlyRepayment, error)
}

// Next returns the loan state for the following month after r has been applied.
func (l LoanInfo) Next(r MonthlyRepayment) LoanInfo {
	n := l
	n.Amount = r.AmountRemaining
	n.RemainingDuration = r.RemainingDuration
	return n
}
