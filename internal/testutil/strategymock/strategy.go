package strategymock

import (
	"context"

	domain "lending-patterns/internal/domain/repayment"
)

// Ensure compile-time compliance
var _ domain.Strategy = (*Strategy)(nil)

// Strategy is a function-backed mock that satisfies repayment.Strategy.
// Unfilled MonthlyRepaymentFn returns context.Canceled, like the other mocks here.
type Strategy struct {
	MonthlyRepaymentFn func(info domain.LoanInfo) (domain.MonthlyRepayment, error)
	Seen               []domain.LoanInfo
}

func (m *Strategy) MonthlyRepayment(info domain.LoanInfo) (domain.MonthlyRepayment, error) {
	m.Seen = append(m.Seen, info)
	if m.MonthlyRepaymentFn != nil {
		return m.MonthlyRepaymentFn(info)
	}
	return domain.MonthlyRepayment{}, context.Canceled
}
