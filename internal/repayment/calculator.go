package repayment

import (
	"fmt"

	domain "lending-patterns/internal/domain/repayment"
	"lending-patterns/internal/validation"
)

// Calculator delegates to whichever strategy it was built with.
type Calculator struct {
	strategy domain.Strategy
}

// NewCalculator returns a calculator for s, or for the default amortizing
// strategy when s is nil.
func NewCalculator(s domain.Strategy) *Calculator {
	if s == nil {
		s = registry[NameDefault]
	}
	return &Calculator{strategy: s}
}

func (c *Calculator) Strategy() domain.Strategy { return c.strategy }

// MonthlyRepayment validates info and applies the strategy to it.
func (c *Calculator) MonthlyRepayment(info domain.LoanInfo) (domain.MonthlyRepayment, error) {
	if err := validation.Struct(info); err != nil {
		return domain.MonthlyRepayment{}, invalidLoan(err)
	}
	return c.strategy.MonthlyRepayment(info)
}

// Schedule applies the strategy month after month, feeding each result into
// the next month, until the term ends, the balance is cleared or maxMonths
// rows have been produced. maxMonths <= 0 means no cap beyond the term.
func (c *Calculator) Schedule(info domain.LoanInfo, maxMonths int) ([]domain.MonthlyRepayment, error) {
	if err := validation.Struct(info); err != nil {
		return nil, invalidLoan(err)
	}
	if maxMonths <= 0 || maxMonths > info.RemainingDuration {
		maxMonths = info.RemainingDuration
	}
	out := make([]domain.MonthlyRepayment, 0, maxMonths)
	cur := info
	for len(out) < maxMonths {
		r, err := c.MonthlyRepayment(cur)
		if err != nil {
			return out, fmt.Errorf("month %d: %w", len(out)+1, err)
		}
		out = append(out, r)
		if r.RemainingDuration <= 0 || r.AmountRemaining <= 0 {
			break
		}
		cur = cur.Next(r)
	}
	return out, nil
}

func invalidLoan(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrInvalidLoan, validation.ToFieldErrors(err))
}
