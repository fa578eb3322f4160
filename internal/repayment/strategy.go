package repayment

import (
	"math"

	"github.com/shopspring/decimal"

	domain "lending-patterns/internal/domain/repayment"
)

// moneyPlaces is the precision every amount in a MonthlyRepayment is rounded to.
const moneyPlaces = 4

func round(x float64) float64 {
	return decimal.NewFromFloat(x).Round(moneyPlaces).InexactFloat64()
}

// monthlyInterest is one month of interest on the outstanding amount. When
// variable is set the reference rate is added on top of the contractual rate.
func monthlyInterest(info domain.LoanInfo, variable bool) float64 {
	rate := info.Interest
	if variable {
		rate += info.ReferenceRate
	}
	return info.Amount * rate / 12 / 100
}

// principalPart spreads the outstanding amount evenly over the remaining months.
func principalPart(info domain.LoanInfo) (float64, error) {
	if info.RemainingDuration <= 0 {
		return 0, domain.ErrNoRemainingTerm
	}
	return info.Amount / float64(info.RemainingDuration), nil
}

func finite(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }

// repayment rounds the month's figures. Values that overflowed float64 while
// being computed are reported as ErrOverflow.
func repayment(info domain.LoanInfo, payment, remaining float64) (domain.MonthlyRepayment, error) {
	if !finite(payment) || !finite(remaining) {
		return domain.MonthlyRepayment{}, domain.ErrOverflow
	}
	return domain.MonthlyRepayment{
		LoanID:            info.LoanID,
		Payment:           round(payment),
		AmountRemaining:   round(remaining),
		RemainingDuration: info.RemainingDuration - 1,
	}, nil
}

func amortize(info domain.LoanInfo, variable bool) (domain.MonthlyRepayment, error) {
	part, err := principalPart(info)
	if err != nil {
		return domain.MonthlyRepayment{}, err
	}
	return repayment(info, monthlyInterest(info, variable)+part, info.Amount-part)
}

func interestOnly(info domain.LoanInfo, variable bool) (domain.MonthlyRepayment, error) {
	return repayment(info, monthlyInterest(info, variable), info.Amount)
}

// InterestOnly charges interest every month and the whole principal in the last one.
type InterestOnly struct {
	Variable bool
}

func (s InterestOnly) MonthlyRepayment(info domain.LoanInfo) (domain.MonthlyRepayment, error) {
	if info.RemainingDuration <= 1 {
		return repayment(info, monthlyInterest(info, s.Variable)+info.Amount, 0)
	}
	return interestOnly(info, s.Variable)
}

// Amortizing pays interest plus an equal share of the principal each month.
type Amortizing struct {
	Variable bool
}

func (s Amortizing) MonthlyRepayment(info domain.LoanInfo) (domain.MonthlyRepayment, error) {
	return amortize(info, s.Variable)
}

// IntroductoryOffer is a payment holiday for the first Months of the loan.
// Interest accrues onto the balance during the holiday.
type IntroductoryOffer struct {
	Months   int
	Variable bool
}

func (s IntroductoryOffer) MonthlyRepayment(info domain.LoanInfo) (domain.MonthlyRepayment, error) {
	if elapsed(info) < s.Months {
		return repayment(info, 0, info.Amount+monthlyInterest(info, s.Variable))
	}
	return amortize(info, s.Variable)
}

// IntroductoryInterestOnly charges interest only for the first Months, then amortizes.
type IntroductoryInterestOnly struct {
	Months int
}

func (s IntroductoryInterestOnly) MonthlyRepayment(info domain.LoanInfo) (domain.MonthlyRepayment, error) {
	if elapsed(info) < s.Months {
		return interestOnly(info, false)
	}
	return amortize(info, false)
}

// CreditScoreDiscount waives the month's interest for borrowers scoring at least MinScore.
type CreditScoreDiscount struct {
	MinScore int
	Variable bool
}

func (s CreditScoreDiscount) MonthlyRepayment(info domain.LoanInfo) (domain.MonthlyRepayment, error) {
	if info.CreditScore < s.MinScore {
		return amortize(info, s.Variable)
	}
	part, err := principalPart(info)
	if err != nil {
		return domain.MonthlyRepayment{}, err
	}
	return repayment(info, part, info.Amount-part)
}

// CreditScorePenalty doubles the month's interest for borrowers scoring below MaxScore.
type CreditScorePenalty struct {
	MaxScore int
}

func (s CreditScorePenalty) MonthlyRepayment(info domain.LoanInfo) (domain.MonthlyRepayment, error) {
	// Scores at or above MaxScore amortize normally; the balance drops by the principal share.
	if info.CreditScore >= s.MaxScore {
		return amortize(info, false)
	}
	part, err := principalPart(info)
	if err != nil {
		return domain.MonthlyRepayment{}, err
	}
	return repayment(info, 2*monthlyInterest(info, false)+part, info.Amount-part)
}

func elapsed(info domain.LoanInfo) int { return info.OriginalDuration - info.RemainingDuration }
