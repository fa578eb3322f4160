package repayment

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	domain "lending-patterns/internal/domain/repayment"
	"lending-patterns/internal/repayment"
	"lending-patterns/pkg/id"
)

type Usecase struct {
	log             *logrus.Logger
	defaultStrategy string
	maxMonths       int
}

// NewUsecase resolves requests without a strategy or kind to defaultStrategy,
// and caps schedules at maxMonths rows.
func NewUsecase(log *logrus.Logger, defaultStrategy string, maxMonths int) *Usecase {
	if defaultStrategy == "" {
		defaultStrategy = repayment.NameDefault
	}
	return &Usecase{log: log, defaultStrategy: defaultStrategy, maxMonths: maxMonths}
}

// Next computes the coming month's repayment.
func (u *Usecase) Next(ctx context.Context, in LoanInput) (*RepaymentDTO, error) {
	name, calc, err := u.calculator(in)
	if err != nil {
		return nil, err
	}
	info := toLoanInfo(in)

	r, err := calc.MonthlyRepayment(info)
	if err != nil {
		u.log.WithContext(ctx).WithError(err).WithField("loan_id", info.LoanID).Warn("repayment rejected")
		return nil, err
	}

	u.log.WithContext(ctx).WithFields(logrus.Fields{
		"loan_id":  r.LoanID,
		"strategy": name,
		"payment":  r.Payment,
	}).Info("monthly repayment computed")

	dto := toDTO(name, r)
	return &dto, nil
}

// Schedule runs the strategy until the loan is closed or the month cap is hit.
func (u *Usecase) Schedule(ctx context.Context, in LoanInput) (*ScheduleDTO, error) {
	name, calc, err := u.calculator(in)
	if err != nil {
		return nil, err
	}
	info := toLoanInfo(in)

	rows, err := calc.Schedule(info, u.maxMonths)
	if err != nil {
		u.log.WithContext(ctx).WithError(err).WithField("loan_id", info.LoanID).Warn("schedule aborted")
		return nil, err
	}

	out := &ScheduleDTO{LoanID: info.LoanID, Strategy: name, Months: make([]RepaymentDTO, 0, len(rows))}
	total := decimal.Zero
	for _, r := range rows {
		out.Months = append(out.Months, toDTO(name, r))
		total = total.Add(decimal.NewFromFloat(r.Payment))
	}
	out.TotalPaid = total.InexactFloat64()

	u.log.WithContext(ctx).WithFields(logrus.Fields{
		"loan_id":    info.LoanID,
		"strategy":   name,
		"months":     len(rows),
		"total_paid": out.TotalPaid,
	}).Info("repayment schedule computed")
	return out, nil
}

// calculator picks the explicit strategy, else the loan kind's, else the default.
func (u *Usecase) calculator(in LoanInput) (string, *repayment.Calculator, error) {
	name := in.Strategy
	if name == "" {
		var ok bool
		if name, ok = repayment.NameForKind(domain.LoanKind(in.Kind)); !ok {
			name = u.defaultStrategy
		}
	}
	s, err := repayment.Lookup(name)
	if err != nil {
		return "", nil, err
	}
	return name, repayment.NewCalculator(s), nil
}

func toLoanInfo(in LoanInput) domain.LoanInfo {
	loanID := in.LoanID
	if loanID == "" {
		loanID = id.NewLoanID()
	}
	return domain.LoanInfo{
		LoanID:            loanID,
		Kind:              domain.LoanKind(in.Kind),
		OriginalDuration:  in.OriginalDuration,
		RemainingDuration: in.RemainingDuration,
		Interest:          in.Interest,
		Amount:            in.Amount,
		CreditScore:       in.CreditScore,
		ReferenceRate:     in.ReferenceRate,
	}
}

func toDTO(strategy string, r domain.MonthlyRepayment) RepaymentDTO {
	return RepaymentDTO{
		LoanID:            r.LoanID,
		Strategy:          strategy,
		Payment:           r.Payment,
		AmountRemaining:   r.AmountRemaining,
		RemainingDuration: r.RemainingDuration,
	}
}
