package repayment

import (
	"errors"
	"math"
	"strings"
	"testing"

	domain "lending-patterns/internal/domain/repayment"
	"lending-patterns/internal/testutil/strategymock"
)

func TestNewCalculator_DefaultsToAmortizing(t *testing.T) {
	c := NewCalculator(nil)
	if _, ok := c.Strategy().(Amortizing); !ok {
		t.Fatalf("default strategy = %T, want Amortizing", c.Strategy())
	}
	got, err := c.MonthlyRepayment(exampleLoan())
	if err != nil {
		t.Fatalf("MonthlyRepayment: %v", err)
	}
	if got.Payment != 319.4444 {
		t.Fatalf("Payment = %v, want 319.4444", got.Payment)
	}
}

func TestCalculator_DelegatesToStrategy(t *testing.T) {
	want := domain.MonthlyRepayment{LoanID: "123-456", Payment: 1, AmountRemaining: 2, RemainingDuration: 35}
	m := &strategymock.Strategy{
		MonthlyRepaymentFn: func(info domain.LoanInfo) (domain.MonthlyRepayment, error) { return want, nil },
	}
	got, err := NewCalculator(m).MonthlyRepayment(exampleLoan())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if len(m.Seen) != 1 || m.Seen[0] != exampleLoan() {
		t.Fatalf("strategy saw %+v", m.Seen)
	}
}

func TestCalculator_RejectsInvalidLoan(t *testing.T) {
	bad := []domain.LoanInfo{
		withRemaining(0),
		withRemaining(37),
		func() domain.LoanInfo { l := exampleLoan(); l.Amount = -1; return l }(),
		func() domain.LoanInfo { l := exampleLoan(); l.Interest = -0.5; return l }(),
		func() domain.LoanInfo { l := exampleLoan(); l.CreditScore = -10; return l }(),
		func() domain.LoanInfo { l := exampleLoan(); l.Amount = math.Inf(1); return l }(),
		func() domain.LoanInfo { l := exampleLoan(); l.Interest = math.NaN(); return l }(),
		func() domain.LoanInfo { l := exampleLoan(); l.ReferenceRate = math.Inf(-1); return l }(),
	}
	for _, info := range bad {
		m := &strategymock.Strategy{}
		_, err := NewCalculator(m).MonthlyRepayment(info)
		if !errors.Is(err, domain.ErrInvalidLoan) {
			t.Fatalf("%+v: want ErrInvalidLoan, got %v", info, err)
		}
		if len(m.Seen) != 0 {
			t.Fatalf("strategy must not run for invalid loan %+v", info)
		}
	}
}

func TestCalculator_OverflowIsAnError(t *testing.T) {
	info := exampleLoan()
	info.Amount = 1e308
	info.CreditScore = 0
	for _, name := range []string{NameDefault, NameInterestOnly, NameIntroOffer3, NameBadCredit} {
		s, _ := Lookup(name)
		_, err := NewCalculator(s).MonthlyRepayment(info)
		if !errors.Is(err, domain.ErrOverflow) {
			t.Fatalf("%s: want ErrOverflow, got %v", name, err)
		}
	}
	if _, err := NewCalculator(nil).Schedule(info, 3); !errors.Is(err, domain.ErrOverflow) {
		t.Fatalf("Schedule: want ErrOverflow, got %v", err)
	}
}

func TestSchedule_Amortizing(t *testing.T) {
	info := domain.LoanInfo{LoanID: "L", OriginalDuration: 4, RemainingDuration: 4, Interest: 12, Amount: 10000}
	rows, err := NewCalculator(Amortizing{}).Schedule(info, 0)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	wantPay := []float64{2600, 2575, 2550, 2525}
	wantLeft := []float64{7500, 5000, 2500, 0}
	if len(rows) != len(wantPay) {
		t.Fatalf("rows = %d, want %d", len(rows), len(wantPay))
	}
	for i, r := range rows {
		if r.Payment != wantPay[i] || r.AmountRemaining != wantLeft[i] || r.RemainingDuration != 3-i {
			t.Fatalf("row %d = %+v", i, r)
		}
	}
}

func TestSchedule_InterestOnlyBalloon(t *testing.T) {
	info := domain.LoanInfo{LoanID: "L", OriginalDuration: 3, RemainingDuration: 3, Interest: 10, Amount: 1200}
	rows, err := NewCalculator(InterestOnly{}).Schedule(info, 0)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if len(rows) != 3 || rows[0].Payment != 10 || rows[1].Payment != 10 || rows[2].Payment != 1210 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if rows[2].AmountRemaining != 0 || rows[2].RemainingDuration != 0 {
		t.Fatalf("loan not closed: %+v", rows[2])
	}
}

func TestSchedule_Capped(t *testing.T) {
	rows, err := NewCalculator(nil).Schedule(exampleLoan(), 2)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if len(rows) != 2 || rows[1].RemainingDuration != 34 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if rows[1].Payment >= rows[0].Payment {
		t.Fatalf("interest should shrink with the balance: %+v", rows)
	}
}

func TestSchedule_PropagatesStrategyError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	m := &strategymock.Strategy{
		MonthlyRepaymentFn: func(info domain.LoanInfo) (domain.MonthlyRepayment, error) {
			calls++
			if calls == 2 {
				return domain.MonthlyRepayment{}, boom
			}
			return domain.MonthlyRepayment{LoanID: info.LoanID, AmountRemaining: info.Amount, RemainingDuration: info.RemainingDuration - 1}, nil
		},
	}
	rows, err := NewCalculator(m).Schedule(exampleLoan(), 0)
	if !errors.Is(err, boom) || !strings.Contains(err.Error(), "month 2") {
		t.Fatalf("want wrapped boom at month 2, got %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows before failure = %d, want 1", len(rows))
	}
}

func TestSchedule_InvalidLoan(t *testing.T) {
	if _, err := NewCalculator(nil).Schedule(withRemaining(0), 0); !errors.Is(err, domain.ErrInvalidLoan) {
		t.Fatalf("want ErrInvalidLoan, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	names := Names()
	if len(names) != 13 {
		t.Fatalf("Names() = %d entries, want 13", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
	if _, err := Lookup("balloon"); !errors.Is(err, domain.ErrUnknownStrategy) {
		t.Fatalf("want ErrUnknownStrategy, got %v", err)
	}
}

func TestForKind(t *testing.T) {
	cases := map[domain.LoanKind]string{
		domain.KindInterestOnly:                 NameInterestOnly,
		domain.KindInterestOnlyVariable:         NameInterestOnlyVariable,
		domain.KindInterestAndRepayment:         NameInterestAndRepayment,
		domain.KindInterestAndRepaymentVariable: NameInterestAndRepaymentVariable,
	}
	for kind, want := range cases {
		if got, ok := NameForKind(kind); !ok || got != want {
			t.Fatalf("NameForKind(%q) = %q, %v; want %q", kind, got, ok, want)
		}
	}
	for _, kind := range []domain.LoanKind{"mystery", ""} {
		if got, ok := NameForKind(kind); ok {
			t.Fatalf("NameForKind(%q) = %q, want no match", kind, got)
		}
		if _, ok := ForKind(kind); ok {
			t.Fatalf("ForKind(%q) should not match", kind)
		}
	}
	if s, ok := ForKind(domain.KindInterestOnly); !ok {
		t.Fatal("ForKind(interest_only) not found")
	} else if _, isIO := s.(InterestOnly); !isIO {
		t.Fatalf("ForKind(interest_only) = %T, want InterestOnly", s)
	}
}
