package repayment

import (
	"fmt"
	"maps"
	"slices"

	domain "lending-patterns/internal/domain/repayment"
)

const (
	NameDefault                      = "default"
	NameInterestOnly                 = "interest_only"
	NameInterestOnlyVariable         = "interest_only_variable"
	NameInterestAndRepayment         = "interest_and_repayment"
	NameInterestAndRepaymentVariable = "interest_and_repayment_variable"
	NameIntroOffer3                  = "intro_offer_3"
	NameIntroOffer12                 = "intro_offer_12"
	NameIntroInterestOnly6           = "intro_interest_only_6"
	NameIntroInterestOnly9           = "intro_interest_only_9"
	NameGoodCredit                   = "good_credit"
	NameVeryGoodCredit               = "very_good_credit"
	NameBadCredit                    = "bad_credit"
	NameVeryBadCredit                = "very_bad_credit"
)

var registry = map[string]domain.Strategy{
	NameDefault:                      Amortizing{},
	NameInterestOnly:                 InterestOnly{},
	NameInterestOnlyVariable:         InterestOnly{Variable: true},
	NameInterestAndRepayment:         Amortizing{},
	NameInterestAndRepaymentVariable: Amortizing{Variable: true},
	NameIntroOffer3:                  IntroductoryOffer{Months: 3},
	NameIntroOffer12:                 IntroductoryOffer{Months: 12, Variable: true},
	NameIntroInterestOnly6:           IntroductoryInterestOnly{Months: 6},
	NameIntroInterestOnly9:           IntroductoryInterestOnly{Months: 9},
	NameGoodCredit:                   CreditScoreDiscount{MinScore: 700},
	NameVeryGoodCredit:               CreditScoreDiscount{MinScore: 850, Variable: true},
	NameBadCredit:                    CreditScorePenalty{MaxScore: 650},
	NameVeryBadCredit:                CreditScorePenalty{MaxScore: 500},
}

// Lookup returns the strategy registered under name.
func Lookup(name string) (domain.Strategy, error) {
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStrategy, name)
	}
	return s, nil
}

// Names lists the registered strategy names in lexical order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// NameForKind returns the strategy name that matches a loan kind. ok is false
// for kinds without a dedicated formula.
func NameForKind(kind domain.LoanKind) (name string, ok bool) {
	switch kind {
	case domain.KindInterestOnly:
		return NameInterestOnly, true
	case domain.KindInterestOnlyVariable:
		return NameInterestOnlyVariable, true
	case domain.KindInterestAndRepayment:
		return NameInterestAndRepayment, true
	case domain.KindInterestAndRepaymentVariable:
		return NameInterestAndRepaymentVariable, true
	default:
		return "", false
	}
}

func ForKind(kind domain.LoanKind) (domain.Strategy, bool) {
	name, ok := NameForKind(kind)
	if !ok {
		return nil, false
	}
	return registry[name], true
}
