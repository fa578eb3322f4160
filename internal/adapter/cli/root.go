package cli

import (
	"errors"

	"github.com/spf13/cobra"

	ucRegistration "lending-patterns/internal/usecase/registration"
	ucRepayment "lending-patterns/internal/usecase/repayment"
)

// ErrValidationFailed is returned after a rejected record has been printed,
// so main can exit non-zero without printing it again.
var ErrValidationFailed = errors.New("validation failed")

type Deps struct {
	Registration *ucRegistration.Usecase
	Repayment    *ucRepayment.Usecase
}

func RootCmd(d Deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "patterns",
		Short:         "Registration validation and loan repayment calculators",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		ValidateCmd(d.Registration),
		RepayCmd(d.Repayment),
		StrategiesCmd(),
	)

	return root
}
