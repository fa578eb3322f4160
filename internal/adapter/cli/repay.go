package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	ucRepayment "lending-patterns/internal/usecase/repayment"
)

func RepayCmd(uc *ucRepayment.Usecase) *cobra.Command {
	var (
		in       ucRepayment.LoanInput
		schedule bool
	)
	cmd := &cobra.Command{
		Use:   "repay",
		Short: "Compute the next monthly repayment of a loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("remaining") {
				in.RemainingDuration = in.OriginalDuration
			}
			out := cmd.OutOrStdout()

			if schedule {
				dto, err := uc.Schedule(cmd.Context(), in)
				if err != nil {
					return err
				}
				return printSchedule(out, dto)
			}

			dto, err := uc.Next(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Loan Id: %s\n", dto.LoanID)
			fmt.Fprintf(out, "Strategy: %s\n", dto.Strategy)
			fmt.Fprintf(out, "Payment: %.4f\n", dto.Payment)
			fmt.Fprintf(out, "Amount remaining: %.4f\n", dto.AmountRemaining)
			fmt.Fprintf(out, "Remaining duration: %d\n", dto.RemainingDuration)
			return nil
		},
	}
	bindLoanFlags(cmd.Flags(), &in)
	cmd.Flags().BoolVar(&schedule, "schedule", false, "print every month until the loan is closed")
	return cmd
}

func bindLoanFlags(fs *pflag.FlagSet, in *ucRepayment.LoanInput) {
	fs.StringVar(&in.LoanID, "loan-id", "", "loan identifier (generated when empty)")
	fs.StringVar(&in.Kind, "kind", "", "loan kind, used to pick a strategy when --strategy is empty")
	fs.StringVar(&in.Strategy, "strategy", "", "repayment strategy name (see: patterns strategies)")
	fs.IntVar(&in.OriginalDuration, "original", 0, "original duration in months")
	fs.IntVar(&in.RemainingDuration, "remaining", 0, "remaining duration in months (defaults to --original)")
	fs.Float64Var(&in.Interest, "interest", 0, "annual interest rate in percent")
	fs.Float64Var(&in.Amount, "amount", 0, "outstanding amount")
	fs.IntVar(&in.CreditScore, "score", 0, "current credit score")
	fs.Float64Var(&in.ReferenceRate, "reference-rate", 0, "annual reference rate in percent, added by variable strategies")
}

func printSchedule(out io.Writer, dto *ucRepayment.ScheduleDTO) error {
	fmt.Fprintf(out, "Loan Id: %s\n", dto.LoanID)
	fmt.Fprintf(out, "Strategy: %s\n", dto.Strategy)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Month\tPayment\tAmount remaining\tRemaining duration\t")
	for i, m := range dto.Months {
		fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%d\t\n", i+1, m.Payment, m.AmountRemaining, m.RemainingDuration)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Total paid: %.4f\n", dto.TotalPaid)
	return nil
}
