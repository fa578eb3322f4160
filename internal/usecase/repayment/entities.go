package repayment

type LoanInput struct {
	LoanID            string  `json:"loan_id"`
	Kind              string  `json:"loan_kind"`
	Strategy          string  `json:"strategy"`
	OriginalDuration  int     `json:"original_duration"`
	RemainingDuration int     `json:"remaining_duration"`
	Interest          float64 `json:"interest"`
	Amount            float64 `json:"amount"`
	CreditScore       int     `json:"current_credit_score"`
	ReferenceRate     float64 `json:"reference_rate"`
}

type RepaymentDTO struct {
	LoanID            string  `json:"loan_id"`
	Strategy          string  `json:"strategy"`
	Payment           float64 `json:"payment"`
	AmountRemaining   float64 `json:"amount_remaining"`
	RemainingDuration int     `json:"remaining_duration"`
}

type ScheduleDTO struct {
	LoanID    string         `json:"loan_id"`
	Strategy  string         `json:"strategy"`
	Months    []RepaymentDTO `json:"months"`
	TotalPaid float64        `json:"total_paid"`
}
