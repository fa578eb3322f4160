package id

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NewLoanID returns a random v4 UUID as 32 lowercase hex characters (no dashes).
func NewLoanID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}
