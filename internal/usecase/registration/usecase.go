package registration

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	domain "lending-patterns/internal/domain/registration"
	"lending-patterns/internal/validation"
)

var ErrNoUserData = errors.New("no user data supplied")

type Usecase struct {
	validator validation.Validator
	log       *logrus.Logger
}

// NewUsecase uses the standard registration rules when v is nil.
func NewUsecase(v validation.Validator, log *logrus.Logger) *Usecase {
	if v == nil {
		v = NewUserDataValidator()
	}
	return &Usecase{validator: v, log: log}
}

func (u *Usecase) Validate(ctx context.Context, data domain.UserData) (*ResultDTO, error) {
	if data == nil {
		return nil, ErrNoUserData
	}

	res := u.validator.Validate(data)
	entry := u.log.WithContext(ctx).WithFields(logrus.Fields{
		"fields": len(data),
		"valid":  res.Valid,
	})
	if res.Valid {
		entry.Info("registration data accepted")
	} else {
		entry.WithField("errors", len(res.Errors)).Info("registration data rejected")
	}

	return &ResultDTO{Valid: res.Valid, Errors: res.Errors}, nil
}
