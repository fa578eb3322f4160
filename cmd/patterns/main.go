package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"lending-patterns/internal/adapter/cli"
	"lending-patterns/internal/config"
	"lending-patterns/internal/infrastructure/logging"
	ucRegistration "lending-patterns/internal/usecase/registration"
	ucRepayment "lending-patterns/internal/usecase/repayment"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	root := cli.RootCmd(cli.Deps{
		Registration: ucRegistration.NewUsecase(nil, log),
		Repayment:    ucRepayment.NewUsecase(log, cfg.DefaultStrategy, cfg.ScheduleMaxMonths),
	})
	if err := root.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, cli.ErrValidationFailed) {
			log.WithError(err).Error("command failed")
		}
		os.Exit(1)
	}
}
