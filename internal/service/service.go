package service

import (
	"context"

	"check_hddtemp/internal/logger"
	"check_hddtemp/internal/repository"
)

// Checker runs one temperature check against the daemon.
type Checker interface {
	Check(ctx context.Context) (Report, error)
}

// Service aggregates the sub-services used by the command.
type Service struct {
	Checker
}

// NewService wires the repository layer into the check pipeline.
func NewService(repos *repository.Repository, params CheckParams, log *logger.Logger) *Service {
	return &Service{
		Checker: NewCheckService(repos.Response, params, log),
	}
}
