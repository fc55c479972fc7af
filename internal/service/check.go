package service

import (
	"context"
	"fmt"

	"check_hddtemp/internal/logger"
	"check_hddtemp/internal/models"
	"check_hddtemp/internal/repository"

	"github.com/google/uuid"
)

// CheckParams is the part of the configuration the pipeline consumes.
type CheckParams struct {
	Devices     []string
	Separator   string
	Thresholds  models.Thresholds
	Performance bool
}

// Report is the outcome of a completed check.
type Report struct {
	CheckID  string
	Output   string
	ExitCode int
	Overall  models.Severity
	Devices  []models.DeviceState // rendering order
}

type CheckService struct {
	responseRepo repository.ResponseRepo
	params       CheckParams
	log          *logger.Logger
}

func NewCheckService(responseRepo repository.ResponseRepo, params CheckParams, log *logger.Logger) *CheckService {
	if log == nil {
		log = logger.Nop()
	}
	return &CheckService{responseRepo: responseRepo, params: params, log: log}
}

// Check fetches the daemon response and runs it through parsing,
// classification, reduction and rendering. Any error aborts the check;
// no partial report is produced.
func (s *CheckService) Check(ctx context.Context) (Report, error) {
	checkID := uuid.NewString()
	log := s.log.With("check_id", checkID)

	response, err := s.responseRepo.Fetch(ctx)
	if err != nil {
		log.Errorw("fetch failed", "err", err)
		return Report{}, err
	}
	log.Debugw("response received", "bytes", len(response))

	records, err := ParseResponse(response, s.params.Separator)
	if err != nil {
		log.Errorw("parse failed", "err", err)
		return Report{}, err
	}
	log.Debugw("response parsed", "devices", len(records))

	states := Classify(records, s.params.Devices, s.params.Thresholds)
	for id, st := range states {
		log.Debugw("device classified", "device", id, "severity", st.Severity.String(), "temperature", st.Render.Temperature.PerfValue())
	}

	overall, err := OverallSeverity(states)
	if err != nil {
		log.Errorw("nothing to report", "err", err)
		return Report{}, fmt.Errorf("classify: %w", err)
	}

	output, code := Render(states, overall, s.params.Performance)
	log.Infow("check finished", "status", overall.String(), "exit_code", code)

	return Report{
		CheckID:  checkID,
		Output:   output,
		ExitCode: code,
		Overall:  overall,
		Devices:  SortStates(states),
	}, nil
}
