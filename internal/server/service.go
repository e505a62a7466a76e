// Package server exposes the screener over gRPC. It owns request
// validation, ownership checks, and the mapping between entities and
// wire messages; all real work happens in the packages it fronts.
package server

import (
	"context"
	"errors"

	"log/slog"

	"github.com/google/uuid"

	prorankv1 "github.com/RichieRish05/ProRankAI/gen/prorank/v1"
	"github.com/RichieRish05/ProRankAI/internal/common"
	"github.com/RichieRish05/ProRankAI/internal/entity"
	"github.com/RichieRish05/ProRankAI/internal/export"
	"github.com/RichieRish05/ProRankAI/internal/orchestrator"
	"github.com/RichieRish05/ProRankAI/internal/query"
)

type ScreenerService struct {
	prorankv1.UnimplementedScreenerServiceServer

	orch     *orchestrator.Orchestrator
	gateway  *query.Gateway
	exporter *export.Service
	logger   *slog.Logger
}

func NewScreenerService(
	orch *orchestrator.Orchestrator,
	gateway *query.Gateway,
	exporter *export.Service,
	logger *slog.Logger,
) *ScreenerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScreenerService{
		orch:     orch,
		gateway:  gateway,
		exporter: exporter,
		logger:   logger,
	}
}

// caller extracts the authenticated user stamped by the auth
// interceptor.
func caller(ctx context.Context) (uuid.UUID, error) {
	userID, ok := common.UserIDFromContext(ctx)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, common.UnauthenticatedError("no authenticated user")
	}
	return userID, nil
}

// ownedJob loads a job and verifies the caller owns it. Jobs belonging
// to other users are indistinguishable from missing ones only at the
// storage layer; here a mismatch is an explicit permission error.
func (s *ScreenerService) ownedJob(ctx context.Context, jobID uuid.UUID) (*entity.Job, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	job, err := s.gateway.GetJob(ctx, jobID)
	if err != nil {
		return nil, s.toStatus(err)
	}
	if job.UserID != userID {
		return nil, common.PermissionDeniedError("job belongs to another user")
	}
	return job, nil
}

func parseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s is not a valid id", field)
	}
	return id, nil
}

// toStatus maps domain errors onto gRPC status codes.
func (s *ScreenerService) toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return common.NotFoundError("not found")
	case errors.Is(err, common.ErrValidation):
		return common.InvalidArgumentError(err.Error())
	case errors.Is(err, common.ErrUnauthorized):
		return common.PermissionDeniedError("not allowed")
	default:
		s.logger.Error("internal error", "error", err)
		return common.InternalError("internal error")
	}
}

func filtersFromProto(f *prorankv1.TaskFilters) entity.FilterFlags {
	if f == nil {
		return entity.FilterFlags{}
	}
	return entity.FilterFlags{
		Freshman:  f.GetFreshman(),
		Sophomore: f.GetSophomore(),
		Junior:    f.GetJunior(),
		Senior:    f.GetSenior(),
		Passed:    f.GetPassed(),
		Failed:    f.GetFailed(),
	}
}
