package match_caregivers

import (
	"context"

	matchCaregivers "github.com/Munkh976/caremuch-sub000/internal/usecase/match_caregivers"
)

type MatchCaregiversUseCase interface {
	Execute(ctx context.Context, req *matchCaregivers.Request) (*matchCaregivers.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
