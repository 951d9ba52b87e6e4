package create_care_order

import (
	"context"

	createCareOrder "github.com/Munkh976/caremuch-sub000/internal/usecase/create_care_order"
)

type CreateCareOrderUseCase interface {
	Execute(ctx context.Context, req *createCareOrder.Request) (*createCareOrder.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
