package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/Munkh976/caremuch-sub000/internal/domain"
	orderRepo "github.com/Munkh976/caremuch-sub000/internal/infra/storage/order"
	"github.com/Munkh976/caremuch-sub000/internal/service/orders/models"
)

// Service сервис чтения и компенсации заказов
type Service struct {
	orderRepo OrderRepository
	shiftRepo ShiftRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса заказов
func NewService(
	orderRepo OrderRepository,
	shiftRepo ShiftRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		orderRepo: orderRepo,
		shiftRepo: shiftRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetByID получает заказ по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.OrderResponse, error) {
	s.logger.Info("GetByID: fetching order id=%d", id)

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("GetByID: order id=%d not found", id)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("GetByID: repository error for order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOrder(order), nil
}

// GetClientOrders получает заказы клиента, сначала новые
func (s *Service) GetClientOrders(ctx context.Context, clientID int64) (*models.OrderListResponse, error) {
	s.logger.Info("GetClientOrders: fetching orders for client=%d", clientID)

	if clientID <= 0 {
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	orders, err := s.orderRepo.GetByClientID(ctx, clientID)
	if err != nil {
		s.logger.Error("GetClientOrders: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetClientOrders - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientOrders: fetched %d orders for client=%d", len(orders), clientID)
	return models.FromDomainOrderList(orders), nil
}

// GetOrderShifts получает смены заказа по возрастанию даты
func (s *Service) GetOrderShifts(ctx context.Context, orderID int64) (*models.ShiftListResponse, error) {
	s.logger.Info("GetOrderShifts: fetching shifts for order=%d", orderID)

	// Проверяем существование заказа, чтобы отличить "нет смен" от "нет заказа"
	if _, err := s.orderRepo.GetByID(ctx, orderID); err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("GetOrderShifts: order id=%d not found", orderID)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("GetOrderShifts: repository error for order id=%d: %v", orderID, err)
		return nil, fmt.Errorf("%w: GetOrderShifts - repository error: %v", ErrInternal, err)
	}

	shifts, err := s.shiftRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		s.logger.Error("GetOrderShifts: repository error for order=%d: %v", orderID, err)
		return nil, fmt.Errorf("%w: GetOrderShifts - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOrderShifts: fetched %d shifts for order=%d", len(shifts), orderID)
	return models.FromDomainShiftList(shifts), nil
}

// GetCaregiverShifts получает смены сиделки за период
func (s *Service) GetCaregiverShifts(ctx context.Context, caregiverID int64, filter domain.ShiftRangeFilter) (*models.ShiftListResponse, error) {
	s.logger.Info("GetCaregiverShifts: fetching shifts for caregiver=%d", caregiverID)

	if caregiverID <= 0 {
		return nil, fmt.Errorf("%w: caregiverID must be positive", ErrInvalidInput)
	}

	shifts, err := s.shiftRepo.GetByCaregiverAndDateRange(ctx, caregiverID, filter)
	if err != nil {
		s.logger.Error("GetCaregiverShifts: repository error for caregiver=%d: %v", caregiverID, err)
		return nil, fmt.Errorf("%w: GetCaregiverShifts - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCaregiverShifts: fetched %d shifts for caregiver=%d", len(shifts), caregiverID)
	return models.FromDomainShiftList(shifts), nil
}

// Delete удаляет заказ вместе со сменами в одной транзакции.
// Компенсационный путь после частично неудавшейся материализации; разрешён
// только для заказов, ещё не вошедших в агентский workflow (submitted).
func (s *Service) Delete(ctx context.Context, orderID int64) error {
	s.logger.Info("Delete: deleting order id=%d", orderID)

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("Delete: order id=%d not found", orderID)
			return ErrOrderNotFound
		}
		s.logger.Error("Delete: repository error for order id=%d: %v", orderID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !order.IsSubmitted() {
		s.logger.Warn("Delete: order id=%d has status=%s, cannot delete", orderID, order.Status)
		return ErrOrderNotDeletable
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.shiftRepo.DeleteByOrderID(txCtx, orderID); err != nil {
			return fmt.Errorf("%w: Delete - delete shifts: %v", ErrInternal, err)
		}
		if err := s.orderRepo.Delete(txCtx, orderID); err != nil {
			if errors.Is(err, orderRepo.ErrOrderNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("%w: Delete - delete order: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Delete: deleted order id=%d with its shifts", orderID)
	return nil
}
