package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Munkh976/caremuch-sub000/internal/domain"
	orderRepo "github.com/Munkh976/caremuch-sub000/internal/infra/storage/order"
)

type fakeOrderRepo struct {
	order     *domain.CareOrder
	getErr    error
	list      []*domain.CareOrder
	listErr   error
	deleteErr error
	deleted   []int64
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id int64) (*domain.CareOrder, error) {
	return f.order, f.getErr
}

func (f *fakeOrderRepo) GetByOrderNumber(ctx context.Context, orderNumber string) (*domain.CareOrder, error) {
	return f.order, f.getErr
}

func (f *fakeOrderRepo) GetByClientID(ctx context.Context, clientID int64) ([]*domain.CareOrder, error) {
	return f.list, f.listErr
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeShiftRepo struct {
	shifts       []*domain.CareShift
	getErr       error
	deleteErr    error
	deletedOrder []int64
}

func (f *fakeShiftRepo) GetByOrderID(ctx context.Context, orderID int64) ([]*domain.CareShift, error) {
	return f.shifts, f.getErr
}

func (f *fakeShiftRepo) GetByCaregiverAndDateRange(ctx context.Context, caregiverID int64, filter domain.ShiftRangeFilter) ([]*domain.CareShift, error) {
	return f.shifts, f.getErr
}

func (f *fakeShiftRepo) DeleteByOrderID(ctx context.Context, orderID int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedOrder = append(f.deletedOrder, orderID)
	return nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testOrder(status domain.OrderStatus) *domain.CareOrder {
	return &domain.CareOrder{
		ID:          42,
		OrderNumber: "ORD-20260901-090000-TESTTEST",
		ClientID:    1,
		AgencyID:    10,
		CaregiverID: 5,
		StartDate:   time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC),
		Cadence:     domain.CadenceWeekly,
		Status:      status,
	}
}

func newTestService(orders *fakeOrderRepo, shifts *fakeShiftRepo) *Service {
	return NewService(orders, shifts, &fakeTxManager{}, nopLogger{})
}

func TestGetByID(t *testing.T) {
	svc := newTestService(&fakeOrderRepo{order: testOrder(domain.OrderStatusSubmitted)}, &fakeShiftRepo{})

	got, err := svc.GetByID(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, "ORD-20260901-090000-TESTTEST", got.OrderNumber)
	assert.Equal(t, "weekly", got.Cadence)
	assert.Equal(t, "submitted", got.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(&fakeOrderRepo{getErr: orderRepo.ErrOrderNotFound}, &fakeShiftRepo{})

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetClientOrders(t *testing.T) {
	svc := newTestService(&fakeOrderRepo{
		list: []*domain.CareOrder{testOrder(domain.OrderStatusSubmitted), testOrder(domain.OrderStatusActive)},
	}, &fakeShiftRepo{})

	got, err := svc.GetClientOrders(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Total)
	assert.Len(t, got.Orders, 2)
}

func TestGetClientOrders_InvalidClient(t *testing.T) {
	svc := newTestService(&fakeOrderRepo{}, &fakeShiftRepo{})

	_, err := svc.GetClientOrders(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetOrderShifts(t *testing.T) {
	orderID := int64(42)
	shifts := &fakeShiftRepo{shifts: []*domain.CareShift{
		{ID: 1, OrderID: &orderID, ClientID: 1, CaregiverID: 5, StartTime: "09:00", EndTime: "13:00", DurationHours: 4, ServiceCode: "PC04", Status: domain.ShiftStatusOpen},
	}}
	svc := newTestService(&fakeOrderRepo{order: testOrder(domain.OrderStatusSubmitted)}, shifts)

	got, err := svc.GetOrderShifts(context.Background(), 42)
	require.NoError(t, err)
	require.Equal(t, 1, got.Total)
	assert.Equal(t, "09:00", got.Shifts[0].StartTime)
	assert.Equal(t, "open", got.Shifts[0].Status)
}

func TestGetOrderShifts_OrderNotFound(t *testing.T) {
	// "нет заказа" отличается от "нет смен"
	svc := newTestService(&fakeOrderRepo{getErr: orderRepo.ErrOrderNotFound}, &fakeShiftRepo{})

	_, err := svc.GetOrderShifts(context.Background(), 42)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetCaregiverShifts_InvalidCaregiver(t *testing.T) {
	svc := newTestService(&fakeOrderRepo{}, &fakeShiftRepo{})

	_, err := svc.GetCaregiverShifts(context.Background(), -1, domain.ShiftRangeFilter{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_SubmittedOrder(t *testing.T) {
	orders := &fakeOrderRepo{order: testOrder(domain.OrderStatusSubmitted)}
	shifts := &fakeShiftRepo{}
	svc := newTestService(orders, shifts)

	err := svc.Delete(context.Background(), 42)
	require.NoError(t, err)

	// Сначала удаляются смены, затем заказ
	assert.Equal(t, []int64{42}, shifts.deletedOrder)
	assert.Equal(t, []int64{42}, orders.deleted)
}

func TestDelete_ActiveOrderRefused(t *testing.T) {
	orders := &fakeOrderRepo{order: testOrder(domain.OrderStatusActive)}
	shifts := &fakeShiftRepo{}
	svc := newTestService(orders, shifts)

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrOrderNotDeletable)
	assert.Empty(t, shifts.deletedOrder)
	assert.Empty(t, orders.deleted)
}

func TestDelete_NotFound(t *testing.T) {
	svc := newTestService(&fakeOrderRepo{getErr: orderRepo.ErrOrderNotFound}, &fakeShiftRepo{})

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestDelete_ShiftDeleteFailure(t *testing.T) {
	orders := &fakeOrderRepo{order: testOrder(domain.OrderStatusSubmitted)}
	shifts := &fakeShiftRepo{deleteErr: errors.New("connection reset")}
	svc := newTestService(orders, shifts)

	err := svc.Delete(context.Background(), 42)
	require.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, orders.deleted)
}
