package create_care_order

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Munkh976/caremuch-sub000/internal/domain"
	shiftRepo "github.com/Munkh976/caremuch-sub000/internal/infra/storage/shift"
	directoryClient "github.com/Munkh976/caremuch-sub000/internal/integrations/directory"
	"github.com/Munkh976/caremuch-sub000/internal/scheduling"
	"github.com/Munkh976/caremuch-sub000/pkg/ptr"
)

type fakeOrderRepo struct {
	nextID    int64
	createErr error
	created   *domain.CareOrder
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *domain.CareOrder) (*domain.CareOrder, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	order.ID = f.nextID
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	f.created = order
	return order, nil
}

type fakeShiftRepo struct {
	batchErr error
	shifts   []*domain.CareShift
}

func (f *fakeShiftRepo) BatchCreate(ctx context.Context, shifts []*domain.CareShift) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	f.shifts = shifts
	return nil
}

type fakeDirectory struct {
	client       *directoryClient.ClientProfile
	clientErr    error
	caregiver    *directoryClient.Caregiver
	caregiverErr error
	services     []directoryClient.CareService
	servicesErr  error
}

func (f *fakeDirectory) GetClient(ctx context.Context, clientID int64) (*directoryClient.ClientProfile, error) {
	return f.client, f.clientErr
}

func (f *fakeDirectory) GetCaregiver(ctx context.Context, caregiverID int64) (*directoryClient.Caregiver, error) {
	return f.caregiver, f.caregiverErr
}

func (f *fakeDirectory) GetActiveCareServices(ctx context.Context, agencyID int64) ([]directoryClient.CareService, error) {
	return f.services, f.servicesErr
}

type fakeOrderNum struct{}

func (f *fakeOrderNum) Generate() string { return "ORD-20260901-090000-TESTTEST" }

// fakeTxManager исполняет функцию напрямую, без транзакции:
// побочные эффекты видны даже при ошибке внутри
type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testDirectory() *fakeDirectory {
	return &fakeDirectory{
		client: &directoryClient.ClientProfile{
			ID:       1,
			AgencyID: 10,
			FullName: "Maria Ivanova",
			ZipCode:  "10001",
			IsActive: true,
		},
		caregiver: &directoryClient.Caregiver{
			ID:              5,
			AgencyID:        10,
			FullName:        "Anna Petrova",
			ServiceZipcodes: []string{"10001", "10002"},
			Availability: []directoryClient.AvailabilityWindow{
				{CaregiverID: 5, DayOfWeek: 2, StartTime: "08:00", EndTime: "18:00", IsAvailable: true},
				{CaregiverID: 5, DayOfWeek: 5, StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
			},
			PerformanceRating: 4.8,
			HourlyRate:        30,
			IsActive:          true,
		},
		services: []directoryClient.CareService{
			{Code: "PC04", Name: "Personal Care", Category: "care", DurationHours: 4, Price: 30, IsActive: true},
			{Code: "SN04", Name: "Skilled Nursing", Category: "nursing", DurationHours: 4, Price: 40, IsActive: true},
		},
	}
}

// 2026-09-01 - вторник (day 2)
func testRequest() *Request {
	return &Request{
		ClientID:           1,
		CaregiverID:        5,
		PrimaryServiceCode: "PC04",
		DayOfWeek:          2,
		Cadence:            domain.CadenceWeekly,
		SlotTime:           "9:00",
		SlotPeriod:         scheduling.PeriodAM,
		StartDate:          time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newTestUseCase(orders *fakeOrderRepo, shifts *fakeShiftRepo, dir *fakeDirectory) *UseCase {
	return NewUseCase(orders, shifts, dir, &fakeOrderNum{}, &fakeTxManager{}, nopLogger{})
}

func TestExecute_WeeklyOrder(t *testing.T) {
	orders := &fakeOrderRepo{nextID: 42}
	shifts := &fakeShiftRepo{}
	uc := newTestUseCase(orders, shifts, testDirectory())

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.OrderID)
	assert.Equal(t, "ORD-20260901-090000-TESTTEST", resp.OrderNumber)
	assert.Equal(t, int64(1), resp.ClientID)
	assert.Equal(t, int64(10), resp.AgencyID)
	assert.Equal(t, int64(5), resp.CaregiverID)
	assert.Equal(t, string(domain.OrderStatusSubmitted), resp.Status)
	assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), resp.StartDate)
	assert.Equal(t, time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC), resp.EndDate)

	assert.Equal(t, 4, resp.DurationHours)
	assert.Equal(t, 30.0, resp.HourlyRate)
	assert.Equal(t, 120.0, resp.VisitCost)

	// Еженедельная серия на 3 месяца: 14 вторников
	require.Len(t, resp.Shifts, 14)
	require.Len(t, shifts.shifts, 14)

	first := shifts.shifts[0]
	assert.Equal(t, int64(42), *first.OrderID)
	assert.Equal(t, "09:00", first.StartTime.String())
	assert.Equal(t, "13:00", first.EndTime.String())
	assert.Equal(t, "PC04", first.ServiceCode)
	assert.Equal(t, domain.ShiftStatusOpen, first.Status)
	assert.Nil(t, first.Note)
}

func TestExecute_WithAdditionalService(t *testing.T) {
	orders := &fakeOrderRepo{nextID: 42}
	shifts := &fakeShiftRepo{}
	uc := newTestUseCase(orders, shifts, testDirectory())

	req := testRequest()
	req.AdditionalServiceCode = ptr.Ptr("SN04")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Длительности складываются, ставка - среднее
	assert.Equal(t, 8, resp.DurationHours)
	assert.Equal(t, 35.0, resp.HourlyRate)
	assert.Equal(t, 280.0, resp.VisitCost)

	require.NotEmpty(t, shifts.shifts)
	require.NotNil(t, shifts.shifts[0].Note)
	assert.Contains(t, *shifts.shifts[0].Note, "Skilled Nursing")
	assert.Equal(t, "17:00", shifts.shifts[0].EndTime.String())
}

func TestExecute_OnceCadence(t *testing.T) {
	orders := &fakeOrderRepo{nextID: 1}
	shifts := &fakeShiftRepo{}
	uc := newTestUseCase(orders, shifts, testDirectory())

	req := testRequest()
	req.Cadence = domain.CadenceOnce

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Shifts, 1)
	assert.Equal(t, req.StartDate, resp.Shifts[0].Date)
	assert.Equal(t, req.StartDate, resp.EndDate)
}

func TestExecute_OnceCadenceDayMismatch(t *testing.T) {
	dir := testDirectory()
	dir.caregiver.Availability[1].EndTime = "18:00"
	uc := newTestUseCase(&fakeOrderRepo{nextID: 1}, &fakeShiftRepo{}, dir)

	// Начало во вторник, а день недели - пятница: once не даёт ни одной даты
	req := testRequest()
	req.Cadence = domain.CadenceOnce
	req.DayOfWeek = 5
	req.SlotTime = "9:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoShiftDates)
}

func TestExecute_IncompleteBooking(t *testing.T) {
	uc := newTestUseCase(&fakeOrderRepo{}, &fakeShiftRepo{}, testDirectory())

	req := testRequest()
	req.CaregiverID = 0
	req.SlotTime = ""

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrIncompleteBooking)
	assert.Contains(t, err.Error(), "caregiver")
	assert.Contains(t, err.Error(), "time")
}

func TestExecute_InvalidSlot(t *testing.T) {
	uc := newTestUseCase(&fakeOrderRepo{}, &fakeShiftRepo{}, testDirectory())

	req := testRequest()
	req.SlotTime = "13:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestExecute_ClientNotFound(t *testing.T) {
	dir := testDirectory()
	dir.client = nil
	dir.clientErr = directoryClient.ErrClientNotFound
	uc := newTestUseCase(&fakeOrderRepo{}, &fakeShiftRepo{}, dir)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeOrderRepo{}, &fakeShiftRepo{}, testDirectory())

	req := testRequest()
	req.PrimaryServiceCode = "XX99"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_CaregiverNotEligible(t *testing.T) {
	dir := testDirectory()
	dir.client.ZipCode = "90210"
	uc := newTestUseCase(&fakeOrderRepo{}, &fakeShiftRepo{}, dir)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrCaregiverNotEligible)
}

func TestExecute_SlotNotFeasible(t *testing.T) {
	uc := newTestUseCase(&fakeOrderRepo{}, &fakeShiftRepo{}, testDirectory())

	// Пятничное окно 09:00-12:00 не вмещает 4-часовой визит с 9:00
	req := testRequest()
	req.DayOfWeek = 5
	req.StartDate = time.Date(2026, time.September, 4, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotFeasible)
}

func TestExecute_ShiftConflict(t *testing.T) {
	shifts := &fakeShiftRepo{
		batchErr: fmt.Errorf("%w: caregiver busy", shiftRepo.ErrShiftConflict),
	}
	uc := newTestUseCase(&fakeOrderRepo{nextID: 42}, shifts, testDirectory())

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrShiftConflict)
}

func TestExecute_PartialBookingIsLoud(t *testing.T) {
	orders := &fakeOrderRepo{nextID: 42}
	shifts := &fakeShiftRepo{batchErr: errors.New("connection reset")}
	uc := newTestUseCase(orders, shifts, testDirectory())

	_, err := uc.Execute(context.Background(), testRequest())
	require.ErrorIs(t, err, ErrPartialBooking)

	// Заказ успел создаться, и его ID виден в ошибке - вызывающая
	// сторона может компенсировать
	require.NotNil(t, orders.created)
	assert.Contains(t, err.Error(), "order_id=42")
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr bool
	}{
		{name: "valid", mutate: func(req *Request) {}},
		{name: "negative client", mutate: func(req *Request) { req.ClientID = -1 }, wantErr: true},
		{name: "negative caregiver", mutate: func(req *Request) { req.CaregiverID = -5 }, wantErr: true},
		{name: "unknown cadence", mutate: func(req *Request) { req.Cadence = "yearly" }, wantErr: true},
		{name: "empty additional code", mutate: func(req *Request) { req.AdditionalServiceCode = ptr.Ptr("") }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
