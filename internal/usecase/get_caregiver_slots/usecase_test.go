package get_caregiver_slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	directoryClient "github.com/Munkh976/caremuch-sub000/internal/integrations/directory"
	"github.com/Munkh976/caremuch-sub000/pkg/ptr"
)

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

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testDirectory() *fakeDirectory {
	return &fakeDirectory{
		client: &directoryClient.ClientProfile{ID: 1, AgencyID: 10, ZipCode: "10001"},
		caregiver: &directoryClient.Caregiver{
			ID:              5,
			AgencyID:        10,
			FullName:        "Anna Petrova",
			ServiceZipcodes: []string{"10001"},
			Availability: []directoryClient.AvailabilityWindow{
				{CaregiverID: 5, DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsAvailable: true},
			},
			PerformanceRating: 4.8,
			HourlyRate:        30,
		},
		services: []directoryClient.CareService{
			{Code: "PC04", Name: "Personal Care", DurationHours: 4, Price: 30, IsActive: true},
			{Code: "SN04", Name: "Skilled Nursing", DurationHours: 4, Price: 40, IsActive: true},
		},
	}
}

func testRequest() *Request {
	return &Request{
		ClientID:           1,
		CaregiverID:        5,
		DayOfWeek:          1,
		PrimaryServiceCode: "PC04",
	}
}

func slotTimes(slots []SlotView) []string {
	times := make([]string, 0, len(slots))
	for _, s := range slots {
		times = append(times, s.Time)
	}
	return times
}

func TestExecute_FeasibleSlots(t *testing.T) {
	uc := NewUseCase(testDirectory(), nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, 4, resp.DurationHours)
	assert.Equal(t, 30.0, resp.HourlyRate)

	// Окно 09:00-17:00, визит 4 часа: утром проходят 9:00 и 10:00,
	// днём 12:00 и 1:00 PM (заканчивается ровно в 17:00)
	assert.Equal(t, []string{"9:00", "10:00"}, slotTimes(resp.Morning))
	assert.Equal(t, []string{"12:00", "1:00"}, slotTimes(resp.Afternoon))
	assert.Empty(t, resp.Evening)
	assert.True(t, resp.HasSlots())
}

func TestExecute_AdditionalServiceShrinksSlots(t *testing.T) {
	uc := NewUseCase(testDirectory(), nopLogger{})

	req := testRequest()
	req.AdditionalServiceCode = ptr.Ptr("SN04")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Совмещённый 8-часовой визит помещается только с 9:00
	assert.Equal(t, 8, resp.DurationHours)
	assert.Equal(t, 35.0, resp.HourlyRate)
	assert.Equal(t, []string{"9:00"}, slotTimes(resp.Morning))
	assert.Empty(t, resp.Afternoon)
	assert.Empty(t, resp.Evening)
}

func TestExecute_NoWindowForDay(t *testing.T) {
	uc := NewUseCase(testDirectory(), nopLogger{})

	req := testRequest()
	req.DayOfWeek = 4

	// Нет окна на четверг - пустой результат, не ошибка
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.HasSlots())
	assert.Empty(t, resp.Morning)
	assert.Empty(t, resp.Afternoon)
	assert.Empty(t, resp.Evening)
}

func TestExecute_NotFound(t *testing.T) {
	t.Run("client", func(t *testing.T) {
		dir := testDirectory()
		dir.client = nil
		dir.clientErr = directoryClient.ErrClientNotFound
		uc := NewUseCase(dir, nopLogger{})

		_, err := uc.Execute(context.Background(), testRequest())
		assert.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("caregiver", func(t *testing.T) {
		dir := testDirectory()
		dir.caregiver = nil
		dir.caregiverErr = directoryClient.ErrCaregiverNotFound
		uc := NewUseCase(dir, nopLogger{})

		_, err := uc.Execute(context.Background(), testRequest())
		assert.ErrorIs(t, err, ErrCaregiverNotFound)
	})

	t.Run("service", func(t *testing.T) {
		uc := NewUseCase(testDirectory(), nopLogger{})

		req := testRequest()
		req.PrimaryServiceCode = "XX99"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(testDirectory(), nopLogger{})

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "zero client", mutate: func(req *Request) { req.ClientID = 0 }},
		{name: "zero caregiver", mutate: func(req *Request) { req.CaregiverID = 0 }},
		{name: "day out of range", mutate: func(req *Request) { req.DayOfWeek = 7 }},
		{name: "empty service code", mutate: func(req *Request) { req.PrimaryServiceCode = "" }},
		{name: "empty additional code", mutate: func(req *Request) { req.AdditionalServiceCode = ptr.Ptr("") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
