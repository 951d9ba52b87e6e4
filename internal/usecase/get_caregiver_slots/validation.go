package get_caregiver_slots

import (
	"fmt"

	"github.com/Munkh976/caremuch-sub000/internal/domain"
	"github.com/Munkh976/caremuch-sub000/internal/integrations/directory"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.CaregiverID <= 0 {
		return fmt.Errorf("%w: caregiverID must be positive", ErrInvalidInput)
	}

	if req.DayOfWeek < domain.MinDayOfWeek || req.DayOfWeek > domain.MaxDayOfWeek {
		return fmt.Errorf("%w: dayOfWeek must be within 0..6", ErrInvalidInput)
	}

	if req.PrimaryServiceCode == "" {
		return fmt.Errorf("%w: primary service code is required", ErrInvalidInput)
	}

	if req.AdditionalServiceCode != nil && *req.AdditionalServiceCode == "" {
		return fmt.Errorf("%w: additional service code must not be empty when set", ErrInvalidInput)
	}

	return nil
}

// findService ищет услугу в каталоге агентства по коду
func findService(services []directory.CareService, code string) (*directory.CareService, bool) {
	for i := range services {
		if services[i].Code == code {
			return &services[i], true
		}
	}
	return nil, false
}
