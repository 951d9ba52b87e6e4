package create_care_order

import (
	"fmt"
	"strings"

	"github.com/Munkh976/caremuch-sub000/internal/domain"
	"github.com/Munkh976/caremuch-sub000/internal/integrations/directory"
)

// validateRequest валидирует значения полей запроса.
// Отсутствие обязательных выборов проверяется отдельно через BookingDraft.
func validateRequest(req *Request) error {
	if req.ClientID < 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.CaregiverID < 0 {
		return fmt.Errorf("%w: caregiverID must be positive", ErrInvalidInput)
	}

	if req.Cadence != "" && !req.Cadence.IsValid() {
		return fmt.Errorf("%w: unknown cadence %q", ErrInvalidInput, req.Cadence)
	}

	if req.AdditionalServiceCode != nil && *req.AdditionalServiceCode == "" {
		return fmt.Errorf("%w: additional service code must not be empty when set", ErrInvalidInput)
	}

	return nil
}

// checkDraftComplete проверяет, что все обязательные выборы черновика сделаны
func checkDraftComplete(draft *domain.BookingDraft) error {
	missing := draft.MissingFields()
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncompleteBooking, strings.Join(missing, ", "))
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
