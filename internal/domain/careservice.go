package domain

// CareService identifies a unit of care offered by the agency.
// Immutable reference data owned by the agency catalog.
type CareService struct {
	Code          string  // unique service code, e.g. "PC" for personal care
	Name          string  // display name
	Category      string  // grouping for the catalog UI
	DurationHours int     // default visit duration, positive
	Price         float64 // default hourly price, non-negative
}

// IsValid returns true if the reference data is usable for booking
func (s *CareService) IsValid() bool {
	return s.Code != "" && s.DurationHours > 0 && s.Price >= 0
}
