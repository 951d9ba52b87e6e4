package match_caregivers

import (
	matchCaregivers "github.com/Munkh976/caremuch-sub000/internal/usecase/match_caregivers"
)

// CaregiverMatchView подходящая сиделка в HTTP-ответе
type CaregiverMatchView struct {
	ID                int64   `json:"id"`
	FullName          string  `json:"fullName"`
	PerformanceRating float64 `json:"performanceRating"`
	HourlyRate        float64 `json:"hourlyRate"`
	WindowStart       string  `json:"windowStart"`
	WindowEnd         string  `json:"windowEnd"`
}

// MatchCaregiversResponse HTTP response model.
// Пустой список сопровождается советом выбрать другой день.
type MatchCaregiversResponse struct {
	ClientID  int64                `json:"clientId"`
	DayOfWeek int                  `json:"dayOfWeek"`
	Matches   []CaregiverMatchView `json:"matches"`
	Advisory  *string              `json:"advisory,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *matchCaregivers.Response, advisory *string) *MatchCaregiversResponse {
	matches := make([]CaregiverMatchView, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		matches = append(matches, CaregiverMatchView{
			ID:                m.ID,
			FullName:          m.FullName,
			PerformanceRating: m.PerformanceRating,
			HourlyRate:        m.HourlyRate,
			WindowStart:       m.WindowStart.String(),
			WindowEnd:         m.WindowEnd.String(),
		})
	}

	return &MatchCaregiversResponse{
		ClientID:  resp.ClientID,
		DayOfWeek: resp.DayOfWeek,
		Matches:   matches,
		Advisory:  advisory,
	}
}
