package get_slot_catalog

import (
	"github.com/Munkh976/caremuch-sub000/internal/scheduling"
)

// SlotView слот каталога в HTTP-ответе
type SlotView struct {
	Time   string `json:"time"`
	Period string `json:"period"`
}

// SlotCatalogResponse полный каталог кандидатных времён начала визита
type SlotCatalogResponse struct {
	Morning   []SlotView `json:"morning"`
	Afternoon []SlotView `json:"afternoon"`
	Evening   []SlotView `json:"evening"`
}

// FromCatalog конвертирует каталог слотов в HTTP response
func FromCatalog(catalog scheduling.SlotCatalog) *SlotCatalogResponse {
	return &SlotCatalogResponse{
		Morning:   toSlotViews(catalog.Morning),
		Afternoon: toSlotViews(catalog.Afternoon),
		Evening:   toSlotViews(catalog.Evening),
	}
}

func toSlotViews(slots []scheduling.CandidateSlot) []SlotView {
	views := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, SlotView{
			Time:   s.Time,
			Period: string(s.Period),
		})
	}

	return views
}
