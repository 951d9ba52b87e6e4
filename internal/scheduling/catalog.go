package scheduling

// Segment часть дня, по которой группируются кандидатные слоты
type Segment string

const (
	SegmentMorning   Segment = "morning"
	SegmentAfternoon Segment = "afternoon"
	SegmentEvening   Segment = "evening"
)

// Period 12-часовой маркер времени слота
type Period string

const (
	PeriodAM Period = "AM"
	PeriodPM Period = "PM"
)

// CandidateSlot кандидатное время начала визита из фиксированного каталога.
// Чистое значение: не хранится в БД, пересчитывается на каждый запрос.
type CandidateSlot struct {
	Time   string // 12-часовой формат, например "9:00"
	Period Period
}

// SlotCatalog фиксированный каталог кандидатных времён начала, сгруппированный
// по частям дня. Порядок слотов внутри сегмента стабилен.
type SlotCatalog struct {
	Morning   []CandidateSlot
	Afternoon []CandidateSlot
	Evening   []CandidateSlot
}

// Catalog возвращает каталог кандидатных слотов.
// Гранулярность намеренно грубая (целые часы) и не настраивается.
func Catalog() SlotCatalog {
	return SlotCatalog{
		Morning: []CandidateSlot{
			{Time: "6:00", Period: PeriodAM},
			{Time: "7:00", Period: PeriodAM},
			{Time: "8:00", Period: PeriodAM},
			{Time: "9:00", Period: PeriodAM},
			{Time: "10:00", Period: PeriodAM},
		},
		Afternoon: []CandidateSlot{
			{Time: "12:00", Period: PeriodPM},
			{Time: "1:00", Period: PeriodPM},
			{Time: "2:00", Period: PeriodPM},
			{Time: "3:00", Period: PeriodPM},
			{Time: "4:00", Period: PeriodPM},
		},
		Evening: []CandidateSlot{
			{Time: "6:00", Period: PeriodPM},
			{Time: "7:00", Period: PeriodPM},
			{Time: "8:00", Period: PeriodPM},
		},
	}
}
