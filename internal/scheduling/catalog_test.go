package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Munkh976/caremuch-sub000/pkg/types"
)

func TestCatalog(t *testing.T) {
	catalog := Catalog()

	assert.Len(t, catalog.Morning, 5)
	assert.Len(t, catalog.Afternoon, 5)
	assert.Len(t, catalog.Evening, 3)

	// Каталог стабилен между вызовами
	assert.Equal(t, catalog, Catalog())

	assert.Equal(t, CandidateSlot{Time: "6:00", Period: PeriodAM}, catalog.Morning[0])
	assert.Equal(t, CandidateSlot{Time: "12:00", Period: PeriodPM}, catalog.Afternoon[0])
	assert.Equal(t, CandidateSlot{Time: "8:00", Period: PeriodPM}, catalog.Evening[2])
}

func TestTo24Hour(t *testing.T) {
	tests := []struct {
		name    string
		slot    CandidateSlot
		want    types.TimeString
		wantErr bool
	}{
		{name: "morning AM", slot: CandidateSlot{Time: "9:00", Period: PeriodAM}, want: "09:00"},
		{name: "noon stays noon", slot: CandidateSlot{Time: "12:00", Period: PeriodPM}, want: "12:00"},
		{name: "afternoon PM", slot: CandidateSlot{Time: "1:00", Period: PeriodPM}, want: "13:00"},
		{name: "evening PM", slot: CandidateSlot{Time: "8:00", Period: PeriodPM}, want: "20:00"},
		{name: "midnight AM", slot: CandidateSlot{Time: "12:00", Period: PeriodAM}, want: "00:00"},
		{name: "hour out of range", slot: CandidateSlot{Time: "13:00", Period: PeriodAM}, wantErr: true},
		{name: "zero hour", slot: CandidateSlot{Time: "0:00", Period: PeriodAM}, wantErr: true},
		{name: "unknown period", slot: CandidateSlot{Time: "9:00", Period: "XM"}, wantErr: true},
		{name: "garbage time", slot: CandidateSlot{Time: "nine", Period: PeriodAM}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := To24Hour(tt.slot)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTo24Hour_WholeCatalog(t *testing.T) {
	catalog := Catalog()
	all := append(append(catalog.Morning, catalog.Afternoon...), catalog.Evening...)

	// Каждый слот каталога нормализуется без ошибок
	for _, slot := range all {
		_, err := To24Hour(slot)
		require.NoError(t, err, "slot %s %s", slot.Time, slot.Period)
	}
}
