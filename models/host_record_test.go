package models

import "testing"

func TestHostRecordOccupancy(t *testing.T) {
	tests := []struct {
		name       string
		record     HostRecord
		empty      bool
		full       bool
		filled     int
		emptySlots int
	}{
		{
			name:       "partially filled",
			record:     HostRecord{ID: 0, Type: InstanceM1, NumSlots: 2, Slots: []int{0, 1}},
			empty:      false,
			full:       false,
			filled:     1,
			emptySlots: 1,
		},
		{
			name:       "all slots empty",
			record:     HostRecord{ID: 5, Type: InstanceM2, NumSlots: 3, Slots: []int{0, 0, 0}},
			empty:      true,
			full:       false,
			filled:     0,
			emptySlots: 3,
		},
		{
			name:       "all slots occupied",
			record:     HostRecord{ID: 7, Type: InstanceM1, NumSlots: 2, Slots: []int{1, 1}},
			empty:      false,
			full:       true,
			filled:     2,
			emptySlots: 0,
		},
		{
			name:       "single empty slot",
			record:     HostRecord{ID: 9, Type: InstanceM3, NumSlots: 1, Slots: []int{0}},
			empty:      true,
			full:       false,
			filled:     0,
			emptySlots: 1,
		},
		{
			name:       "single occupied slot",
			record:     HostRecord{ID: 10, Type: InstanceM3, NumSlots: 1, Slots: []int{1}},
			empty:      false,
			full:       true,
			filled:     1,
			emptySlots: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.Empty(); got != tt.empty {
				t.Errorf("Empty() = %v, want %v", got, tt.empty)
			}
			if got := tt.record.Full(); got != tt.full {
				t.Errorf("Full() = %v, want %v", got, tt.full)
			}
			if got := tt.record.FilledSlots(); got != tt.filled {
				t.Errorf("FilledSlots() = %d, want %d", got, tt.filled)
			}
			if got := tt.record.EmptySlots(); got != tt.emptySlots {
				t.Errorf("EmptySlots() = %d, want %d", got, tt.emptySlots)
			}
		})
	}
}
