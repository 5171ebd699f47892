package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduleConfig_ToggleDay(t *testing.T) {
	s := DefaultSchedule()

	added := s.ToggleDay("Sun")
	removed := s.ToggleDay("Wed")

	assert.Equal(t, []string{"Mon", "Wed", "Fri", "Sun"}, added.Days)
	assert.Equal(t, []string{"Mon", "Fri"}, removed.Days)
	assert.Equal(t, []string{"Mon", "Wed", "Fri"}, s.Days, "original is not modified")
}

func TestScheduleConfig_TimeSlots(t *testing.T) {
	s := DefaultSchedule().AddTimeSlot()
	assert.Equal(t, []string{"09:00", "09:00"}, s.TargetTimes)

	s = s.SetTime(1, "18:30")
	assert.Equal(t, []string{"09:00", "18:30"}, s.TargetTimes)

	assert.Equal(t, s.TargetTimes, s.SetTime(5, "10:00").TargetTimes)
	assert.Equal(t, s.TargetTimes, s.RemoveTimeSlot(-1).TargetTimes)

	s = s.RemoveTimeSlot(0)
	assert.Equal(t, []string{"18:30"}, s.TargetTimes)
}
