package entity

import "slices"

// Frequency is how often scheduled posting runs.
type Frequency string

const (
	FrequencyHourly Frequency = "hourly"
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// DefaultTimeSlot is appended by AddTimeSlot.
const DefaultTimeSlot = "09:00"

// ScheduleConfig is replaced as a whole on every save.
type ScheduleConfig struct {
	Frequency   Frequency `json:"frequency" validate:"required,oneof=hourly daily weekly"`
	PostsPerDay int       `json:"posts_per_day" validate:"gte=1"`
	Days        []string  `json:"days" validate:"dive,oneof=Mon Tue Wed Thu Fri Sat Sun"`
	TargetTimes []string  `json:"target_times" validate:"dive,datetime=15:04"`
	IsActive    bool      `json:"is_active"`
}

// DefaultSchedule is shown until a saved schedule is loaded.
func DefaultSchedule() ScheduleConfig {
	return ScheduleConfig{
		Frequency:   FrequencyDaily,
		PostsPerDay: 1,
		Days:        []string{"Mon", "Wed", "Fri"},
		TargetTimes: []string{DefaultTimeSlot},
		IsActive:    true,
	}
}

// ToggleDay adds the day when absent and removes it when present.
func (s ScheduleConfig) ToggleDay(day string) ScheduleConfig {
	if idx := slices.Index(s.Days, day); idx >= 0 {
		s.Days = slices.Delete(slices.Clone(s.Days), idx, idx+1)

		return s
	}
	s.Days = append(slices.Clone(s.Days), day)

	return s
}

// AddTimeSlot appends the default time slot.
func (s ScheduleConfig) AddTimeSlot() ScheduleConfig {
	s.TargetTimes = append(slices.Clone(s.TargetTimes), DefaultTimeSlot)

	return s
}

// SetTime replaces the slot at index; out-of-range indexes are ignored.
func (s ScheduleConfig) SetTime(index int, value string) ScheduleConfig {
	if index < 0 || index >= len(s.TargetTimes) {
		return s
	}
	s.TargetTimes = slices.Clone(s.TargetTimes)
	s.TargetTimes[index] = value

	return s
}

// RemoveTimeSlot drops the slot at index; out-of-range indexes are ignored.
func (s ScheduleConfig) RemoveTimeSlot(index int) ScheduleConfig {
	if index < 0 || index >= len(s.TargetTimes) {
		return s
	}
	s.TargetTimes = slices.Delete(slices.Clone(s.TargetTimes), index, index+1)

	return s
}
