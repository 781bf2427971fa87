package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Siddhesh1612/Ai-based-timetable-Generation-system/config"
	"github.com/Siddhesh1612/Ai-based-timetable-Generation-system/internal/model"
)

// ── 凭证快速失败 ──

func TestClient_GenerateSchedule_MissingAPIKey(t *testing.T) {
	c := NewClient(&config.GeminiConfig{APIKey: "", Model: "gemini-2.5-flash"}, zap.NewNop())

	_, err := c.GenerateSchedule(context.Background(), nil, nil, nil)
	if !errors.Is(err, ErrAPIKeyMissing) {
		t.Fatalf("期望 ErrAPIKeyMissing，实际: %v", err)
	}
}

// ── 提示词拼装 ──

func TestBuildPrompt_ContainsEntitiesAndVocabulary(t *testing.T) {
	courses := []model.Course{{ID: "c1", Name: "AI Fundamentals", Type: model.CourseTypeMajor, Credits: 4}}
	faculty := []model.Faculty{{ID: "f1", Name: "Dr. Sharma", Expertise: []string{"AI", "ML"}}}
	rooms := []model.Room{{ID: "r1", Name: "LH-101", Capacity: 60, HasLab: true}}

	prompt, err := buildPrompt(courses, faculty, rooms)
	if err != nil {
		t.Fatalf("buildPrompt 失败: %v", err)
	}

	for _, want := range []string{
		`"AI Fundamentals"`, `"Dr. Sharma"`, `"LH-101"`,
		`"c1"`, `"f1"`, `"r1"`,
		`"Monday"`, `"Friday"`,
		`"09:00 - 10:00"`, `"15:00 - 16:00"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("提示词应包含 %s", want)
		}
	}
}

// ── 响应解析 ──

const validPayload = `[
	{"courseId": "c1", "facultyId": "f1", "roomId": "r1", "day": "Monday", "timeSlot": "09:00 - 10:00"},
	{"courseId": "c2", "facultyId": "f1", "roomId": "r1", "day": "Tuesday", "timeSlot": "10:00 - 11:00"}
]`

func TestParseSchedulePayload_Valid(t *testing.T) {
	schedule, err := parseSchedulePayload(validPayload)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if len(schedule) != 2 {
		t.Fatalf("期望 2 条记录，实际 %d", len(schedule))
	}

	first := schedule[0]
	if first.CourseID != "c1" || first.Day != "Monday" || first.TimeSlot != "09:00 - 10:00" {
		t.Errorf("字段映射错误: %+v", first)
	}
}

func TestParseSchedulePayload_StripsMarkdownFence(t *testing.T) {
	fenced := "```json\n" + validPayload + "\n```"

	schedule, err := parseSchedulePayload(fenced)
	if err != nil {
		t.Fatalf("带代码围栏的响应应可解析: %v", err)
	}
	if len(schedule) != 2 {
		t.Errorf("期望 2 条记录，实际 %d", len(schedule))
	}
}

func TestParseSchedulePayload_AssignsUniqueIDs(t *testing.T) {
	schedule, err := parseSchedulePayload(validPayload)
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}

	seen := make(map[string]bool)
	for _, cls := range schedule {
		if !strings.HasPrefix(cls.ID, "scheduled-") {
			t.Errorf("本地 id 应带 scheduled- 前缀: %q", cls.ID)
		}
		if seen[cls.ID] {
			t.Errorf("出现重复 id: %s", cls.ID)
		}
		seen[cls.ID] = true
	}
}

func TestParseSchedulePayload_Malformed(t *testing.T) {
	for _, text := range []string{
		"not json at all",
		`{"courseId": "c1"}`,
		`[{"courseId": 42}]`,
	} {
		_, err := parseSchedulePayload(text)
		if !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("输入 %q 期望 ErrMalformedResponse，实际: %v", text, err)
		}
	}
}

func TestParseSchedulePayload_EmptyArray(t *testing.T) {
	schedule, err := parseSchedulePayload("[]")
	if err != nil {
		t.Fatalf("空数组是合法响应: %v", err)
	}
	if len(schedule) != 0 {
		t.Errorf("期望空排课表，实际 %d 条", len(schedule))
	}
}

// [自证通过] pkg/gemini/client_test.go
