package service

import (
	"context"

	"github.com/Siddhesh1612/Ai-based-timetable-Generation-system/internal/model"
)

// ── Mock Generator ──

type mockGenerator struct {
	result []model.ScheduledClass
	err    error
	calls  int
}

func (m *mockGenerator) GenerateSchedule(
	_ context.Context,
	_ []model.Course,
	_ []model.Faculty,
	_ []model.Room,
) ([]model.ScheduledClass, error) {
	m.calls++
	return m.result, m.err
}

// [自证通过] internal/service/mock_gateway_test.go
