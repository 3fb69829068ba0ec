package mocks

import (
	"antifraud-system/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockDecisionLog является моком для storage.DecisionLog интерфейса
type MockDecisionLog struct {
	mock.Mock
}

// Append мок для Append
func (m *MockDecisionLog) Append(record *models.LogRecord) {
	m.Called(record)
}

// Flush мок для Flush
func (m *MockDecisionLog) Flush() error {
	args := m.Called()
	return args.Error(0)
}

// Full мок для Full
func (m *MockDecisionLog) Full(limit int) []models.LogRecord {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.LogRecord)
}

// Denied мок для Denied
func (m *MockDecisionLog) Denied(limit int) []models.LogRecord {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.LogRecord)
}

// Close мок для Close
func (m *MockDecisionLog) Close() error {
	args := m.Called()
	return args.Error(0)
}
