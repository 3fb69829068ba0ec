package mocks

import (
	"antifraud-system/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockDecisionService является моком для services.DecisionService интерфейса
type MockDecisionService struct {
	mock.Mock
}

// SubmitTransaction мок для SubmitTransaction
func (m *MockDecisionService) SubmitTransaction(req *models.SubmitRequest) (*models.Decision, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Decision), args.Error(1)
}

// GetLogRecords мок для GetLogRecords
func (m *MockDecisionService) GetLogRecords(limit int) ([]models.LogRecord, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LogRecord), args.Error(1)
}

// GetDeniedRecords мок для GetDeniedRecords
func (m *MockDecisionService) GetDeniedRecords(limit int) ([]models.LogRecord, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LogRecord), args.Error(1)
}
