package mocks

import (
	"antifraud-system/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockProducer является моком для kafka.Producer интерфейса
type MockProducer struct {
	mock.Mock
}

// SendDecisionEvent мок для SendDecisionEvent
func (m *MockProducer) SendDecisionEvent(event *models.KafkaDecisionEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

// Close мок для Close
func (m *MockProducer) Close() error {
	args := m.Called()
	return args.Error(0)
}
