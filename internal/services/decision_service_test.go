package services

import (
	"errors"
	"testing"

	"antifraud-system/internal/fraud"
	"antifraud-system/internal/history"
	kafkamocks "antifraud-system/internal/kafka/mocks"
	"antifraud-system/internal/models"
	"antifraud-system/internal/storage"
	storagemocks "antifraud-system/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(sink storage.DecisionLog) DecisionService {
	rules := fraud.NewRuleset(history.Empty(), fraud.DefaultRapidWindowMinutes, fraud.DefaultDailyLimit)
	return NewDecisionService(fraud.NewDecisionEngine(rules, sink), sink)
}

func validRequest() *models.SubmitRequest {
	return &models.SubmitRequest{
		TransactionID:     1,
		UserID:            1,
		TransactionDate:   "2024-01-01T10:00:00",
		TransactionAmount: 100,
	}
}

func TestSubmitTransaction_Success(t *testing.T) {
	mockSink := new(storagemocks.MockDecisionLog)
	mockSink.On("Append", mock.AnythingOfType("*models.LogRecord")).Return()
	mockSink.On("Flush").Return(nil)

	service := newTestService(mockSink)
	decision, err := service.SubmitTransaction(validRequest())

	require.NoError(t, err)
	assert.Equal(t, models.RecommendationApprove, decision.Recommendation)
	assert.Equal(t, models.ReasonLooksOK, decision.Reason)

	mockSink.AssertExpectations(t)
}

func TestSubmitTransaction_InvalidDateSkipsFlush(t *testing.T) {
	mockSink := new(storagemocks.MockDecisionLog)

	service := newTestService(mockSink)
	req := validRequest()
	req.TransactionDate = "01.01.2024"
	decision, err := service.SubmitTransaction(req)

	require.ErrorIs(t, err, fraud.ErrInvalidTimestamp)
	assert.Nil(t, decision)

	mockSink.AssertNotCalled(t, "Append")
	mockSink.AssertNotCalled(t, "Flush")
}

func TestSubmitTransaction_FlushFailureDoesNotAffectDecision(t *testing.T) {
	mockSink := new(storagemocks.MockDecisionLog)
	mockSink.On("Append", mock.AnythingOfType("*models.LogRecord")).Return()
	mockSink.On("Flush").Return(storage.ErrWriteFailure)

	service := newTestService(mockSink)
	decision, err := service.SubmitTransaction(validRequest())

	// Сбой материализации не отменяет решение
	require.NoError(t, err)
	require.NotNil(t, decision)
	assert.Equal(t, models.RecommendationApprove, decision.Recommendation)
}

func TestSubmitTransaction_PublishesKafkaEvent(t *testing.T) {
	mockSink := new(storagemocks.MockDecisionLog)
	mockSink.On("Append", mock.AnythingOfType("*models.LogRecord")).Return()
	mockSink.On("Flush").Return(nil)

	var published *models.KafkaDecisionEvent
	mockProducer := new(kafkamocks.MockProducer)
	mockProducer.On("SendDecisionEvent", mock.AnythingOfType("*models.KafkaDecisionEvent")).
		Run(func(args mock.Arguments) {
			published = args.Get(0).(*models.KafkaDecisionEvent)
		}).Return(nil)

	rules := fraud.NewRuleset(history.Empty(), fraud.DefaultRapidWindowMinutes, fraud.DefaultDailyLimit)
	service := NewDecisionServiceWithKafka(fraud.NewDecisionEngine(rules, mockSink), mockSink, mockProducer)

	decision, err := service.SubmitTransaction(validRequest())
	require.NoError(t, err)
	require.NotNil(t, published)

	assert.Contains(t, published.EventID, "evt_")
	assert.Equal(t, "decision_made", published.EventType)
	assert.Equal(t, decision.TransactionID, published.Data.TransactionID)
	assert.Equal(t, decision.Recommendation, published.Data.Recommendation)

	mockProducer.AssertExpectations(t)
}

func TestSubmitTransaction_KafkaFailureDoesNotAffectDecision(t *testing.T) {
	mockSink := new(storagemocks.MockDecisionLog)
	mockSink.On("Append", mock.AnythingOfType("*models.LogRecord")).Return()
	mockSink.On("Flush").Return(nil)

	mockProducer := new(kafkamocks.MockProducer)
	mockProducer.On("SendDecisionEvent", mock.Anything).Return(errors.New("broker unavailable"))

	rules := fraud.NewRuleset(history.Empty(), fraud.DefaultRapidWindowMinutes, fraud.DefaultDailyLimit)
	service := NewDecisionServiceWithKafka(fraud.NewDecisionEngine(rules, mockSink), mockSink, mockProducer)

	decision, err := service.SubmitTransaction(validRequest())
	require.NoError(t, err)
	assert.Equal(t, models.RecommendationApprove, decision.Recommendation)
}

func TestGetLogRecords_Passthrough(t *testing.T) {
	records := []models.LogRecord{{TransactionID: 1}, {TransactionID: 2}}

	mockSink := new(storagemocks.MockDecisionLog)
	mockSink.On("Full", 100).Return(records)
	mockSink.On("Denied", 50).Return(records[1:])

	service := newTestService(mockSink)

	full, err := service.GetLogRecords(100)
	require.NoError(t, err)
	assert.Equal(t, records, full)

	denied, err := service.GetDeniedRecords(50)
	require.NoError(t, err)
	assert.Equal(t, records[1:], denied)

	mockSink.AssertExpectations(t)
}
