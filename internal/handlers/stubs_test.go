package handlers

import (
	"context"
	"net/http"

	"github.com/GregMSThompson/pfm-advisor/internal/dto"
	"github.com/GregMSThompson/pfm-advisor/internal/models"
)

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	handleErrorCalled bool
	handleError       error

	writeErrorCalled bool
	writeErrorStatus int
	writeErrorMsg    string
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, _ *http.Request, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, _ *http.Request, status int, message string) {
	s.writeErrorCalled = true
	s.writeErrorStatus = status
	s.writeErrorMsg = message
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, _ *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleError = err
	w.WriteHeader(http.StatusInternalServerError)
}

type stubDashboardService struct {
	called bool
	raw    []models.RawTransaction
	resp   dto.DashboardImageResponse
	err    error
}

func (s *stubDashboardService) DashboardImage(_ context.Context, raw []models.RawTransaction) (dto.DashboardImageResponse, error) {
	s.called = true
	s.raw = raw
	return s.resp, s.err
}

type stubRecommendationService struct {
	called bool
	raw    []models.RawTransaction
	resp   dto.RecommendationResponse
	err    error
}

func (s *stubRecommendationService) Recommend(_ context.Context, raw []models.RawTransaction) (dto.RecommendationResponse, error) {
	s.called = true
	s.raw = raw
	return s.resp, s.err
}

type stubSuggestionService struct {
	called  bool
	balance float64
}

func (s *stubSuggestionService) Suggest(_ context.Context, balance float64) dto.SuggestionResponse {
	s.called = true
	s.balance = balance
	return dto.SuggestionResponse{Balance: balance, Suggestions: []string{"save"}}
}

type stubPredictService struct {
	called      bool
	description string
	resp        dto.PredictResponse
	err         error
}

func (s *stubPredictService) Predict(_ context.Context, description string) (dto.PredictResponse, error) {
	s.called = true
	s.description = description
	return s.resp, s.err
}

func (s *stubPredictService) Home() dto.HomeResponse {
	return dto.HomeResponse{Message: "running"}
}
