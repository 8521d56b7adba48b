package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GregMSThompson/pfm-advisor/internal/dto"
	"github.com/GregMSThompson/pfm-advisor/pkg/helpers"
)

func TestRecommend_OK(t *testing.T) {
	svc := &stubRecommendationService{resp: dto.RecommendationResponse{
		Recommendations: []dto.Card{{Name: "Islamic Credit Card"}},
	}}
	resp := &stubResponseHandler{}
	h := NewRecommendationHandlers(&Deps{ResponseHandler: resp, RecommendationSvc: svc})

	body := `{"transactions":[{"Amount":{"Amount":"50"}},{"Amount":{"Amount":"5"}}]}`
	req := httptest.NewRequest(http.MethodPost, "/credit-card-recommendations", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Recommend(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected WriteSuccess with 200")
	}
	if len(svc.raw) != 2 {
		t.Fatalf("expected 2 transactions passed to service, got %d", len(svc.raw))
	}
}

func TestRecommend_ServiceErrorIs200(t *testing.T) {
	svc := &stubRecommendationService{err: errors.New("scoring blew up")}
	resp := &stubResponseHandler{}
	h := NewRecommendationHandlers(&Deps{ResponseHandler: resp, RecommendationSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/credit-card-recommendations", strings.NewReader(`{"transactions":[]}`))
	req = req.WithContext(helpers.TestCtx())
	rr := httptest.NewRecorder()
	h.Recommend(rr, req)

	if resp.handleErrorCalled {
		t.Fatal("HandleError should not be used for recommendation failures")
	}
	if resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.writeSuccessStatus)
	}
	body, ok := resp.writeSuccessData.(dto.RecommendationErrorResponse)
	if !ok {
		t.Fatalf("expected RecommendationErrorResponse, got %T", resp.writeSuccessData)
	}
	if body.Error != "scoring blew up" {
		t.Errorf("unexpected error text: %q", body.Error)
	}
	if body.Recommendations == nil || len(body.Recommendations) != 0 {
		t.Errorf("expected an empty, non-nil recommendations list")
	}
}

func TestRecommend_InvalidJSON(t *testing.T) {
	svc := &stubRecommendationService{}
	resp := &stubResponseHandler{}
	h := NewRecommendationHandlers(&Deps{ResponseHandler: resp, RecommendationSvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/credit-card-recommendations", strings.NewReader("not-json"))
	rr := httptest.NewRecorder()
	h.Recommend(rr, req)

	if svc.called {
		t.Fatal("service should not be called on invalid JSON")
	}
	if _, ok := resp.writeSuccessData.(dto.RecommendationErrorResponse); !ok || rr.Code != http.StatusOK {
		t.Fatalf("expected 200 error body, got %d %T", rr.Code, resp.writeSuccessData)
	}
}
