package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/inmatchpro/analytics-api/internal/logic"
	"github.com/inmatchpro/analytics-api/internal/models"
)

func TestEstimateFantasyPoints(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(*MockFantasyService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Happy Path",
			body: `{"players":[{"name":"V Kohli","captain":true},{"name":"MS Dhoni"}]}`,
			mockSetup: func(m *MockFantasyService) {
				m.EstimateFunc = func(ctx context.Context, req models.FantasyEstimateRequest) (models.FantasyEstimate, error) {
					return models.FantasyEstimate{
						TotalPoints:  250,
						CaptainBonus: 50,
						RankLow:      8000,
						RankHigh:     18000,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"total_points":250`,
		},
		{
			name:           "Missing Players",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Player Without Name",
			body:           `{"players":[{"captain":true}]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Model Unavailable",
			body: `{"players":[{"name":"V Kohli"}]}`,
			mockSetup: func(m *MockFantasyService) {
				m.EstimateFunc = func(ctx context.Context, req models.FantasyEstimateRequest) (models.FantasyEstimate, error) {
					return models.FantasyEstimate{}, logic.ErrModelUnavailable
				}
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockFantasyService{}
			if tt.mockSetup != nil {
				tt.mockSetup(mockService)
			}

			h := newTestHandler()
			h.fantasy = mockService

			r := httptest.NewRequest("POST", "/api/fantasy/estimate", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h.EstimateFantasyPoints(w, r)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}
			if tt.expectedBody != "" && !strings.Contains(w.Body.String(), tt.expectedBody) {
				t.Errorf("body %q does not contain %q", w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestFantasyPlayers(t *testing.T) {
	h := newTestHandler()
	h.fantasy = &MockFantasyService{
		PlayerNamesFunc: func() []string {
			return []string{"AB de Villiers", "V Kohli"}
		},
	}

	r := httptest.NewRequest("GET", "/api/fantasy/players", nil)
	w := httptest.NewRecorder()

	h.FantasyPlayers(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `["AB de Villiers","V Kohli"]`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}
