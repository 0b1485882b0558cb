package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"devops-board/internal/devops"
	"devops-board/internal/domain"
	"devops-board/internal/format"
	"devops-board/internal/handler"
	"devops-board/internal/mocks"
	"devops-board/internal/report"
	"devops-board/internal/service"
)

func TestReviewHandler_Reviews(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		queryParams      map[string]string
		mockSetup        func(*mocks.MockReviewServiceInterface)
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "success - returns reviews document",
			queryParams: map[string]string{
				"reviewerId":      "u-1,u-2",
				"status":          "active",
				"excludeAuthorId": "u-9",
			},
			mockSetup: func(m *mocks.MockReviewServiceInterface) {
				m.EXPECT().
					Reviews(gomock.Any(), service.ReviewFilter{
						ReviewerIDs:     []string{"u-1", "u-2"},
						Status:          domain.StatusActive,
						ExcludeAuthorID: "u-9",
					}).
					Return(report.Reviews{
						Count: 1,
						PullRequests: []format.PullRequestRow{
							{ID: 101, Repository: "gateway", Title: "Retry failed payouts", AgeDays: 15},
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response report.Reviews
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.Equal(t, 1, response.Count)
				require.Len(t, response.PullRequests, 1)
				assert.Equal(t, 101, response.PullRequests[0].ID)
				assert.Empty(t, response.Failures)
			},
		},
		{
			name: "success - partial result still answers 200",
			queryParams: map[string]string{
				"reviewerId": "u-1",
			},
			mockSetup: func(m *mocks.MockReviewServiceInterface) {
				m.EXPECT().
					Reviews(gomock.Any(), service.ReviewFilter{ReviewerIDs: []string{"u-1"}}).
					Return(report.Reviews{
						Count:        1,
						PullRequests: []format.PullRequestRow{{ID: 11, Repository: "alpha"}},
						Failures: []report.PartialFailure{
							{Repository: "beta", Message: "devops request failed: 503 Service Unavailable"},
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response report.Reviews
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.True(t, response.Partial())
				require.Len(t, response.Failures, 1)
				assert.Equal(t, "beta", response.Failures[0].Repository)
			},
		},
		{
			name:           "error - missing reviewerId parameter",
			queryParams:    map[string]string{"status": "active"},
			mockSetup:      func(m *mocks.MockReviewServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response report.Failure
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.True(t, response.Error)
				assert.Equal(t, "reviewerId parameter is required", response.Message)
			},
		},
		{
			name:        "error - invalid status maps to 400",
			queryParams: map[string]string{"reviewerId": "u-1", "status": "merged"},
			mockSetup: func(m *mocks.MockReviewServiceInterface) {
				m.EXPECT().
					Reviews(gomock.Any(), gomock.Any()).
					Return(report.Reviews{}, fmt.Errorf("%w: status %q is not searchable", domain.ErrInvalidFilter, "merged"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "error - upstream failure maps to 502",
			queryParams: map[string]string{"reviewerId": "u-1"},
			mockSetup: func(m *mocks.MockReviewServiceInterface) {
				m.EXPECT().
					Reviews(gomock.Any(), gomock.Any()).
					Return(report.Reviews{}, &devops.APIError{Reason: "connection refused"})
			},
			expectedStatus: http.StatusBadGateway,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response report.Failure
				err := json.Unmarshal(w.Body.Bytes(), &response)
				require.NoError(t, err)
				require.NotNil(t, response.Status)
				assert.Equal(t, 0, *response.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockReviewServiceInterface(ctrl)
			tt.mockSetup(mockService)

			h := handler.NewReviewHandler(mockService)

			req, err := http.NewRequest(http.MethodGet, "/review/pullRequests", nil)
			require.NoError(t, err)

			q := req.URL.Query()
			for key, value := range tt.queryParams {
				q.Add(key, value)
			}
			req.URL.RawQuery = q.Encode()

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			h.Reviews(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateResponse != nil {
				tt.validateResponse(t, w)
			}
		})
	}
}
