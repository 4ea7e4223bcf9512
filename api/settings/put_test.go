package settings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codegirl-007/kiddos-api/api/types"
)

type stubSettingsService struct {
	minutes    int
	setMinutes int
	err        error
}

func (s *stubSettingsService) CacheDurationMinutes(ctx context.Context) (int, error) {
	return s.minutes, s.err
}

func (s *stubSettingsService) SetCacheDurationMinutes(ctx context.Context, minutes int) error {
	s.setMinutes = minutes
	return s.err
}

func (s *stubSettingsService) IsRefreshInProgress(ctx context.Context) (bool, error) {
	return false, nil
}

func (s *stubSettingsService) AcquireRefreshLease(ctx context.Context) (bool, error) {
	return false, nil
}

func (s *stubSettingsService) ReleaseRefreshLease(ctx context.Context) error {
	return nil
}

func TestGetCacheDuration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	_, router := gin.CreateTestContext(w)
	router.GET("/settings/cache-duration", GetCacheDuration(&types.Dependencies{
		SettingsService: &stubSettingsService{minutes: 360},
	}))

	req := httptest.NewRequest("GET", "/settings/cache-duration", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response CacheDurationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 360, response.Minutes)
}

func TestPutCacheDuration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedSet    int
	}{
		{
			name:           "valid update",
			body:           `{"minutes": 120}`,
			expectedStatus: http.StatusOK,
			expectedSet:    120,
		},
		{
			name:           "missing minutes",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative minutes",
			body:           `{"minutes": -5}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &stubSettingsService{}

			w := httptest.NewRecorder()
			_, router := gin.CreateTestContext(w)
			router.PUT("/settings/cache-duration", PutCacheDuration(&types.Dependencies{
				SettingsService: service,
			}))

			req := httptest.NewRequest("PUT", "/settings/cache-duration", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedSet, service.setMinutes)
			}
		})
	}
}
