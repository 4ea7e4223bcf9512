package channels

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codegirl-007/kiddos-api/api/types"
	"github.com/codegirl-007/kiddos-api/internal/models"
	channelsService "github.com/codegirl-007/kiddos-api/internal/services/channels"
)

type stubChannelService struct {
	channel  *models.Channel
	channels []models.Channel
	err      error
}

func (s *stubChannelService) AddChannel(ctx context.Context, identifier string) (*models.Channel, error) {
	return s.channel, s.err
}

func (s *stubChannelService) GetChannel(ctx context.Context, id string) (*models.Channel, error) {
	return s.channel, s.err
}

func (s *stubChannelService) ListChannels(ctx context.Context) ([]models.Channel, error) {
	return s.channels, s.err
}

func (s *stubChannelService) RemoveChannel(ctx context.Context, id string) error {
	return s.err
}

func TestPost(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		service        *stubChannelService
		expectedStatus int
	}{
		{
			name: "channel added",
			body: `{"identifier": "@SesameStreet"}`,
			service: &stubChannelService{
				channel: &models.Channel{ID: "UCses", Name: "Sesame Street", Handle: "@SesameStreet"},
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing identifier",
			body:           `{}`,
			service:        &stubChannelService{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate channel",
			body: `{"identifier": "UCses"}`,
			service: &stubChannelService{
				err: fmt.Errorf("%w: UCses", channelsService.ErrChannelExists),
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "unknown upstream",
			body: `{"identifier": "@nope"}`,
			service: &stubChannelService{
				err: channelsService.NewNotFoundError("@nope"),
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, router := gin.CreateTestContext(w)
			router.POST("/channels", Post(&types.Dependencies{ChannelService: tt.service}))

			req := httptest.NewRequest("POST", "/channels", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var response types.ChannelResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, "UCses", response.ID)
				assert.Equal(t, "Sesame Street", response.Name)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		service        *stubChannelService
		expectedStatus int
	}{
		{
			name:           "channel removed",
			service:        &stubChannelService{},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "channel not found",
			service:        &stubChannelService{err: channelsService.NewNotFoundError("UCgone")},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, router := gin.CreateTestContext(w)
			router.DELETE("/channels/:id", Delete(&types.Dependencies{ChannelService: tt.service}))

			req := httptest.NewRequest("DELETE", "/channels/UCgone", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service := &stubChannelService{
		channels: []models.Channel{
			{ID: "UCa", Name: "Channel A"},
			{ID: "UCb", Name: "Channel B"},
		},
	}

	w := httptest.NewRecorder()
	_, router := gin.CreateTestContext(w)
	router.GET("/channels", List(&types.Dependencies{ChannelService: service}))

	req := httptest.NewRequest("GET", "/channels", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []types.ChannelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 2)
	assert.Equal(t, "UCa", response[0].ID)
}
