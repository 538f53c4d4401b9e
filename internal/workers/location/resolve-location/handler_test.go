package resolvelocation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizstart-workers/internal/common/kakao"
	"bizstart-workers/internal/common/logger"
	"bizstart-workers/internal/models"
)

type panickingGeocoder struct{}

func (panickingGeocoder) Geocode(ctx context.Context, query string) (*kakao.Place, error) {
	panic("unexpected payload")
}

func newTestHandler(t *testing.T, geocoder Geocoder) *Handler {
	t.Helper()
	return NewHandler(LoadConfig(), geocoder, nil, logger.NewTestLogger(t))
}

func TestHandler_Execute(t *testing.T) {
	geo := &stubGeocoder{place: &kakao.Place{Name: "성수역", Coordinates: models.Coordinates{Latitude: 37.5446, Longitude: 127.0559}}}
	h := newTestHandler(t, geo)

	known := h.Execute(context.Background(), &Input{Location: "명동"})
	require.True(t, known.Success)
	assert.Equal(t, DataSourceKnownArea, known.Meta.Source)
	assert.Equal(t, "명동", known.Data.(*models.ResolvedLocation).Name)

	remote := h.Execute(context.Background(), &Input{Location: "성수역"})
	require.True(t, remote.Success)
	assert.Equal(t, DataSourceKakao, remote.Meta.Source)
}

func TestHandler_Execute_Failures(t *testing.T) {
	tests := []struct {
		name     string
		geocoder Geocoder
		input    *Input
		wantCode string
	}{
		{"empty location", nil, &Input{Location: ""}, "INVALID_INPUT"},
		{"not found", &stubGeocoder{err: kakao.ErrNoResult}, &Input{Location: "없는곳"}, "LOCATION_NOT_FOUND"},
		{"panic", panickingGeocoder{}, &Input{Location: "성수역"}, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newTestHandler(t, tt.geocoder).Execute(context.Background(), tt.input)
			require.False(t, result.Success)
			assert.Equal(t, tt.wantCode, result.Error.Code)
			assert.NotEmpty(t, result.Error.Suggestion)
		})
	}
}
