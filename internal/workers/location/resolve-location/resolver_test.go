package resolvelocation

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "bizstart-workers/internal/common/errors"
	apphttp "bizstart-workers/internal/common/http"
	"bizstart-workers/internal/common/kakao"
	"bizstart-workers/internal/common/logger"
	"bizstart-workers/internal/models"
)

type stubGeocoder struct {
	place   *kakao.Place
	err     error
	queries []string
}

func (s *stubGeocoder) Geocode(ctx context.Context, query string) (*kakao.Place, error) {
	s.queries = append(s.queries, query)
	return s.place, s.err
}

func TestFindKnownArea(t *testing.T) {
	tests := []struct {
		query string
		want  string
		found bool
	}{
		{"강남역", "강남역", true},
		{"강남", "강남역", true},
		{"홍대 입구", "홍대입구", true},
		{"홍대입구역 9번 출구", "홍대입구", true},
		{"건국대", "건대입구", true},
		{"부산 해운대", "해운대", true},
		{"성수동", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			area, ok := FindKnownArea(tt.query)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, area.Name)
		})
	}
}

func TestResolve_KnownAreaSkipsGeocoder(t *testing.T) {
	geo := &stubGeocoder{}
	r := NewResolver(geo, logger.NewTestLogger(t))

	loc, err := r.Resolve(context.Background(), " 잠실 ")

	require.NoError(t, err)
	assert.Equal(t, "잠실", loc.Query)
	assert.Equal(t, "잠실", loc.Name)
	assert.Equal(t, models.Coordinates{Latitude: 37.5133, Longitude: 127.1001}, loc.Coordinates)
	assert.Equal(t, models.LocationSourceKnownArea, loc.Source)
	assert.Empty(t, geo.queries)
}

func TestResolve_FallsBackToGeocoder(t *testing.T) {
	geo := &stubGeocoder{place: &kakao.Place{
		Name:        "성수역 2호선",
		Address:     "서울 성동구 성수동2가 289-316",
		Coordinates: models.Coordinates{Latitude: 37.5446, Longitude: 127.0559},
	}}
	r := NewResolver(geo, logger.NewTestLogger(t))

	loc, err := r.Resolve(context.Background(), "성수역")

	require.NoError(t, err)
	assert.Equal(t, []string{"성수역"}, geo.queries)
	assert.Equal(t, "성수역 2호선", loc.Name)
	assert.Equal(t, "서울 성동구 성수동2가 289-316", loc.Address)
	assert.Equal(t, models.LocationSourceKakao, loc.Source)
}

func TestResolve_NotFound(t *testing.T) {
	tests := []struct {
		name      string
		geocoder  Geocoder
		wantCause apperrors.ErrorCode
	}{
		{"no geocoder", nil, ""},
		{"no result", &stubGeocoder{err: kakao.ErrNoResult}, ""},
		{"credential missing", &stubGeocoder{err: kakao.ErrCredentialMissing}, apperrors.ErrCodeCredentialMissing},
		{"timeout", &stubGeocoder{err: fmt.Errorf("kakao keyword search: %w", apphttp.ErrTimeout)}, apperrors.ErrCodeTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.geocoder, logger.NewTestLogger(t))

			loc, err := r.Resolve(context.Background(), "어딘가 골목")

			assert.Nil(t, loc)
			stdErr := apperrors.Normalize(err)
			assert.Equal(t, apperrors.ErrCodeLocationNotFound, stdErr.Code)
			assert.Equal(t, "위치를 찾을 수 없습니다: 어딘가 골목", stdErr.Message)
			assert.Equal(t, "강남역, 홍대입구, 신촌, 건대입구, 명동, 이태원, 여의도, 잠실, 판교, 해운대, 서면 등 주요 상권명을 입력해주세요.", stdErr.Suggestion)

			if tt.wantCause == "" {
				assert.Nil(t, stdErr.Cause())
				return
			}
			require.NotNil(t, stdErr.Cause())
			assert.Equal(t, tt.wantCause, stdErr.Cause().Code)
		})
	}
}

func TestResolve_WithKakaoClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"documents":[{"place_name":"망원시장","address_name":"서울 마포구 망원동 411-13","x":"126.9060","y":"37.5560"}]}`))
	}))
	defer server.Close()

	client := kakao.NewClient(kakao.Config{BaseURL: server.URL, APIKey: "kakao-key", Timeout: time.Second}, nil, logger.NewTestLogger(t))
	r := NewResolver(client, logger.NewTestLogger(t))

	loc, err := r.Resolve(context.Background(), "망원시장")

	require.NoError(t, err)
	assert.Equal(t, "망원시장", loc.Name)
	assert.InDelta(t, 37.556, loc.Coordinates.Latitude, 1e-9)
	assert.InDelta(t, 126.906, loc.Coordinates.Longitude, 1e-9)
}
