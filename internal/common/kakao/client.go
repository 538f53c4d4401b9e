// Package kakao resolves free-text place names to coordinates with the Kakao Local keyword
// search API.
package kakao

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bizstart-workers/internal/common/database"
	apperrors "bizstart-workers/internal/common/errors"
	apphttp "bizstart-workers/internal/common/http"
	"bizstart-workers/internal/common/logger"
	"bizstart-workers/internal/common/metrics"
	"bizstart-workers/internal/models"
)

const (
	ServiceName    = "kakao"
	DefaultBaseURL = "https://dapi.kakao.com"
	keywordPath    = "/v2/local/search/keyword.json"
)

var (
	ErrCredentialMissing = errors.New("KAKAO_API_KEY가 설정되지 않았습니다.")
	ErrNoResult          = errors.New("검색 결과가 없습니다")
	ErrBadCoordinates    = errors.New("좌표 형식이 올바르지 않습니다")
)

type Config struct {
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Place is the first keyword-search hit for a query.
type Place struct {
	Name        string             `json:"name"`
	Address     string             `json:"address"`
	Coordinates models.Coordinates `json:"coordinates"`
}

type Client struct {
	config *Config
	http   *apphttp.Client
	cache  *database.RedisClient
	logger logger.Logger
}

// NewClient builds a geocoder. cache may be nil.
func NewClient(cfg Config, cache *database.RedisClient, log logger.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &Client{
		config: &cfg,
		http:   apphttp.NewClient(cfg.Timeout),
		cache:  cache,
		logger: log.WithFields(map[string]interface{}{"service": ServiceName}),
	}
}

type keywordResponse struct {
	Documents []struct {
		PlaceName   string `json:"place_name"`
		AddressName string `json:"address_name"`
		X           string `json:"x"`
		Y           string `json:"y"`
	} `json:"documents"`
}

// Geocode returns the best match for query. ErrNoResult is returned when the search has no hits.
func (c *Client) Geocode(ctx context.Context, query string) (*Place, error) {
	query = strings.TrimSpace(query)
	if c.config.APIKey == "" {
		return nil, ErrCredentialMissing
	}

	cacheKey := "kakao:geocode:" + query
	var cached Place
	found, err := c.cache.GetJSON(ctx, cacheKey, &cached)
	if err != nil {
		c.logger.Warn("geocode cache read failed", map[string]interface{}{"key": cacheKey, "error": err.Error()})
	}
	if found {
		metrics.CacheLookups.WithLabelValues(ServiceName, metrics.CacheHit).Inc()
		return &cached, nil
	}
	if c.cache.Enabled() {
		metrics.CacheLookups.WithLabelValues(ServiceName, metrics.CacheMiss).Inc()
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("size", "1")
	headers := map[string]string{"Authorization": "KakaoAK " + c.config.APIKey}

	var resp keywordResponse
	if err := c.http.GetJSON(ctx, c.config.BaseURL+keywordPath+"?"+params.Encode(), headers, &resp); err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, apphttp.ErrTimeout) {
			outcome = metrics.OutcomeTimeout
		}
		metrics.UpstreamRequests.WithLabelValues(ServiceName, outcome).Inc()
		return nil, fmt.Errorf("kakao keyword search: %w", err)
	}
	metrics.UpstreamRequests.WithLabelValues(ServiceName, metrics.OutcomeSuccess).Inc()

	if len(resp.Documents) == 0 {
		return nil, ErrNoResult
	}

	doc := resp.Documents[0]
	lon, errX := strconv.ParseFloat(doc.X, 64)
	lat, errY := strconv.ParseFloat(doc.Y, 64)
	if errX != nil || errY != nil {
		return nil, fmt.Errorf("%w: x=%q y=%q", ErrBadCoordinates, doc.X, doc.Y)
	}

	place := &Place{
		Name:        doc.PlaceName,
		Address:     doc.AddressName,
		Coordinates: models.Coordinates{Latitude: lat, Longitude: lon},
	}

	if err := c.cache.SetJSON(ctx, cacheKey, place, c.config.CacheTTL); err != nil {
		c.logger.Warn("geocode cache write failed", map[string]interface{}{"key": cacheKey, "error": err.Error()})
	}

	c.logger.Debug("place geocoded", map[string]interface{}{
		"query":     query,
		"latitude":  lat,
		"longitude": lon,
	})
	return place, nil
}

// Classify maps a geocoding error onto the shared upstream error codes. An empty search is not
// an upstream failure and yields nil.
func Classify(err error) *apperrors.StandardError {
	switch {
	case err == nil, errors.Is(err, ErrNoResult):
		return nil
	case errors.Is(err, ErrCredentialMissing):
		return apperrors.NewCredentialMissingError(ServiceName, "KAKAO_API_KEY")
	case errors.Is(err, apphttp.ErrTimeout):
		return apperrors.NewTimeoutError(ServiceName, err)
	default:
		return apperrors.NewExternalServiceError(ServiceName, err)
	}
}
