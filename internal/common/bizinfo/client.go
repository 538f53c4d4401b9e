// Package bizinfo is the client for the 기업마당 (bizinfo.go.kr) support-program listing API.
package bizinfo

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
	ServiceName    = "bizinfo"
	DefaultBaseURL = "https://www.bizinfo.go.kr/uss/rss/bizinfoApi.do"
	// PortalHost prefixes the relative announcement URLs.
	PortalHost = "https://www.bizinfo.go.kr"

	StartupCategory     = "창업"
	startupHashtag      = "창업"
	defaultStartupCount = 30
)

// Categories maps support-field names onto the API's searchLclasId codes.
var Categories = map[string]string{
	"금융": "PLD0001",
	"기술": "PLD0002",
	"인력": "PLD0003",
	"수출": "PLD0004",
	"내수": "PLD0005",
	"창업": "PLD0006",
	"경영": "PLD0007",
	"기타": "PLD0008",
}

var (
	ErrCredentialMissing = errors.New("BIZINFO_API_KEY가 설정되지 않았습니다.")
	ErrUpstreamStatus    = errors.New("기업마당 API 요청 실패")
	ErrUpstreamReported  = errors.New("기업마당 API 오류")
	ErrUpstreamTimeout   = errors.New("기업마당 API 응답 시간 초과")
	ErrUnknownCategory   = errors.New("알 수 없는 지원 분야")
)

type Config struct {
	BaseURL      string
	APIKey       string
	Timeout      time.Duration
	DefaultCount int
	CacheTTL     time.Duration
}

// Client is safe for concurrent use. The API key is read-only after construction.
type Client struct {
	config *Config
	http   *apphttp.Client
	cache  *database.RedisClient
	logger logger.Logger
}

// NewClient builds a client. cache may be nil.
func NewClient(cfg Config, cache *database.RedisClient, log logger.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.DefaultCount <= 0 {
		cfg.DefaultCount = 50
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		config: &cfg,
		http:   apphttp.NewClient(cfg.Timeout),
		cache:  cache,
		logger: log.WithFields(map[string]interface{}{"service": ServiceName}),
	}
}

// SearchParams narrows a listing search. Zero values are omitted from the query.
type SearchParams struct {
	Category string
	Hashtags string
	Count    int
}

type listingResponse struct {
	JSONArray []models.RawListingItem `json:"jsonArray"`
	ReqErr    string                  `json:"reqErr,omitempty"`
}

// SearchListings fetches raw announcements. A missing key, a non-2xx status and an
// upstream-reported reqErr are all errors.
func (c *Client) SearchListings(ctx context.Context, params SearchParams) ([]models.RawListingItem, error) {
	if c.config.APIKey == "" {
		return nil, ErrCredentialMissing
	}

	count := params.Count
	if count <= 0 {
		count = c.config.DefaultCount
	}

	query := url.Values{}
	query.Set("crtfcKey", c.config.APIKey)
	query.Set("dataType", "json")
	query.Set("searchCnt", strconv.Itoa(count))
	if params.Category != "" {
		code, ok := Categories[params.Category]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, params.Category)
		}
		query.Set("searchLclasId", code)
	}
	if params.Hashtags != "" {
		query.Set("hashtags", params.Hashtags)
	}

	cacheKey := fmt.Sprintf("bizinfo:listings:%s:%s:%d", params.Category, params.Hashtags, count)
	var cached []models.RawListingItem
	found, err := c.cache.GetJSON(ctx, cacheKey, &cached)
	if err != nil {
		c.logger.Warn("listing cache read failed", map[string]interface{}{"key": cacheKey, "error": err.Error()})
	}
	if found {
		metrics.CacheLookups.WithLabelValues(ServiceName, metrics.CacheHit).Inc()
		return cached, nil
	}
	if c.cache.Enabled() {
		metrics.CacheLookups.WithLabelValues(ServiceName, metrics.CacheMiss).Inc()
	}

	var resp listingResponse
	if err := c.http.GetJSON(ctx, c.config.BaseURL+"?"+query.Encode(), nil, &resp); err != nil {
		return nil, c.classify(err)
	}
	if resp.ReqErr != "" {
		metrics.UpstreamRequests.WithLabelValues(ServiceName, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("%w: %s", ErrUpstreamReported, resp.ReqErr)
	}
	metrics.UpstreamRequests.WithLabelValues(ServiceName, metrics.OutcomeSuccess).Inc()

	items := resp.JSONArray
	if items == nil {
		items = []models.RawListingItem{}
	}

	if err := c.cache.SetJSON(ctx, cacheKey, items, c.config.CacheTTL); err != nil {
		c.logger.Warn("listing cache write failed", map[string]interface{}{"key": cacheKey, "error": err.Error()})
	}

	c.logger.Debug("listings fetched", map[string]interface{}{
		"category": params.Category,
		"hashtags": params.Hashtags,
		"count":    len(items),
	})
	return items, nil
}

func (c *Client) classify(err error) error {
	var statusErr *apphttp.StatusError
	switch {
	case errors.Is(err, apphttp.ErrTimeout):
		metrics.UpstreamRequests.WithLabelValues(ServiceName, metrics.OutcomeTimeout).Inc()
		return fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
	case errors.As(err, &statusErr):
		metrics.UpstreamRequests.WithLabelValues(ServiceName, metrics.OutcomeError).Inc()
		return fmt.Errorf("%w: %d", ErrUpstreamStatus, statusErr.StatusCode)
	default:
		metrics.UpstreamRequests.WithLabelValues(ServiceName, metrics.OutcomeError).Inc()
		return err
	}
}

// Classify maps a client error onto the shared upstream error codes.
func Classify(err error) *apperrors.StandardError {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrCredentialMissing):
		return apperrors.NewCredentialMissingError(ServiceName, "BIZINFO_API_KEY")
	case errors.Is(err, ErrUpstreamTimeout):
		return apperrors.NewTimeoutError(ServiceName, err)
	default:
		return apperrors.NewExternalServiceError(ServiceName, err)
	}
}

// StartupQuery carries the profile hints forwarded to the remote filter.
type StartupQuery struct {
	Region      string
	FounderType string
	Count       int
}

// SearchStartupFunds queries the startup category with hashtags built from the profile. When
// the narrowed query returns nothing it is repeated once with the startup hashtag only.
func (c *Client) SearchStartupFunds(ctx context.Context, q StartupQuery) ([]models.RawListingItem, error) {
	count := q.Count
	if count <= 0 {
		count = defaultStartupCount
	}

	tags := []string{startupHashtag}
	if q.Region != "" {
		tags = append(tags, q.Region)
	}
	switch q.FounderType {
	case models.FounderYouth, models.FounderWoman:
		tags = append(tags, q.FounderType)
	}

	items, err := c.SearchListings(ctx, SearchParams{
		Category: StartupCategory,
		Hashtags: strings.Join(tags, ","),
		Count:    count,
	})
	if err != nil || len(items) > 0 || len(tags) == 1 {
		return items, err
	}

	c.logger.Info("narrowed listing query empty, broadening", map[string]interface{}{"hashtags": strings.Join(tags, ",")})
	return c.SearchListings(ctx, SearchParams{
		Category: StartupCategory,
		Hashtags: startupHashtag,
		Count:    count,
	})
}
