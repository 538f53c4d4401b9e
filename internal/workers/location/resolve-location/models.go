// internal/workers/location/resolve-location/models.go
package resolvelocation

import (
	"context"

	"bizstart-workers/internal/common/kakao"
	"bizstart-workers/internal/models"
)

type Input struct {
	Location string `json:"location"`
}

// Geocoder resolves free-text place names. *kakao.Client satisfies it.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*kakao.Place, error)
}

const (
	DataSourceKnownArea = "주요 상권 좌표 테이블"
	DataSourceKakao     = "카카오 로컬 API"
)

// KnownArea is a major commercial district with fixed coordinates.
type KnownArea struct {
	Name        string
	Aliases     []string
	Coordinates models.Coordinates
}

// KnownAreas is ordered; the order is also the order shown in the not-found suggestion.
var KnownAreas = []KnownArea{
	{"강남역", []string{"강남"}, models.Coordinates{Latitude: 37.4979, Longitude: 127.0276}},
	{"홍대입구", []string{"홍대", "홍익대"}, models.Coordinates{Latitude: 37.5572, Longitude: 126.9245}},
	{"신촌", nil, models.Coordinates{Latitude: 37.5551, Longitude: 126.9368}},
	{"건대입구", []string{"건대", "건국대"}, models.Coordinates{Latitude: 37.5404, Longitude: 127.0692}},
	{"명동", nil, models.Coordinates{Latitude: 37.5636, Longitude: 126.9826}},
	{"이태원", nil, models.Coordinates{Latitude: 37.5345, Longitude: 126.9946}},
	{"여의도", nil, models.Coordinates{Latitude: 37.5219, Longitude: 126.9245}},
	{"잠실", nil, models.Coordinates{Latitude: 37.5133, Longitude: 127.1001}},
	{"판교", nil, models.Coordinates{Latitude: 37.3948, Longitude: 127.1112}},
	{"해운대", nil, models.Coordinates{Latitude: 35.1631, Longitude: 129.1635}},
	{"서면", nil, models.Coordinates{Latitude: 35.1578, Longitude: 129.0600}},
}

// KnownAreaNames lists the area names in table order.
func KnownAreaNames() []string {
	out := make([]string, len(KnownAreas))
	for i, a := range KnownAreas {
		out[i] = a.Name
	}
	return out
}
