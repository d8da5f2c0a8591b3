package geosearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-MatchingService/internal/domain"
	"github.com/m04kA/SMC-MatchingService/pkg/geo"
	"github.com/m04kA/SMC-MatchingService/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// Client клиент сервиса радиусного гео-поиска исполнителей
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента гео-поиска
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SearchWithinRadius запрашивает исполнителей в радиусе radiusMeters от точки.
// Расстояние до каждого исполнителя считается на стороне сервиса и
// конвертируется в мили для скоринга
func (c *Client) SearchWithinRadius(ctx context.Context, lat, lon, radiusMeters float64) ([]domain.ProviderCandidate, error) {
	url := fmt.Sprintf("%s/internal/providers/radius-search", c.baseURL)

	payload, err := json.Marshal(searchRequest{
		Lat:            lat,
		Long:           lon,
		DistanceMeters: radiusMeters,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var envelope searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if envelope.Error != nil {
		return nil, fmt.Errorf("%w: code=%d message=%s", ErrRemote, envelope.Error.Code, envelope.Error.Message)
	}

	candidates := make([]domain.ProviderCandidate, 0, len(envelope.Data))
	for _, row := range envelope.Data {
		candidate, err := toCandidate(row)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}

	c.log.Info("Geosearch returned %d providers within %.0f meters of (%.4f, %.4f)", len(candidates), radiusMeters, lat, lon)

	return candidates, nil
}

// toCandidate собирает доменную модель из строки ответа
func toCandidate(row providerRow) (domain.ProviderCandidate, error) {
	provider := domain.Provider{
		ID:                row.ID,
		Name:              row.Name,
		Rating:            row.Rating,
		CompletedJobs:     row.CompletedJobs,
		MaxTravelDistance: row.MaxTravelDistance,
		Location: domain.Location{
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
		},
	}

	for _, c := range row.Capabilities {
		skill, ok := domain.ParseSkillLevel(c.SkillLevel)
		if !ok {
			return domain.ProviderCandidate{}, fmt.Errorf("%w: unknown skill level %q for provider %s", ErrInvalidResponse, c.SkillLevel, row.ID)
		}
		provider.Capabilities = append(provider.Capabilities, domain.Capability{
			ServiceID:  c.ServiceID,
			SkillLevel: skill,
		})
	}

	for _, w := range row.Availability {
		date, err := time.Parse(domain.DateFormat, w.Date)
		if err != nil {
			return domain.ProviderCandidate{}, fmt.Errorf("%w: malformed availability date %q for provider %s", ErrInvalidResponse, w.Date, row.ID)
		}
		provider.Availability = append(provider.Availability, domain.AvailabilityWindow{
			Date:      date,
			StartTime: types.TimeString(w.StartTime),
			EndTime:   types.TimeString(w.EndTime),
		})
	}

	return domain.ProviderCandidate{
		Provider: provider,
		Distance: geo.MetersToMiles(row.DistanceMeters),
	}, nil
}
