package upsert_provider

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-MatchingService/internal/domain"
	"github.com/m04kA/SMC-MatchingService/pkg/types"
)

// UpsertProviderRequest HTTP request model
type UpsertProviderRequest struct {
	Name              string              `json:"name"`
	Rating            float64             `json:"rating"`
	CompletedJobs     int                 `json:"completedJobs"`
	MaxTravelDistance float64             `json:"maxTravelDistance"`
	Latitude          float64             `json:"latitude"`
	Longitude         float64             `json:"longitude"`
	Capabilities      []CapabilityModel   `json:"capabilities,omitempty"`
	Availability      []AvailabilityModel `json:"availability,omitempty"`
}

// CapabilityModel услуга исполнителя
type CapabilityModel struct {
	ServiceID  string `json:"serviceId"`
	SkillLevel string `json:"skillLevel"` // "beginner".."expert"
}

// AvailabilityModel окно доступности
type AvailabilityModel struct {
	Date      string `json:"date"` // "2025-10-15"
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ProviderResponse HTTP response model
type ProviderResponse struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Rating            float64             `json:"rating"`
	CompletedJobs     int                 `json:"completedJobs"`
	MaxTravelDistance float64             `json:"maxTravelDistance"`
	Latitude          float64             `json:"latitude"`
	Longitude         float64             `json:"longitude"`
	Capabilities      []CapabilityModel   `json:"capabilities"`
	Availability      []AvailabilityModel `json:"availability"`
	CreatedAt         string              `json:"createdAt"`
	UpdatedAt         string              `json:"updatedAt"`
}

// ToDomainProvider конвертирует HTTP запрос в доменную модель
// providerID приходит из пути запроса
func (r *UpsertProviderRequest) ToDomainProvider(providerID string) (*domain.Provider, error) {
	capabilities := make([]domain.Capability, 0, len(r.Capabilities))
	for _, c := range r.Capabilities {
		skill, ok := domain.ParseSkillLevel(c.SkillLevel)
		if !ok {
			return nil, fmt.Errorf("unknown skill level %q for service %s", c.SkillLevel, c.ServiceID)
		}
		capabilities = append(capabilities, domain.Capability{
			ServiceID:  c.ServiceID,
			SkillLevel: skill,
		})
	}

	availability := make([]domain.AvailabilityWindow, 0, len(r.Availability))
	for _, w := range r.Availability {
		date, err := time.Parse(domain.DateFormat, w.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid availability date %q: %v", w.Date, err)
		}
		availability = append(availability, domain.AvailabilityWindow{
			Date:      date,
			StartTime: types.TimeString(w.StartTime),
			EndTime:   types.TimeString(w.EndTime),
		})
	}

	return &domain.Provider{
		ID:                providerID,
		Name:              r.Name,
		Rating:            r.Rating,
		CompletedJobs:     r.CompletedJobs,
		MaxTravelDistance: r.MaxTravelDistance,
		Location: domain.Location{
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		},
		Capabilities: capabilities,
		Availability: availability,
	}, nil
}

// FromDomainProvider конвертирует доменную модель в HTTP response
func FromDomainProvider(p *domain.Provider) *ProviderResponse {
	capabilities := make([]CapabilityModel, 0, len(p.Capabilities))
	for _, c := range p.Capabilities {
		capabilities = append(capabilities, CapabilityModel{
			ServiceID:  c.ServiceID,
			SkillLevel: c.SkillLevel.String(),
		})
	}

	availability := make([]AvailabilityModel, 0, len(p.Availability))
	for _, w := range p.Availability {
		availability = append(availability, AvailabilityModel{
			Date:      w.Date.Format(domain.DateFormat),
			StartTime: w.StartTime.String(),
			EndTime:   w.EndTime.String(),
		})
	}

	return &ProviderResponse{
		ID:                p.ID,
		Name:              p.Name,
		Rating:            p.Rating,
		CompletedJobs:     p.CompletedJobs,
		MaxTravelDistance: p.MaxTravelDistance,
		Latitude:          p.Location.Latitude,
		Longitude:         p.Location.Longitude,
		Capabilities:      capabilities,
		Availability:      availability,
		CreatedAt:         p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         p.UpdatedAt.Format(time.RFC3339),
	}
}
