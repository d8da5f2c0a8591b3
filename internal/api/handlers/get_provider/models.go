package get_provider

import (
	"time"

	"github.com/m04kA/SMC-MatchingService/internal/domain"
)

// CapabilityModel услуга исполнителя
type CapabilityModel struct {
	ServiceID  string `json:"serviceId"`
	SkillLevel string `json:"skillLevel"`
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
