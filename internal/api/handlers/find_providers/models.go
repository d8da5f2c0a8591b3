package find_providers

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-MatchingService/internal/domain"
	findProviders "github.com/m04kA/SMC-MatchingService/internal/usecase/find_providers"
	"github.com/m04kA/SMC-MatchingService/pkg/ptr"
	"github.com/m04kA/SMC-MatchingService/pkg/types"
)

// SearchRequest HTTP request model
type SearchRequest struct {
	ServiceID          string        `json:"serviceId"`
	Date               string        `json:"date"` // "2025-10-15"
	TimeSlot           TimeSlotModel `json:"timeSlot"`
	Location           LocationModel `json:"location"`
	PreferredProviders []string      `json:"preferredProviders,omitempty"`
	ExcludedProviders  []string      `json:"excludedProviders,omitempty"`
	Options            *OptionsModel `json:"options,omitempty"`
}

// TimeSlotModel запрошенный интервал времени
type TimeSlotModel struct {
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "12:00"
}

// LocationModel координаты точки
type LocationModel struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OptionsModel ограничения и веса подбора
type OptionsModel struct {
	MinRating            *float64 `json:"minRating,omitempty"`
	MaxDistance          *float64 `json:"maxDistance,omitempty"`
	MinCompletedJobs     *int     `json:"minCompletedJobs,omitempty"`
	RequiredSkillLevel   *string  `json:"requiredSkillLevel,omitempty"` // "beginner".."expert"
	PrioritizeRating     bool     `json:"prioritizeRating,omitempty"`
	PrioritizeExperience bool     `json:"prioritizeExperience,omitempty"`
}

// ProviderModel исполнитель в ответе
type ProviderModel struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Rating            float64 `json:"rating"`
	CompletedJobs     int     `json:"completedJobs"`
	MaxTravelDistance float64 `json:"maxTravelDistance"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
}

// ScoresModel разбивка балла по факторам
type ScoresModel struct {
	Distance   float64 `json:"distance"`
	Rating     float64 `json:"rating"`
	Experience float64 `json:"experience"`
	SkillLevel float64 `json:"skillLevel"`
}

// MatchModel один элемент ранжированной выдачи
type MatchModel struct {
	Provider   ProviderModel `json:"provider"`
	Distance   float64       `json:"distance"`
	MatchScore float64       `json:"matchScore"`
	Scores     ScoresModel   `json:"scores"`
}

// SearchResponse HTTP response model
type SearchResponse struct {
	Matches []MatchModel `json:"matches"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SearchRequest) ToUseCaseRequest() (*findProviders.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %v", err)
	}

	booking := &domain.BookingRequest{
		ServiceID: r.ServiceID,
		Date:      date,
		TimeSlot: domain.TimeSlot{
			StartTime: types.TimeString(r.TimeSlot.StartTime),
			EndTime:   types.TimeString(r.TimeSlot.EndTime),
		},
		Location: domain.Location{
			Latitude:  r.Location.Latitude,
			Longitude: r.Location.Longitude,
		},
		PreferredProviders: r.PreferredProviders,
		ExcludedProviders:  r.ExcludedProviders,
	}

	var opts *domain.MatchingOptions
	if r.Options != nil {
		opts = &domain.MatchingOptions{
			MinRating:            r.Options.MinRating,
			MaxDistance:          r.Options.MaxDistance,
			MinCompletedJobs:     r.Options.MinCompletedJobs,
			PrioritizeRating:     r.Options.PrioritizeRating,
			PrioritizeExperience: r.Options.PrioritizeExperience,
		}
		if r.Options.RequiredSkillLevel != nil {
			skill, ok := domain.ParseSkillLevel(*r.Options.RequiredSkillLevel)
			if !ok {
				return nil, fmt.Errorf("unknown skill level %q", *r.Options.RequiredSkillLevel)
			}
			opts.RequiredSkillLevel = ptr.Ptr(skill)
		}
	}

	return &findProviders.Request{Booking: booking, Options: opts}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findProviders.Response) *SearchResponse {
	matches := make([]MatchModel, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		matches = append(matches, MatchModel{
			Provider: ProviderModel{
				ID:                m.Provider.ID,
				Name:              m.Provider.Name,
				Rating:            m.Provider.Rating,
				CompletedJobs:     m.Provider.CompletedJobs,
				MaxTravelDistance: m.Provider.MaxTravelDistance,
				Latitude:          m.Provider.Location.Latitude,
				Longitude:         m.Provider.Location.Longitude,
			},
			Distance:   m.Distance,
			MatchScore: m.MatchScore,
			Scores: ScoresModel{
				Distance:   m.Scores.Distance,
				Rating:     m.Scores.Rating,
				Experience: m.Scores.Experience,
				SkillLevel: m.Scores.SkillLevel,
			},
		})
	}
	return &SearchResponse{Matches: matches}
}
