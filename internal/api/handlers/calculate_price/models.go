package calculate_price

import (
	"fmt"

	"github.com/m04kA/SMC-MatchingService/internal/domain"
	calculatePrice "github.com/m04kA/SMC-MatchingService/internal/usecase/calculate_price"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	HomeSize string       `json:"homeSize"` // "small" | "medium" | "large" | "xlarge"
	TimeSlot string       `json:"timeSlot"` // "standard" | "peak" | "off_peak"
	Addons   []AddonModel `json:"addons,omitempty"`
}

// AddonModel дополнительная опция
type AddonModel struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// TimeSlotDetailModel детализация надбавки за время
type TimeSlotDetailModel struct {
	Slot       string  `json:"slot"`
	Multiplier float64 `json:"multiplier"`
	Adjustment float64 `json:"adjustment"`
}

// BreakdownModel построчная детализация расчета
type BreakdownModel struct {
	HomeSize  string              `json:"homeSize"`
	BasePrice float64             `json:"basePrice"`
	Addons    []AddonModel        `json:"addons"`
	TimeSlot  TimeSlotDetailModel `json:"timeSlot"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	BasePrice          float64        `json:"basePrice"`
	AddonPrice         float64        `json:"addonPrice"`
	TimeSlotAdjustment float64        `json:"timeSlotAdjustment"`
	TotalPrice         float64        `json:"totalPrice"`
	Breakdown          BreakdownModel `json:"breakdown"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() (*calculatePrice.Request, error) {
	homeSize, ok := domain.ParseHomeSize(r.HomeSize)
	if !ok {
		return nil, fmt.Errorf("unknown home size %q", r.HomeSize)
	}

	timeSlot, ok := domain.ParsePriceTimeSlot(r.TimeSlot)
	if !ok {
		return nil, fmt.Errorf("unknown time slot %q", r.TimeSlot)
	}

	addons := make([]domain.Addon, 0, len(r.Addons))
	for _, a := range r.Addons {
		addons = append(addons, domain.Addon{
			ID:    a.ID,
			Name:  a.Name,
			Price: a.Price,
		})
	}

	return &calculatePrice.Request{
		Params: &domain.PricingParams{
			HomeSize: homeSize,
			TimeSlot: timeSlot,
			Addons:   addons,
		},
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculatePrice.Response) *QuoteResponse {
	result := resp.Result

	addons := make([]AddonModel, 0, len(result.Breakdown.Addons))
	for _, a := range result.Breakdown.Addons {
		addons = append(addons, AddonModel{
			ID:    a.ID,
			Name:  a.Name,
			Price: a.Price,
		})
	}

	return &QuoteResponse{
		BasePrice:          result.BasePrice,
		AddonPrice:         result.AddonPrice,
		TimeSlotAdjustment: result.TimeSlotAdjustment,
		TotalPrice:         result.TotalPrice,
		Breakdown: BreakdownModel{
			HomeSize:  string(result.Breakdown.HomeSize),
			BasePrice: result.Breakdown.BasePrice,
			Addons:    addons,
			TimeSlot: TimeSlotDetailModel{
				Slot:       string(result.Breakdown.TimeSlot.Slot),
				Multiplier: result.Breakdown.TimeSlot.Multiplier,
				Adjustment: result.Breakdown.TimeSlot.Adjustment,
			},
		},
	}
}
