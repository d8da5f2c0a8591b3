package domain

import "strings"

// HomeSize категория размера жилья
type HomeSize string

const (
	HomeSizeSmall  HomeSize = "small"
	HomeSizeMedium HomeSize = "medium"
	HomeSizeLarge  HomeSize = "large"
	HomeSizeXLarge HomeSize = "xlarge"
)

// IsValid проверяет, что категория размера известна
func (h HomeSize) IsValid() bool {
	switch h {
	case HomeSizeSmall, HomeSizeMedium, HomeSizeLarge, HomeSizeXLarge:
		return true
	default:
		return false
	}
}

// ParseHomeSize разбирает категорию размера из строки
func ParseHomeSize(s string) (HomeSize, bool) {
	h := HomeSize(strings.ToLower(strings.TrimSpace(s)))
	return h, h.IsValid()
}

// PriceTimeSlot ценовая категория времени услуги
type PriceTimeSlot string

const (
	PriceSlotStandard PriceTimeSlot = "standard"
	PriceSlotPeak     PriceTimeSlot = "peak"
	PriceSlotOffPeak  PriceTimeSlot = "off_peak"
)

// IsValid проверяет, что ценовая категория известна
func (p PriceTimeSlot) IsValid() bool {
	switch p {
	case PriceSlotStandard, PriceSlotPeak, PriceSlotOffPeak:
		return true
	default:
		return false
	}
}

// ParsePriceTimeSlot разбирает ценовую категорию из строки
func ParsePriceTimeSlot(s string) (PriceTimeSlot, bool) {
	p := PriceTimeSlot(strings.ToLower(strings.TrimSpace(s)))
	return p, p.IsValid()
}

// Addon дополнительная платная опция к заказу
type Addon struct {
	ID    string
	Name  string
	Price float64 // >= 0
}

// PricingParams параметры расчета стоимости заказа
type PricingParams struct {
	HomeSize HomeSize
	TimeSlot PriceTimeSlot
	Addons   []Addon
}

// PricingConfig конфигурация цен
// Надбавка за время считается от базовой цены, не от суммы с опциями
type PricingConfig struct {
	BasePricing         map[HomeSize]float64
	TimeSlotMultipliers map[PriceTimeSlot]float64
}

// DefaultPricingConfig возвращает конфигурацию цен по умолчанию
func DefaultPricingConfig() *PricingConfig {
	return &PricingConfig{
		BasePricing: map[HomeSize]float64{
			HomeSizeSmall:  100,
			HomeSizeMedium: 150,
			HomeSizeLarge:  200,
			HomeSizeXLarge: 250,
		},
		TimeSlotMultipliers: map[PriceTimeSlot]float64{
			PriceSlotStandard: 0,
			PriceSlotPeak:     0.25,
			PriceSlotOffPeak:  -0.15,
		},
	}
}

// AddonLine строка дополнительной опции в детализации
type AddonLine struct {
	ID    string
	Name  string
	Price float64
}

// TimeSlotDetail детализация надбавки за время
type TimeSlotDetail struct {
	Slot       PriceTimeSlot
	Multiplier float64
	Adjustment float64
}

// PriceBreakdown детализация расчета, достаточная для построчного чека
type PriceBreakdown struct {
	HomeSize  HomeSize
	BasePrice float64
	Addons    []AddonLine
	TimeSlot  TimeSlotDetail
}

// PricingResult итог расчета стоимости
// Производное значение: никогда не сохраняется, пересчитывается на каждый вызов
// Инвариант: TotalPrice == BasePrice + AddonPrice + TimeSlotAdjustment
type PricingResult struct {
	BasePrice          float64
	AddonPrice         float64
	TimeSlotAdjustment float64
	TotalPrice         float64
	Breakdown          PriceBreakdown
}
