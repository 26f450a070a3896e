package intelligence

import (
	"autoOpsAI/domain"
	"math"
	"time"
)

const hoursPerDay = 24.0

// dates further out than this are not representable as a useful projection
const maxProjectionDays = 3650

// ChurnAssessment is the churn risk plus the signals that produced it.
type ChurnAssessment struct {
	Risk                  int
	EngagementScore       float64
	TrailingFrequency     float64
	FrequencyDropPct      float64 // 0..100
	LTVShortfallPct       float64 // 0..100
	DaysSinceLastPurchase float64
}

// ChurnRisk scores one customer against its orders from the trailing
// observation window. The caller does the windowing; every order passed in
// counts toward the trailing frequency.
func ChurnRisk(cfg Config, customer domain.Customer, orders []domain.Order, now time.Time) ChurnAssessment {
	periods := float64(cfg.ObservationPeriods)
	if periods <= 0 {
		periods = defaultObservationPeriods
	}

	engagement := clampFloat(customer.EngagementScore, 0, 100)
	engagementRisk := (100 - engagement) * cfg.EngagementWeight

	trailing := float64(len(orders)) / periods
	var dropPct float64
	baseline := orZero(customer.PurchaseFrequency)
	if baseline > 0 {
		dropPct = math.Max(0, (baseline-trailing)/baseline) * 100
	}
	frequencyRisk := dropPct * cfg.FrequencyWeight

	var shortfallPct float64
	if cfg.BaselineLTV > 0 {
		ltv := math.Max(0, orZero(customer.LTV))
		shortfallPct = math.Max(0, (cfg.BaselineLTV-ltv)/cfg.BaselineLTV) * 100
	}
	ltvRisk := shortfallPct * cfg.LTVWeight

	days := daysSince(customer.LastPurchase, now, cfg.RecencyCapDays)
	recencyRisk := math.Min(100, days/cfg.RecencyCapDays*100) * cfg.RecencyWeight

	risk := orZero(engagementRisk) + orZero(frequencyRisk) + orZero(ltvRisk) + orZero(recencyRisk)

	return ChurnAssessment{
		Risk:                  clampScore(risk),
		EngagementScore:       engagement,
		TrailingFrequency:     trailing,
		FrequencyDropPct:      dropPct,
		LTVShortfallPct:       shortfallPct,
		DaysSinceLastPurchase: days,
	}
}

// daysSince returns whole-and-fractional days between last and now. A zero
// timestamp means no purchase on record and scores as the cap; a timestamp
// in the future scores as 0.
func daysSince(last, now time.Time, capDays float64) float64 {
	if last.IsZero() {
		return capDays
	}
	days := now.Sub(last).Hours() / hoursPerDay
	if days < 0 || !finite(days) {
		return 0
	}
	return days
}

// InventoryAssessment is the shortage risk for one product.
//
// DaysOfStock is the raw projection. StockoutDate is that projection
// clamped to [now, now+maxProjectionDays], so past ten years the two stop
// agreeing and reasons should quote DaysOfStock.
type InventoryAssessment struct {
	Risk         int
	StockoutDate time.Time
	DemandGap    float64
	WeeklyDemand float64
	DaysOfStock  float64
}

// InventoryRisk projects days of stock left from the trailing weekly demand.
// Orders for other products are ignored.
func InventoryRisk(cfg Config, product domain.Product, orders []domain.Order, now time.Time) InventoryAssessment {
	weeks := float64(cfg.InventoryWeeks)
	if weeks <= 0 {
		weeks = defaultInventoryWeeks
	}

	var sold float64
	for _, o := range orders {
		if o.ProductID != product.ID {
			continue
		}
		sold += float64(o.Quantity)
	}
	weekly := sold / weeks

	if weekly <= 0 || !finite(weekly) {
		return InventoryAssessment{
			Risk:         0,
			StockoutDate: now.AddDate(0, 0, cfg.FallbackHorizonDays),
			DemandGap:    0,
		}
	}

	stock := math.Max(0, orZero(product.StockQuantity))
	daysOfStock := stock / weekly * 7

	horizon := cfg.InventoryHorizonDays
	risk := (horizon - daysOfStock) / horizon * 100

	projected := daysOfStock
	if !finite(projected) {
		projected = float64(cfg.FallbackHorizonDays)
	}

	return InventoryAssessment{
		Risk:         clampScore(risk),
		StockoutDate: addDays(now, projected),
		DemandGap:    math.Round(math.Max(0, weekly-stock/weeks)),
		WeeklyDemand: weekly,
		DaysOfStock:  daysOfStock,
	}
}

// addDays clamps days to [0, maxProjectionDays] so AddDate never overflows.
func addDays(t time.Time, days float64) time.Time {
	days = clampFloat(days, 0, maxProjectionDays)
	whole := math.Floor(days)
	frac := days - whole
	return t.AddDate(0, 0, int(whole)).Add(time.Duration(frac * hoursPerDay * float64(time.Hour)))
}
