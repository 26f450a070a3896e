package intelligence

import (
	"autoOpsAI/domain"
	"errors"
	"fmt"
	"time"
)

// Config carries every policy constant the engine uses. None of these are
// derived values; operators override them per deployment.
type Config struct {
	// churn sub-signal weights, summing to 1
	EngagementWeight float64
	FrequencyWeight  float64
	LTVWeight        float64
	RecencyWeight    float64

	BaselineLTV    float64
	RecencyCapDays float64

	// trailing window for churn: ObservationPeriods x ChurnPeriod
	ObservationPeriods int
	ChurnPeriod        time.Duration

	// trailing window for inventory, in weeks
	InventoryWeeks       int
	InventoryHorizonDays float64
	FallbackHorizonDays  int

	ChurnThreshold           int
	InventoryThreshold       int
	ChurnConfidenceBoost     int
	ChurnConfidenceCap       int
	InventoryConfidenceBoost int
	InventoryConfidenceCap   int
	ChurnTrendOffset         int
	InventoryTrendOffset     int
	ChurnTTL                 time.Duration
	InventoryTTL             time.Duration

	RetentionRecoveryRate   float64
	ChurnPriorityCutoff     float64
	InventoryPriorityCutoff float64

	HoursSavedPerAction    float64
	HealthConfidenceWeight float64
	HealthExecutionWeight  float64

	LeadCompanySizeNorm   float64
	LeadIntentValue       float64
	LeadBaseConfidence    float64
	LeadIntentConfidence  float64
	LeadBudgetConfidence  float64
	LeadRecencyConfidence float64

	CurrencySymbol string
}

const (
	defaultEngagementWeight = 0.40
	defaultFrequencyWeight  = 0.30
	defaultLTVWeight        = 0.20
	defaultRecencyWeight    = 0.10

	defaultBaselineLTV        = 5000.0
	defaultRecencyCapDays     = 30.0
	defaultObservationPeriods = 4
	defaultChurnPeriod        = 30 * 24 * time.Hour

	defaultInventoryWeeks       = 4
	defaultInventoryHorizonDays = 30.0
	defaultFallbackHorizonDays  = 365

	defaultChurnThreshold           = 60
	defaultInventoryThreshold       = 50
	defaultChurnConfidenceBoost     = 10
	defaultChurnConfidenceCap       = 95
	defaultInventoryConfidenceBoost = 15
	defaultInventoryConfidenceCap   = 90
	defaultChurnTrendOffset         = 15
	defaultInventoryTrendOffset     = 10
	defaultChurnTTL                 = 7 * 24 * time.Hour
	defaultInventoryTTL             = 3 * 24 * time.Hour

	defaultRetentionRecoveryRate   = 0.70
	defaultChurnPriorityCutoff     = 10000.0
	defaultInventoryPriorityCutoff = 5000.0

	defaultHoursSavedPerAction    = 2.0
	defaultHealthConfidenceWeight = 0.9
	defaultHealthExecutionWeight  = 10.0

	defaultLeadCompanySizeNorm   = 500.0
	defaultLeadIntentValue       = 1000.0
	defaultLeadBaseConfidence    = 50.0
	defaultLeadIntentConfidence  = 10.0
	defaultLeadBudgetConfidence  = 20.0
	defaultLeadRecencyConfidence = 15.0

	defaultCurrencySymbol = "₹"
)

func DefaultConfig() Config {
	return Config{
		EngagementWeight: defaultEngagementWeight,
		FrequencyWeight:  defaultFrequencyWeight,
		LTVWeight:        defaultLTVWeight,
		RecencyWeight:    defaultRecencyWeight,

		BaselineLTV:        defaultBaselineLTV,
		RecencyCapDays:     defaultRecencyCapDays,
		ObservationPeriods: defaultObservationPeriods,
		ChurnPeriod:        defaultChurnPeriod,

		InventoryWeeks:       defaultInventoryWeeks,
		InventoryHorizonDays: defaultInventoryHorizonDays,
		FallbackHorizonDays:  defaultFallbackHorizonDays,

		ChurnThreshold:           defaultChurnThreshold,
		InventoryThreshold:       defaultInventoryThreshold,
		ChurnConfidenceBoost:     defaultChurnConfidenceBoost,
		ChurnConfidenceCap:       defaultChurnConfidenceCap,
		InventoryConfidenceBoost: defaultInventoryConfidenceBoost,
		InventoryConfidenceCap:   defaultInventoryConfidenceCap,
		ChurnTrendOffset:         defaultChurnTrendOffset,
		InventoryTrendOffset:     defaultInventoryTrendOffset,
		ChurnTTL:                 defaultChurnTTL,
		InventoryTTL:             defaultInventoryTTL,

		RetentionRecoveryRate:   defaultRetentionRecoveryRate,
		ChurnPriorityCutoff:     defaultChurnPriorityCutoff,
		InventoryPriorityCutoff: defaultInventoryPriorityCutoff,

		HoursSavedPerAction:    defaultHoursSavedPerAction,
		HealthConfidenceWeight: defaultHealthConfidenceWeight,
		HealthExecutionWeight:  defaultHealthExecutionWeight,

		LeadCompanySizeNorm:   defaultLeadCompanySizeNorm,
		LeadIntentValue:       defaultLeadIntentValue,
		LeadBaseConfidence:    defaultLeadBaseConfidence,
		LeadIntentConfidence:  defaultLeadIntentConfidence,
		LeadBudgetConfidence:  defaultLeadBudgetConfidence,
		LeadRecencyConfidence: defaultLeadRecencyConfidence,

		CurrencySymbol: defaultCurrencySymbol,
	}
}

func (c Config) Validate() error {
	var errs []error

	for _, w := range []struct {
		name  string
		value float64
	}{
		{"engagement weight", c.EngagementWeight},
		{"frequency weight", c.FrequencyWeight},
		{"ltv weight", c.LTVWeight},
		{"recency weight", c.RecencyWeight},
		{"retention recovery rate", c.RetentionRecoveryRate},
		{"hours saved per action", c.HoursSavedPerAction},
	} {
		if w.value < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative", w.name))
		}
	}

	if c.RetentionRecoveryRate > 1 {
		errs = append(errs, errors.New("retention recovery rate must be at most 1"))
	}
	if c.ObservationPeriods <= 0 || c.ChurnPeriod <= 0 {
		errs = append(errs, errors.New("churn observation window must be positive"))
	}
	if c.InventoryWeeks <= 0 {
		errs = append(errs, errors.New("inventory window must be positive"))
	}
	if c.InventoryHorizonDays <= 0 || c.FallbackHorizonDays <= 0 {
		errs = append(errs, errors.New("inventory horizons must be positive"))
	}
	if c.RecencyCapDays <= 0 {
		errs = append(errs, errors.New("recency cap must be positive"))
	}

	return errors.Join(errs...)
}

// WithOverrides layers a persisted override row on top of c. Zero fields in
// the row keep the value already in c.
func (c Config) WithOverrides(o domain.IntelligenceConfig) Config {
	if o.BaselineLTV > 0 {
		c.BaselineLTV = o.BaselineLTV
	}
	if o.ChurnThreshold > 0 {
		c.ChurnThreshold = o.ChurnThreshold
	}
	if o.InventoryThreshold > 0 {
		c.InventoryThreshold = o.InventoryThreshold
	}
	if o.RetentionRecoveryRate > 0 {
		c.RetentionRecoveryRate = o.RetentionRecoveryRate
	}
	if o.FallbackHorizonDays > 0 {
		c.FallbackHorizonDays = o.FallbackHorizonDays
	}
	if o.ChurnPriorityCutoff > 0 {
		c.ChurnPriorityCutoff = o.ChurnPriorityCutoff
	}
	if o.InventoryPriorityCutoff > 0 {
		c.InventoryPriorityCutoff = o.InventoryPriorityCutoff
	}
	if o.HoursSavedPerAction > 0 {
		c.HoursSavedPerAction = o.HoursSavedPerAction
	}
	if o.ChurnTTLHours > 0 {
		c.ChurnTTL = time.Duration(o.ChurnTTLHours) * time.Hour
	}
	if o.InventoryTTLHours > 0 {
		c.InventoryTTL = time.Duration(o.InventoryTTLHours) * time.Hour
	}
	return c
}

// Overrides is the inverse of WithOverrides: the persisted view of c.
func (c Config) Overrides(scope string) domain.IntelligenceConfig {
	return domain.IntelligenceConfig{
		Scope:                   scope,
		BaselineLTV:             c.BaselineLTV,
		ChurnThreshold:          c.ChurnThreshold,
		InventoryThreshold:      c.InventoryThreshold,
		RetentionRecoveryRate:   c.RetentionRecoveryRate,
		FallbackHorizonDays:     c.FallbackHorizonDays,
		ChurnPriorityCutoff:     c.ChurnPriorityCutoff,
		InventoryPriorityCutoff: c.InventoryPriorityCutoff,
		HoursSavedPerAction:     c.HoursSavedPerAction,
		ChurnTTLHours:           int(c.ChurnTTL / time.Hour),
		InventoryTTLHours:       int(c.InventoryTTL / time.Hour),
	}
}
