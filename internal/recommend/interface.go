package recommend

import (
	"github.com/haziqachik/pcdiag/internal/classify"
	"github.com/haziqachik/pcdiag/internal/errors"
)

// Category is one of the five hardware areas a run always reports on.
type Category string

const (
	CategoryRAM     Category = "RAM"
	CategoryGPU     Category = "GPU"
	CategoryStorage Category = "Storage"
	CategoryPSU     Category = "PSU"
	CategoryCooling Category = "Cooling"
)

// Priority is an ordered upgrade urgency. Higher values compare greater.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// BudgetStatus tags an option against the caller's budget. Options are
// tagged, never filtered, so the full option space is always visible.
type BudgetStatus string

const (
	WithinBudget BudgetStatus = "within_budget"
	OverBudget   BudgetStatus = "over_budget"
)

// UpgradeOption is one costed path for a category.
type UpgradeOption struct {
	Label            string       `json:"label"`
	EstimatedCostUSD int          `json:"estimated_cost_usd"`
	Notes            string       `json:"notes"`
	BudgetStatus     BudgetStatus `json:"budget_status"`
}

// UpgradeRecommendation is the verdict for one hardware category.
// CriticalWarning is set only when a hard failure signal is present.
type UpgradeRecommendation struct {
	Category        Category        `json:"category"`
	Priority        Priority        `json:"priority"`
	Reason          string          `json:"reason"`
	Options         []UpgradeOption `json:"options"`
	CriticalWarning string          `json:"critical_warning,omitempty"`
}

// Params are the invocation parameters from the caller.
type Params struct {
	UseCase           classify.UseCase `json:"use_case"`
	BudgetUSD         int              `json:"budget_usd"`
	TargetFPS         int              `json:"target_fps"`
	TargetBitrateKbps int              `json:"target_bitrate_kbps"`
}

func (p Params) Validate() error {
	errFactory := errors.New()

	if !p.UseCase.IsValid() {
		return errFactory.WithData(errors.ErrInvalidUseCase, string(p.UseCase))
	}
	if p.BudgetUSD < 0 {
		return errFactory.WithData(errors.ErrInvalidBudget, p.BudgetUSD)
	}
	if p.TargetFPS < 0 {
		return errFactory.WithMessage(errors.ErrInvalidArgument, "target FPS must not be negative")
	}
	if p.TargetBitrateKbps < 0 {
		return errFactory.WithMessage(errors.ErrInvalidArgument, "target bitrate must not be negative")
	}
	return nil
}
