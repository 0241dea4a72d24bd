package recommend

import (
	"github.com/haziqachik/pcdiag/internal/classify"
	"github.com/haziqachik/pcdiag/internal/errors"
	"github.com/haziqachik/pcdiag/internal/snapshot"
)

// Recommend produces exactly one recommendation per hardware category,
// in a fixed order: RAM, GPU, Storage, PSU, Cooling. A category with no
// detected issue still gets a low-priority entry affirming adequacy.
// Output is deterministic for a fixed snapshot and parameter set.
func Recommend(snap *snapshot.SystemSnapshot, bottlenecks []classify.Bottleneck, p Params) ([]UpgradeRecommendation, error) {
	errFactory := errors.New()

	if snap == nil {
		return nil, errFactory.New(errors.ErrInvalidArgument).WithMessage("nil snapshot")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	recs := []UpgradeRecommendation{
		memoryRecommendation(snap, p),
		gpuRecommendation(snap, p),
		storageRecommendation(snap, bottlenecks, p),
		powerRecommendation(snap),
		coolingRecommendation(snap),
	}

	tagBudget(recs, p.BudgetUSD)

	return recs, nil
}

// tagBudget marks every option as within or over the caller's budget.
// Over-budget options stay in the list so the consumer always sees the
// full option space.
func tagBudget(recs []UpgradeRecommendation, budgetUSD int) {
	for i := range recs {
		for j := range recs[i].Options {
			if recs[i].Options[j].EstimatedCostUSD <= budgetUSD {
				recs[i].Options[j].BudgetStatus = WithinBudget
			} else {
				recs[i].Options[j].BudgetStatus = OverBudget
			}
		}
	}
}

func maxPriority(a, b Priority) Priority {
	if a > b {
		return a
	}

	return b
}
