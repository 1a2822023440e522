package batch

import (
	"fmt"

	mix "AceMix/internal/calc/mix"
)

type MixBatchInput struct {
	Items []mix.Input `json:"items"`
}

type MixBatchResult struct {
	Results []mix.Result `json:"results"`
}

// CalculateMix proportions every design in the batch. The first failing item
// aborts the batch so a partial result set is never returned.
func CalculateMix(in MixBatchInput) (MixBatchResult, error) {
	if len(in.Items) == 0 {
		return MixBatchResult{}, fmt.Errorf("no items")
	}
	out := MixBatchResult{Results: make([]mix.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := mix.Calculate(item)
		if err != nil {
			return MixBatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
