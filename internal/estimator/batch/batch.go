package batch

import (
	"fmt"

	estimator "Solara/internal/estimator"
)

type Input struct {
	Items []estimator.Input `json:"items"`
}

type Result struct {
	Results []estimator.Result `json:"results"`
}

func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]estimator.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		if err := estimator.ValidateInput(item); err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, estimator.Calculate(item))
	}
	return out, nil
}
