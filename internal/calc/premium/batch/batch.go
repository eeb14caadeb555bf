package batch

import (
	"fmt"

	"Railcalc/internal/calc/guide"
	"Railcalc/internal/catalog"
)

type Input struct {
	Items []guide.Input `json:"items"`
}

type Entry struct {
	Row    int           `json:"row"`
	Input  guide.Input   `json:"input"`
	Result *guide.Result `json:"result,omitempty"`
	Error  string        `json:"error,omitempty"`
}

type Result struct {
	Count   int     `json:"count"`
	Failed  int     `json:"failed"`
	Entries []Entry `json:"entries"`
}

// Calculate evaluates every configuration against one catalog snapshot.
// A rejected configuration is recorded on its entry and does not stop the
// rest.
func Calculate(engine *guide.Engine, inputs []guide.Input, items []catalog.Item) (Result, error) {
	if len(inputs) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Entries: make([]Entry, 0, len(inputs))}
	for i, in := range inputs {
		entry := Entry{Row: i + 1, Input: in}
		res, err := calculateOne(engine, in, items)
		if err != nil {
			entry.Error = err.Error()
			out.Failed++
		} else {
			entry.Result = &res
		}
		out.Entries = append(out.Entries, entry)
	}
	out.Count = len(out.Entries)
	return out, nil
}

func calculateOne(engine *guide.Engine, in guide.Input, items []catalog.Item) (guide.Result, error) {
	if err := in.Validate(); err != nil {
		return guide.Result{}, err
	}
	return engine.Calculate(in, items)
}
