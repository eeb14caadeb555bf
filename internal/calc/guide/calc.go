package guide

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"Railcalc/internal/catalog"
)

// UnknownVariant is reported when no rule matches.
const UnknownVariant = "unknown"

type Result struct {
	OK      bool     `json:"ok"`
	Variant string   `json:"variant"`
	Load    float64  `json:"load,omitempty"`
	Rows    []Row    `json:"rows"`
	Notes   []string `json:"notes"`
}

// Engine selects a variant and ranks the catalog against it. It keeps no
// state between calls and is safe for concurrent use.
type Engine struct {
	variants []Variant
	log      *slog.Logger
}

func NewEngine(log *slog.Logger) *Engine {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{variants: Variants(), log: log}
}

func (e *Engine) Variants() []Variant {
	out := make([]Variant, len(e.variants))
	copy(out, e.variants)
	return out
}

// Select returns the first matching variant or ErrUnhandledConfiguration.
func (e *Engine) Select(in Input) (Variant, error) {
	for _, v := range e.variants {
		if v.Matches(in) {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("plane=%s guides=%d carriages=%d eccentric=%t: %w",
		in.Plane, in.GuideCount, in.CarriageCount, in.hasEccentricity(), ErrUnhandledConfiguration)
}

// Evaluate runs dispatch and the matched formula without touching a catalog.
func (e *Engine) Evaluate(in Input) (Variant, Evaluation, error) {
	v, err := e.Select(in)
	if err != nil {
		return Variant{}, Evaluation{}, err
	}
	ev, err := v.Evaluate(in)
	if err != nil {
		return v, Evaluation{}, err
	}
	return v, ev, nil
}

// Calculate is the whole pipeline. A configuration no rule covers is a
// normal result with OK=false; a matched rule that rejects the geometry
// returns an error wrapping ErrInvalidConfiguration.
func (e *Engine) Calculate(in Input, items []catalog.Item) (Result, error) {
	v, ev, err := e.Evaluate(in)
	if errors.Is(err, ErrUnhandledConfiguration) {
		e.log.Warn("no variant for configuration",
			"compact", in.IsCompact, "plane", in.Plane,
			"guides", in.GuideCount, "carriages", in.CarriageCount)
		return unhandled(err), nil
	}
	if err != nil {
		return Result{}, err
	}

	e.log.Debug("variant evaluated", "variant", v.Name, "components", ev.Components.String())
	return assemble(v, ev, Rank(ev.Components, items)), nil
}

func assemble(v Variant, ev Evaluation, rows []Row) Result {
	notes := make([]string, len(ev.Notes))
	copy(notes, ev.Notes)
	return Result{
		OK:      true,
		Variant: v.Name,
		Load:    ev.Load,
		Rows:    rows,
		Notes:   notes,
	}
}

func unhandled(err error) Result {
	return Result{
		OK:      false,
		Variant: UnknownVariant,
		Rows:    []Row{},
		Notes:   []string{"no calculation rule covers this configuration", err.Error()},
	}
}
