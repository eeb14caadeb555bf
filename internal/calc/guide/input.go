package guide

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

type Plane string

const (
	PlaneFlat       Plane = "flat"
	PlaneVertical1  Plane = "vertical1"
	PlaneHorizontal Plane = "horizontal"
	PlaneWall       Plane = "wall"
	PlaneVertical2  Plane = "vertical2"
	PlaneWall2      Plane = "wall2"
)

var Planes = []Plane{PlaneFlat, PlaneVertical1, PlaneHorizontal, PlaneWall, PlaneVertical2, PlaneWall2}

func (p Plane) in(set ...Plane) bool {
	for _, s := range set {
		if p == s {
			return true
		}
	}
	return false
}

func (p Plane) Valid() bool { return p.in(Planes...) }

// Input is one mounting configuration. Lengths are meters, mass is kilograms.
type Input struct {
	IsCompact      bool    `json:"isCompact"`
	Mass           float64 `json:"mass"`
	L1             float64 `json:"l1"`
	L2             float64 `json:"l2"`
	L3             float64 `json:"l3"`
	L4             float64 `json:"l4"`
	L5             float64 `json:"l5"`
	MaxTemperature float64 `json:"maxTemperature"`
	AggressiveEnv  bool    `json:"aggressiveEnv"`
	GuideCount     int     `json:"guideCount"`
	CarriageCount  int     `json:"carriageCount"`
	Plane          Plane   `json:"plane"`
}

func (in Input) hasEccentricity() bool {
	return !(in.L1 == 0 && in.L2 == 0 && in.L3 == 0)
}

func (in Input) weight() float64 { return in.Mass * G }

// Validate checks the request-level rules. Geometric preconditions of a
// particular variant are checked by the variant itself.
func (in Input) Validate() error {
	if !(in.Mass > 0) {
		return &FieldError{Field: "mass", Reason: "must be > 0"}
	}
	if in.GuideCount != 1 && in.GuideCount != 2 {
		return &FieldError{Field: "guideCount", Reason: "must be 1 or 2"}
	}
	if in.CarriageCount != 1 && in.CarriageCount != 2 {
		return &FieldError{Field: "carriageCount", Reason: "must be 1 or 2"}
	}
	if !in.Plane.Valid() {
		return &FieldError{Field: "plane", Reason: fmt.Sprintf("unknown plane %q", in.Plane)}
	}
	return nil
}

// The configurator posts form values as strings, so numbers and booleans
// are accepted both raw and quoted.
type wireInput struct {
	IsCompact      flexBool   `json:"isCompact"`
	Mass           flexNumber `json:"mass"`
	L1             flexNumber `json:"l1"`
	L2             flexNumber `json:"l2"`
	L3             flexNumber `json:"l3"`
	L4             flexNumber `json:"l4"`
	L5             flexNumber `json:"l5"`
	MaxTemperature flexNumber `json:"maxTemperature"`
	AggressiveEnv  flexBool   `json:"aggressiveEnv"`
	GuideCount     flexNumber `json:"guideCount"`
	CarriageCount  flexNumber `json:"carriageCount"`
	Plane          string     `json:"plane"`
}

func (in *Input) UnmarshalJSON(data []byte) error {
	var w wireInput
	if err := json.Unmarshal(data, &w); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) && te.Field != "" {
			return &FieldError{Field: te.Field, Reason: fmt.Sprintf("cannot parse %s as a number", te.Value)}
		}
		return err
	}
	guides, err := w.GuideCount.integer("guideCount")
	if err != nil {
		return err
	}
	carriages, err := w.CarriageCount.integer("carriageCount")
	if err != nil {
		return err
	}
	*in = Input{
		IsCompact:      bool(w.IsCompact),
		Mass:           float64(w.Mass),
		L1:             float64(w.L1),
		L2:             float64(w.L2),
		L3:             float64(w.L3),
		L4:             float64(w.L4),
		L5:             float64(w.L5),
		MaxTemperature: float64(w.MaxTemperature),
		AggressiveEnv:  bool(w.AggressiveEnv),
		GuideCount:     guides,
		CarriageCount:  carriages,
		Plane:          Plane(strings.TrimSpace(w.Plane)),
	}
	return nil
}

type flexNumber float64

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = 0
		return nil
	}
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unq)
		if s == "" {
			*n = 0
			return nil
		}
	}
	v, err := ParseDecimal(s)
	if err != nil {
		// the decoder fills in the field name
		return &json.UnmarshalTypeError{Value: string(data), Type: reflect.TypeOf(float64(0))}
	}
	*n = flexNumber(v)
	return nil
}

func (n flexNumber) integer(field string) (int, error) {
	v := float64(n)
	if v != float64(int(v)) {
		return 0, &FieldError{Field: field, Reason: "must be an integer"}
	}
	return int(v), nil
}

type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	switch strings.TrimSpace(string(data)) {
	case "true", `"true"`:
		*b = true
	default:
		*b = false
	}
	return nil
}

// ParseDecimal parses a number written with either '.' or ',' as the
// fraction separator.
func ParseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.Replace(strings.TrimSpace(s), ",", ".", 1), 64)
}
