package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
)

const (
	// VectorSize is the number of identity vector components.
	VectorSize = 4

	// DefaultComponent stands in for a missing component.
	DefaultComponent = 0.5
)

// ReflectionDelta is added to the author's vector for every reflection.
var ReflectionDelta = Vector{0, 0, 0, 0.1}

// Vector is a user's identity vector. Components live in [0, 1].
//
// A nil Vector is valid and means "never computed"; Normalize expands it to
// the default. It is stored as a JSONB array.
type Vector []float64

// DefaultVector returns a vector with every component at DefaultComponent.
func DefaultVector() Vector {
	v := make(Vector, VectorSize)
	for i := range v {
		v[i] = DefaultComponent
	}
	return v
}

// Normalize returns a VectorSize copy of v with missing components filled
// with DefaultComponent and every component clamped to [0, 1].
func (v Vector) Normalize() Vector {
	out := DefaultVector()
	for i := 0; i < VectorSize && i < len(v); i++ {
		out[i] = clamp(v[i])
	}
	return out
}

// Add returns the normalized sum of v and delta, clamped per component.
func (v Vector) Add(delta Vector) Vector {
	out := v.Normalize()
	for i := 0; i < VectorSize && i < len(delta); i++ {
		out[i] = clamp(out[i] + delta[i])
	}
	return out
}

// Distance is the Euclidean distance between the normalized forms of a and b.
func Distance(a, b Vector) float64 {
	na, nb := a.Normalize(), b.Normalize()
	var sum float64
	for i := range na {
		d := na[i] - nb[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// GrowthPercent is the distance between two vectors as a rounded percentage.
func GrowthPercent(current, previous Vector) int {
	return int(math.Round(100 * Distance(current, previous)))
}

func clamp(f float64) float64 {
	switch {
	case math.IsNaN(f):
		return DefaultComponent
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

// Value implements driver.Valuer.
func (v Vector) Value() (driver.Value, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal([]float64(v))
	if err != nil {
		return nil, fmt.Errorf("encode vector: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner. JSON nulls inside the array become DefaultComponent.
func (v *Vector) Scan(src any) error {
	var raw []byte
	switch s := src.(type) {
	case nil:
		*v = nil
		return nil
	case []byte:
		raw = s
	case string:
		raw = []byte(s)
	default:
		return fmt.Errorf("cannot scan %T into Vector", src)
	}

	var components []*float64
	if err := json.Unmarshal(raw, &components); err != nil {
		return fmt.Errorf("decode vector: %w", err)
	}
	if components == nil {
		*v = nil
		return nil
	}

	out := make(Vector, len(components))
	for i, c := range components {
		if c == nil {
			out[i] = DefaultComponent
			continue
		}
		out[i] = *c
	}
	*v = out
	return nil
}
