package director

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ivlev/pcrcam/internal/pcr"
)

// Easing maps a 0..1 progress between two keys to an interpolation factor.
type Easing func(t float64) float64

// Linear keeps progress unchanged
func Linear(t float64) float64 { return t }

// EaseInOutCubic applies smooth easing function
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - pow(-2*t+2, 3)/2
}

// ParseEasing accepts "linear" or "ease".
func ParseEasing(name string) (Easing, error) {
	switch strings.ToLower(name) {
	case "", "linear":
		return Linear, nil
	case "ease", "ease-in-out":
		return EaseInOutCubic, nil
	default:
		return nil, fmt.Errorf("unknown easing: %s", name)
	}
}

// Bake densifies the keys of every camera in the take, see BakeCamera.
func Bake(take *Take, step int, easing Easing) error {
	for i := range take.Cameras {
		if err := BakeCamera(&take.Cameras[i], step, easing); err != nil {
			return fmt.Errorf("camera %s: %w", take.Cameras[i].Name, err)
		}
	}
	return nil
}

// BakeCamera sorts the camera's keys by frame and inserts a key every step
// frames between each pair of neighbours. Numeric and vector attributes set
// on both neighbours are interpolated; anything else holds the earlier
// key's value. Original keys are kept.
func BakeCamera(ct *CameraTake, step int, easing Easing) error {
	if step <= 0 {
		return fmt.Errorf("bake step must be positive, got %d", step)
	}
	if easing == nil {
		easing = Linear
	}

	keys := make([]Key, len(ct.Keys))
	copy(keys, ct.Keys)
	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i].Frame < keys[j].Frame
	})

	var baked []Key
	for i, key := range keys {
		baked = append(baked, key)
		if i == len(keys)-1 {
			break
		}
		next := keys[i+1]
		span := next.Frame - key.Frame
		for f := key.Frame + step; f < next.Frame; f += step {
			t := easing(float64(f-key.Frame) / float64(span))
			baked = append(baked, Key{
				Frame:  f,
				Data:   interpolateAttributes(key.Data, next.Data, t),
				Object: interpolateAttributes(key.Object, next.Object, t),
			})
		}
	}

	ct.Keys = baked
	return nil
}

func interpolateAttributes(from, to Attributes, t float64) Attributes {
	if len(from) == 0 {
		return nil
	}
	out := make(Attributes, 0, len(from))
	for _, attr := range from {
		value := attr.Value
		if target, ok := to.Get(attr.Name); ok {
			value = interpolateValue(attr.Value, target, t)
		}
		out = append(out, Attribute{Name: attr.Name, Value: value})
	}
	return out
}

// interpolateValue blends numbers and equal-length vectors and holds
// everything else at a.
func interpolateValue(a, b pcr.Value, t float64) pcr.Value {
	if x, ok := a.Float(); ok {
		if y, ok := b.Float(); ok {
			return pcr.Number(lerp(x, y, t))
		}
		return a
	}
	if x, ok := a.Components(); ok {
		y, ok := b.Components()
		if !ok || len(x) != len(y) {
			return a
		}
		for i := range x {
			x[i] = lerp(x[i], y[i], t)
		}
		return pcr.Vector(x...)
	}
	return a
}

// lerp performs linear interpolation between a and b
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// pow calculates x^n
func pow(x float64, n int) float64 {
	result := 1.0
	for i := 0; i < n; i++ {
		result *= x
	}
	return result
}
