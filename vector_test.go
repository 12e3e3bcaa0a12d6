package barneshut

import (
	"math"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	v1 := Vec3{1, 2, 3}
	v2 := Vec3{4, 5, 6}

	if got, want := v1.Add(v2), (Vec3{5, 7, 9}); got != want {
		t.Errorf("Add: expected %v, got %v", want, got)
	}
	if got, want := v2.Sub(v1), (Vec3{3, 3, 3}); got != want {
		t.Errorf("Sub: expected %v, got %v", want, got)
	}
	if got, want := v1.Mul(2), (Vec3{2, 4, 6}); got != want {
		t.Errorf("Mul: expected %v, got %v", want, got)
	}
	if got, want := v2.Div(2), (Vec3{2, 2.5, 3}); got != want {
		t.Errorf("Div: expected %v, got %v", want, got)
	}
	if got, want := v1.Dot(v2), 32.0; got != want {
		t.Errorf("Dot: expected %v, got %v", want, got)
	}
}

func TestVec3Magnitude(t *testing.T) {
	magnitude := Vec3{3, 4, 0}.Magnitude()
	if math.Abs(magnitude-5.0) > 1e-10 {
		t.Errorf("Magnitude: expected 5.0, got %f", magnitude)
	}

	magnitudeSq := Vec3{3, 4, 0}.MagnitudeSq()
	if math.Abs(magnitudeSq-25.0) > 1e-10 {
		t.Errorf("MagnitudeSq: expected 25.0, got %f", magnitudeSq)
	}
}

func TestVec3Normalize(t *testing.T) {
	normalized := Vec3{3, 4, 0}.Normalize()
	if math.Abs(normalized.Magnitude()-1.0) > 1e-10 {
		t.Errorf("Normalize: expected unit magnitude, got %f", normalized.Magnitude())
	}

	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Normalize of zero vector: expected zero vector, got %v", zero)
	}
}

func TestVec3Distance(t *testing.T) {
	v1 := Vec3{1, 2, 3}
	v2 := Vec3{4, 5, 6}

	distance := v1.Distance(v2)
	expected := math.Sqrt(27)
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance: expected %f, got %f", expected, distance)
	}
}
