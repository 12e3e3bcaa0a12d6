package barneshut

import (
	"math"
	"testing"
)

func TestNewtonianKernel(t *testing.T) {
	k := NewtonianKernel(1)
	got := k(Vec3{1, 0, 0}, 4, 2)
	want := Vec3{1, 0, 0}.Mul(1 * 4 / (2 * 2))
	if got != want {
		t.Errorf("NewtonianKernel: expected %v, got %v", want, got)
	}

	if got := k(Vec3{1, 0, 0}, 1, 0); got != (Vec3{}) {
		t.Errorf("NewtonianKernel at distance 0 should return the zero vector, got %v", got)
	}
}

func TestCoulombKernelMatchesNewtonianShape(t *testing.T) {
	nk := NewtonianKernel(8.99e9)
	ck := CoulombKernel(8.99e9)
	got := ck(Vec3{0, 1, 0}, 2, 3)
	want := nk(Vec3{0, 1, 0}, 2, 3)
	if got != want {
		t.Errorf("CoulombKernel should match NewtonianKernel's shape, got %v want %v", got, want)
	}
}

func TestSoftenedKernelBoundedAtZeroDistance(t *testing.T) {
	k := SoftenedKernel(1, 0.1)
	got := k(Vec3{1, 0, 0}, 1, 0)
	if math.IsNaN(got.X) || math.IsInf(got.X, 0) {
		t.Errorf("softened kernel should stay finite at distance 0, got %v", got)
	}
}

func TestSoftenedKernelConvergesToNewtonianAtLargeDistance(t *testing.T) {
	newton := NewtonianKernel(1)
	soft := SoftenedKernel(1, 1e-6)
	dir := Vec3{1, 0, 0}
	got := soft(dir, 1, 100)
	want := newton(dir, 1, 100)
	if math.Abs(got.X-want.X) > 1e-9 {
		t.Errorf("softened kernel with tiny epsilon should match Newtonian at large distance: got %v want %v", got, want)
	}
}

func TestMONDKernelDeepRegimeExceedsNewtonian(t *testing.T) {
	g, a0 := 1.0, 1e-3
	newton := NewtonianKernel(g)
	mond := MONDKernel(g, a0)

	dir := Vec3{1, 0, 0}
	source, distance := 1.0, 1000.0 // deep MOND: a_Newton << a0

	mondAcc := mond(dir, source, distance).Magnitude()
	newtonAcc := newton(dir, source, distance).Magnitude()

	if mondAcc <= newtonAcc {
		t.Errorf("expected MOND acceleration %g to exceed Newtonian %g in the deep regime", mondAcc, newtonAcc)
	}
}

func TestMONDKernelNewtonianRegimeConverges(t *testing.T) {
	g, a0 := 1.0, 1e-12
	newton := NewtonianKernel(g)
	mond := MONDKernel(g, a0)

	dir := Vec3{1, 0, 0}
	got := mond(dir, 1, 1).Magnitude()
	want := newton(dir, 1, 1).Magnitude()

	if math.Abs(got-want) > 1e-6*want {
		t.Errorf("expected MOND to converge to Newtonian when a_Newton >> a0: got %g want %g", got, want)
	}
}
