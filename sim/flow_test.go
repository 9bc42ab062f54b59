package sim

import (
	"math"
	"testing"

	"github.com/enead-quan/multi-flow/components"
)

func TestFlowAtIsDeterministic(t *testing.T) {
	fx1, fy1 := FlowAt(42, 10, 20)
	fx2, fy2 := FlowAt(42, 10, 20)
	if fx1 != fx2 || fy1 != fy2 {
		t.Fatal("same tick and position produced different flow vectors")
	}
}

func TestFlowAtBounded(t *testing.T) {
	for tick := int64(0); tick < 1000; tick += 7 {
		for _, x := range []float32{0, 13.5, 199} {
			for _, y := range []float32{0, 77.2, 159} {
				fx, fy := FlowAt(tick, x, y)
				if math.Abs(float64(fx)) > flowStrength || math.Abs(float64(fy)) > flowStrength {
					t.Fatalf("flow (%v, %v) at tick %d exceeds strength %v", fx, fy, tick, flowStrength)
				}
			}
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		v    float32
		max  float32
		want float32
	}{
		{"inside", 50, 200, 50},
		{"zero", 0, 200, 0},
		{"negative wraps", -10, 200, 190},
		{"over wraps", 210, 200, 10},
		{"exact max wraps to zero", 200, 200, 0},
		{"multiple spans", 450, 200, 50},
		{"deep negative", -410, 200, 190},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrap(tt.v, tt.max)
			if math.Abs(float64(got-tt.want)) > 1e-4 {
				t.Errorf("wrap(%v, %v) = %v, want %v", tt.v, tt.max, got, tt.want)
			}
			if got < 0 || got >= tt.max {
				t.Errorf("wrap(%v, %v) = %v outside [0, %v)", tt.v, tt.max, got, tt.max)
			}
		})
	}
}

func TestStyleTable(t *testing.T) {
	tests := []struct {
		phase      components.Phase
		sizeMult   float32
		buoyancy   float32
		alphaScale float32
	}{
		{components.PhaseGas, 0.8, -0.02, 0.3},
		{components.PhaseLiquid, 1.2, 0.01, 0.7},
		{components.PhaseVapor, 0.6, -0.05, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			st := StyleFor(tt.phase)
			if st.SizeMult != tt.sizeMult || st.Buoyancy != tt.buoyancy || st.AlphaScale != tt.alphaScale {
				t.Errorf("StyleFor(%v) = %+v", tt.phase, st)
			}
		})
	}
}

func TestColorForAlphaScalesWithDensity(t *testing.T) {
	low := ColorFor(components.PhaseLiquid, 0.5)
	high := ColorFor(components.PhaseLiquid, 1.0)
	if low.A >= high.A {
		t.Fatalf("alpha %d at density 0.5 not below alpha %d at density 1.0", low.A, high.A)
	}

	// density*0.7 at density 1.0 -> alpha floor(0.7*255), same float32
	// path as the implementation
	var density float32 = 1.0
	want := uint8(density * 0.7 * 255)
	if high.A != want {
		t.Fatalf("alpha = %d, want %d", high.A, want)
	}
}
