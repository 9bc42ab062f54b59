package telemetry

import (
	"math"
	"testing"
)

func TestComputeDistribution(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	mean, std, p10, p50, p90 := ComputeDistribution(values)

	if math.Abs(mean-5.5) > 0.001 {
		t.Errorf("mean = %v, want 5.5", mean)
	}

	// Sample standard deviation of 1..10
	if math.Abs(std-3.0277) > 0.001 {
		t.Errorf("std = %v, want ~3.0277", std)
	}

	// Empirical quantiles: smallest value with CDF >= p
	if p10 != 1 {
		t.Errorf("p10 = %v, want 1", p10)
	}
	if p50 != 5 {
		t.Errorf("p50 = %v, want 5", p50)
	}
	if p90 != 9 {
		t.Errorf("p90 = %v, want 9", p90)
	}
}

func TestComputeDistributionUnsortedInput(t *testing.T) {
	_, _, _, p50, _ := ComputeDistribution([]float64{9, 1, 5, 3, 7})
	if p50 != 5 {
		t.Errorf("p50 = %v, want 5", p50)
	}
}

func TestComputeDistributionSingleValue(t *testing.T) {
	mean, std, p10, p50, p90 := ComputeDistribution([]float64{4.2})
	if mean != 4.2 || p10 != 4.2 || p50 != 4.2 || p90 != 4.2 {
		t.Errorf("single-value distribution = (%v, %v, %v, %v)", mean, p10, p50, p90)
	}
	if std != 0 {
		t.Errorf("std = %v for single value, want 0", std)
	}
}

func TestComputeDistributionEmpty(t *testing.T) {
	mean, std, p10, p50, p90 := ComputeDistribution(nil)
	if mean != 0 || std != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty sample should return all zeros")
	}
}
