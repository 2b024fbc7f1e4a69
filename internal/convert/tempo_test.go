package convert

import (
	"math"
	"testing"
)

func TestTempoChainIdentity(t *testing.T) {
	factors := TempoChain(1.0)

	if len(factors) != 1 {
		t.Fatalf("Expected exactly one factor, got %v", factors)
	}
	if factors[0] != 1.0 {
		t.Errorf("Expected identity factor 1.0, got %v", factors[0])
	}
}

func TestTempoChainDoubling(t *testing.T) {
	factors := TempoChain(4.0)

	expected := []float64{2.0, 2.0}
	if len(factors) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, factors)
	}
	for i, f := range expected {
		if factors[i] != f {
			t.Errorf("Factor %d: expected %v, got %v", i, f, factors[i])
		}
	}
}

func TestTempoChainHalving(t *testing.T) {
	factors := TempoChain(0.25)

	expected := []float64{0.5, 0.5}
	if len(factors) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, factors)
	}
	for i, f := range expected {
		if factors[i] != f {
			t.Errorf("Factor %d: expected %v, got %v", i, f, factors[i])
		}
	}
}

func TestTempoChainSingleResidual(t *testing.T) {
	factors := TempoChain(1.15)

	if len(factors) != 1 {
		t.Fatalf("Expected single factor, got %v", factors)
	}
	if factors[0] != 1.15 {
		t.Errorf("Expected 1.15, got %v", factors[0])
	}
}

func TestTempoChainNonPositive(t *testing.T) {
	for _, speed := range []float64{0, -1, -0.5} {
		factors := TempoChain(speed)
		if len(factors) != 1 || factors[0] != 1.0 {
			t.Errorf("TempoChain(%v) should be identity, got %v", speed, factors)
		}
	}
}

func TestTempoChainProductAndRange(t *testing.T) {
	speeds := []float64{0.1, 0.25, 0.3, 0.5, 0.75, 1.0, 1.15, 1.25, 1.5, 2.0, 2.5, 3.0, 4.0, 5.5, 8.0, 10.0}

	for _, speed := range speeds {
		factors := TempoChain(speed)

		product := 1.0
		for _, f := range factors {
			if f < TempoStageMin || f > TempoStageMax {
				t.Errorf("TempoChain(%v): factor %v outside [%v, %v]", speed, f, TempoStageMin, TempoStageMax)
			}
			product *= f
		}

		if math.Abs(product-speed)/speed > 0.005 {
			t.Errorf("TempoChain(%v): product %v off by more than 0.5%%", speed, product)
		}
	}
}

func TestAtempoFilter(t *testing.T) {
	tests := []struct {
		speed    float64
		expected string
	}{
		{1.0, "atempo=1.0"},
		{2.0, "atempo=2"},
		{4.0, "atempo=2,atempo=2"},
		{0.25, "atempo=0.5,atempo=0.5"},
		{1.15, "atempo=1.15"},
	}

	for _, test := range tests {
		if got := AtempoFilter(test.speed); got != test.expected {
			t.Errorf("AtempoFilter(%v) = %s, expected %s", test.speed, got, test.expected)
		}
	}
}
