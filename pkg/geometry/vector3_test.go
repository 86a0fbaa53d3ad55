package geometry

import (
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Add(v2)

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	v1 := NewVector3(5, 7, 9)
	v2 := NewVector3(1, 2, 3)
	result := v1.Sub(v2)

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Length(t *testing.T) {
	v := NewVector3(3, 4, 0)
	length := v.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestVector3Distance(t *testing.T) {
	v1 := NewVector3(0, 0, 0)
	v2 := NewVector3(3, 4, 0)
	distance := v1.Distance(v2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector3Normalize(t *testing.T) {
	v := NewVector3(3, 4, 0)
	normalized := v.Normalize()

	expectedLength := 1.0
	actualLength := normalized.Length()

	if math.Abs(actualLength-expectedLength) > 1e-10 {
		t.Errorf("Normalize failed: expected length %v, got %v", expectedLength, actualLength)
	}
}

func TestVector3Cross(t *testing.T) {
	v1 := NewVector3(1, 0, 0)
	v2 := NewVector3(0, 1, 0)
	result := v1.Cross(v2)

	expected := NewVector3(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Dot(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Dot(v2)

	expected := 32.0 // 1*4 + 2*5 + 3*6 = 32
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Lerp(t *testing.T) {
	v1 := NewVector3(0, 0, 0)
	v2 := NewVector3(10, -4, 2)
	result := v1.Lerp(v2, 0.25)

	expected := NewVector3(2.5, -1, 0.5)
	if result.Distance(expected) > 1e-10 {
		t.Errorf("Lerp failed: expected %v, got %v", expected, result)
	}

	if v1.Lerp(v2, 0) != v1 {
		t.Error("Lerp at t=0 should return the first point")
	}
	if v1.Lerp(v2, 1) != v2 {
		t.Error("Lerp at t=1 should return the second point")
	}
}

func TestVector3IsFinite(t *testing.T) {
	if !NewVector3(1, 2, 3).IsFinite() {
		t.Error("finite vector reported as non-finite")
	}
	if NewVector3(math.NaN(), 0, 0).IsFinite() {
		t.Error("NaN vector reported as finite")
	}
	if NewVector3(0, math.Inf(1), 0).IsFinite() {
		t.Error("Inf vector reported as finite")
	}
}
