package app

import (
	"testing"

	"github.com/Arthur-Matias/hull-visualizer/pkg/offsets"
)

func TestSettingsBusDeliversToAllSubscribers(t *testing.T) {
	bus := NewSettingsBus()

	var got []float64
	bus.OnBrushRadius(func(v float64) { got = append(got, v) })
	bus.OnBrushRadius(func(v float64) { got = append(got, v*2) })

	bus.SetBrushRadius(0.75)
	if len(got) != 2 || got[0] != 0.75 || got[1] != 1.5 {
		t.Errorf("unexpected deliveries: %v", got)
	}
}

func TestSettingsBusTypedChannels(t *testing.T) {
	bus := NewSettingsBus()

	var edit, remove bool
	var lod offsets.LODConfig
	bus.OnEditMode(func(on bool) { edit = on })
	bus.OnRemoveMode(func(on bool) { remove = on })
	bus.OnLOD(func(l offsets.LODConfig) { lod = l })

	bus.SetEditMode(true)
	bus.SetLOD(offsets.LODConfig{StationMultiplier: 3, WaterlineMultiplier: 2})

	if !edit {
		t.Error("edit mode change not delivered")
	}
	if remove {
		t.Error("remove mode callback fired without a publish")
	}
	if lod.StationMultiplier != 3 || lod.WaterlineMultiplier != 2 {
		t.Errorf("lod change not delivered: %+v", lod)
	}
}

func TestSettingsBusNoSubscribers(t *testing.T) {
	bus := NewSettingsBus()
	// Publishing with no subscribers must be a no-op.
	bus.SetWeightPerFace(5)
	bus.SetRemoveMode(true)
}
