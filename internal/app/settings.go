package app

import "github.com/Arthur-Matias/hull-visualizer/pkg/offsets"

// SettingsBus notifies interested components when a viewer setting
// changes. Subscribers register a typed callback per setting; there is
// no global store to poll. Callbacks run synchronously on the caller's
// goroutine, which for the viewer is always the main thread.
type SettingsBus struct {
	brushRadius   []func(float64)
	weightPerFace []func(float64)
	editMode      []func(bool)
	removeMode    []func(bool)
	lod           []func(offsets.LODConfig)
}

// NewSettingsBus creates an empty bus.
func NewSettingsBus() *SettingsBus {
	return &SettingsBus{}
}

// OnBrushRadius registers a callback for brush radius changes.
func (b *SettingsBus) OnBrushRadius(fn func(float64)) {
	b.brushRadius = append(b.brushRadius, fn)
}

// OnWeightPerFace registers a callback for weight-per-face changes.
func (b *SettingsBus) OnWeightPerFace(fn func(float64)) {
	b.weightPerFace = append(b.weightPerFace, fn)
}

// OnEditMode registers a callback for edit mode changes.
func (b *SettingsBus) OnEditMode(fn func(bool)) {
	b.editMode = append(b.editMode, fn)
}

// OnRemoveMode registers a callback for remove mode changes.
func (b *SettingsBus) OnRemoveMode(fn func(bool)) {
	b.removeMode = append(b.removeMode, fn)
}

// OnLOD registers a callback for level-of-detail changes.
func (b *SettingsBus) OnLOD(fn func(offsets.LODConfig)) {
	b.lod = append(b.lod, fn)
}

// SetBrushRadius publishes a new brush radius to all subscribers.
func (b *SettingsBus) SetBrushRadius(v float64) {
	for _, fn := range b.brushRadius {
		fn(v)
	}
}

// SetWeightPerFace publishes a new weight-per-face to all subscribers.
func (b *SettingsBus) SetWeightPerFace(v float64) {
	for _, fn := range b.weightPerFace {
		fn(v)
	}
}

// SetEditMode publishes an edit mode change to all subscribers.
func (b *SettingsBus) SetEditMode(on bool) {
	for _, fn := range b.editMode {
		fn(on)
	}
}

// SetRemoveMode publishes a remove mode change to all subscribers.
func (b *SettingsBus) SetRemoveMode(on bool) {
	for _, fn := range b.removeMode {
		fn(on)
	}
}

// SetLOD publishes a level-of-detail change to all subscribers.
func (b *SettingsBus) SetLOD(lod offsets.LODConfig) {
	for _, fn := range b.lod {
		fn(lod)
	}
}
