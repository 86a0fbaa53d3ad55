package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/Arthur-Matias/hull-visualizer/internal/logger"
	"github.com/Arthur-Matias/hull-visualizer/pkg/geometry"
	"github.com/Arthur-Matias/hull-visualizer/pkg/weights"
)

// handleInput processes user input
func (app *App) handleInput() {
	// Camera view preset shortcuts
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		app.setCameraSideView()
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyThree) {
		app.setCameraBowView()
	}

	app.handleViewKeys()
	app.handlePaintKeys()
	app.handleMouse()
}

// handleViewKeys processes visibility and display toggles.
func (app *App) handleViewKeys() {
	if rl.IsKeyPressed(rl.KeyW) {
		app.View.showWireframe = !app.View.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHull = !app.View.showHull
	}
	if rl.IsKeyPressed(rl.KeyB) {
		app.View.showBow = !app.View.showBow
	}
	if rl.IsKeyPressed(rl.KeyN) {
		app.View.showStern = !app.View.showStern
	}
	if rl.IsKeyPressed(rl.KeyD) {
		app.View.showDeck = !app.View.showDeck
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		app.View.showHelp = !app.View.showHelp
	}
	if rl.IsKeyPressed(rl.KeyL) {
		app.cycleLOD()
	}
}

// handlePaintKeys processes weight painting shortcuts.
func (app *App) handlePaintKeys() {
	if rl.IsKeyPressed(rl.KeyE) {
		app.settings.SetEditMode(!app.painter.EditMode())
	}
	if rl.IsKeyPressed(rl.KeyX) && app.painter.EditMode() {
		app.settings.SetRemoveMode(!app.painter.RemoveMode())
	}

	if rl.IsKeyPressed(rl.KeyMinus) {
		app.settings.SetBrushRadius(app.painter.Radius * 0.8)
	}
	if rl.IsKeyPressed(rl.KeyEqual) {
		app.settings.SetBrushRadius(app.painter.Radius * 1.25)
	}
	if rl.IsKeyPressed(rl.KeyComma) {
		app.settings.SetWeightPerFace(app.painter.WeightPerFace * 0.5)
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		app.settings.SetWeightPerFace(app.painter.WeightPerFace * 2)
	}

	if rl.IsKeyPressed(rl.KeyEnter) {
		app.applySelection()
	}
	if rl.IsKeyPressed(rl.KeyC) {
		app.painter.Clear()
	}
}

// handleMouse routes mouse input: painting in edit mode, camera
// controls otherwise. Shift-drag and middle-drag pan in any mode.
func (app *App) handleMouse() {
	shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

	if (rl.IsMouseButtonDown(rl.MouseLeftButton) && shiftPressed) || rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.doPan(delta)
		}
	} else if app.painter.EditMode() {
		app.handleBrush()
	} else if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.doOrbit(delta)
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.doZoom(wheel)
	}
}

// handleBrush runs the paint stroke while the left button is held.
func (app *App) handleBrush() {
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.painter.StartPainting()
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) && app.painter.Painting() {
		app.painter.PaintAt(app.mouseRay(), app.visibleSurfaces())
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.painter.StopPainting()
	}
}

// mouseRay converts the pointer position into a world-space pick ray.
func (app *App) mouseRay() geometry.Ray {
	ray := rl.GetMouseRay(rl.GetMousePosition(), app.Camera.camera)
	return geometry.NewRay(
		geometry.NewVector3(float64(ray.Position.X), float64(ray.Position.Y), float64(ray.Position.Z)),
		geometry.NewVector3(float64(ray.Direction.X), float64(ray.Direction.Y), float64(ray.Direction.Z)),
	)
}

// applySelection commits the painted faces to the weight ledger and
// starts a fresh selection.
func (app *App) applySelection() {
	entries := app.painter.Entries()
	if len(entries) == 0 {
		return
	}

	loads := make([]weights.PointLoad, 0, len(entries))
	for _, e := range entries {
		loads = append(loads, weights.PointLoad{
			Position:  e.WorldCentroid,
			Magnitude: app.painter.WeightPerFace,
		})
	}
	app.ledger.AddPainted(loads)
	app.painter.Clear()

	logger.Info("applied painted weights",
		zap.Int("faces", len(loads)),
		zap.Float64("total", app.ledger.Total()))
}

// cycleLOD steps both densification multipliers through 1, 2, 3 and
// rebuilds the mesh.
func (app *App) cycleLOD() {
	next := app.lod.StationMultiplier + 1
	if next > 3 {
		next = 1
	}
	app.lod.StationMultiplier = next
	app.lod.WaterlineMultiplier = next
	app.settings.SetLOD(app.lod)
	app.rebuildMesh()
}
