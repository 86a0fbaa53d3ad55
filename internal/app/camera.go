package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// resetCameraView resets the camera to the default view
func (app *App) resetCameraView() {
	app.Camera.distance = app.Camera.defaultDist
	app.Camera.angleX = app.Camera.defaultAngleX
	app.Camera.angleY = app.Camera.defaultAngleY
	app.Camera.target = app.hullCenter()
}

// setCameraTopView looks straight down onto the deck
func (app *App) setCameraTopView() {
	app.Camera.angleX = math.Pi / 2
	app.Camera.angleY = 0
	app.Camera.target = app.hullCenter()
}

// setCameraSideView looks at the hull broadside (along the Z axis)
func (app *App) setCameraSideView() {
	app.Camera.angleX = 0
	app.Camera.angleY = 0
	app.Camera.target = app.hullCenter()
}

// setCameraBowView looks at the hull head-on (along the X axis)
func (app *App) setCameraBowView() {
	app.Camera.angleX = 0
	app.Camera.angleY = math.Pi / 2
	app.Camera.target = app.hullCenter()
}

// hullCenter returns the midpoint of the hull's extents.
func (app *App) hullCenter() rl.Vector3 {
	if app.mesh == nil || len(app.mesh.StationPositions) == 0 {
		return rl.Vector3{}
	}
	positions := app.mesh.StationPositions
	heights := app.mesh.WaterlineHeights
	cx := (positions[0] + positions[len(positions)-1]) / 2
	cy := 0.0
	if len(heights) > 0 {
		cy = (heights[0] + heights[len(heights)-1]) / 2
	}
	return rl.Vector3{X: float32(cx), Y: float32(cy), Z: 0}
}

// hullSpan returns the hull length, used to scale the default camera
// distance.
func (app *App) hullSpan() float32 {
	if app.mesh == nil || len(app.mesh.StationPositions) < 2 {
		return 10
	}
	positions := app.mesh.StationPositions
	return float32(positions[len(positions)-1] - positions[0])
}

// setupCamera positions the camera to frame the whole hull.
func (app *App) setupCamera() {
	distance := app.hullSpan() * 1.6
	if distance < 2 {
		distance = 2
	}

	app.Camera.target = app.hullCenter()
	app.Camera.distance = distance
	app.Camera.angleX = 0.3
	app.Camera.angleY = 0.6

	app.Camera.defaultDist = distance
	app.Camera.defaultAngleX = 0.3
	app.Camera.defaultAngleY = 0.6

	app.Camera.camera = rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: 0, Z: distance},
		Target:     app.Camera.target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
}

// updateCamera updates camera position based on angles
func (app *App) updateCamera() {
	x := app.Camera.distance * float32(math.Cos(float64(app.Camera.angleX))) * float32(math.Sin(float64(app.Camera.angleY)))
	y := app.Camera.distance * float32(math.Sin(float64(app.Camera.angleX)))
	z := app.Camera.distance * float32(math.Cos(float64(app.Camera.angleX))) * float32(math.Cos(float64(app.Camera.angleY)))

	app.Camera.camera.Position = rl.Vector3{
		X: app.Camera.target.X + x,
		Y: app.Camera.target.Y + y,
		Z: app.Camera.target.Z + z,
	}
	app.Camera.camera.Target = app.Camera.target
}

// doPan performs camera panning based on mouse delta
func (app *App) doPan(delta rl.Vector2) {
	forward := rl.Vector3Normalize(rl.Vector3Subtract(app.Camera.target, app.Camera.camera.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, app.Camera.camera.Up))
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))

	panSpeed := app.Camera.distance * 0.001

	rightMove := rl.Vector3Scale(right, -delta.X*panSpeed)
	upMove := rl.Vector3Scale(up, delta.Y*panSpeed)

	app.Camera.target = rl.Vector3Add(app.Camera.target, rightMove)
	app.Camera.target = rl.Vector3Add(app.Camera.target, upMove)
}

// doOrbit rotates the camera around the target based on mouse delta.
func (app *App) doOrbit(delta rl.Vector2) {
	app.Camera.angleY += delta.X * 0.01
	app.Camera.angleX -= delta.Y * 0.01

	// Clamp vertical rotation
	if app.Camera.angleX > 1.5 {
		app.Camera.angleX = 1.5
	}
	if app.Camera.angleX < -1.5 {
		app.Camera.angleX = -1.5
	}
}

// doZoom adjusts camera distance from the mouse wheel.
func (app *App) doZoom(wheel float32) {
	app.Camera.distance *= (1.0 - wheel*0.03)
	if app.Camera.distance < 0.5 {
		app.Camera.distance = 0.5
	}
}
