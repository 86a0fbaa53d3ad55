package app

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Arthur-Matias/hull-visualizer/internal/config"
	"github.com/Arthur-Matias/hull-visualizer/pkg/hull"
	"github.com/Arthur-Matias/hull-visualizer/pkg/offsets"
	"github.com/Arthur-Matias/hull-visualizer/pkg/paint"
	"github.com/Arthur-Matias/hull-visualizer/pkg/watcher"
	"github.com/Arthur-Matias/hull-visualizer/pkg/weights"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3
	defaultDist   float32
	defaultAngleX float32
	defaultAngleY float32
}

// ViewSettings holds per-surface visibility and display settings
type ViewSettings struct {
	showHull      bool
	showBow       bool
	showStern     bool
	showDeck      bool
	showWireframe bool
	showHelp      bool
}

// renderMesh pairs a hull surface with its uploaded GPU mesh.
type renderMesh struct {
	surface *hull.Surface
	mesh    rl.Mesh
	loaded  bool
}

// App is the interactive hull viewer.
type App struct {
	cfg       *config.Config
	tablePath string

	table    *offsets.Table
	mesh     *hull.Mesh
	meshes   []renderMesh
	material rl.Material

	lod      offsets.LODConfig
	colorMap hull.ColorMap

	Camera CameraState
	View   ViewSettings

	painter  *paint.Painter
	ledger   *weights.Ledger
	settings *SettingsBus

	tableWatcher *watcher.TableWatcher
	needsReload  atomic.Bool
}

// surfaceVisible reports whether a surface passes the view toggles.
// Used both for drawing and as the painter's candidate filter.
func (app *App) surfaceVisible(s *hull.Surface) bool {
	if app.mesh == nil {
		return false
	}
	switch s {
	case app.mesh.Body:
		return app.View.showHull
	case app.mesh.Bow:
		return app.View.showBow
	case app.mesh.Stern:
		return app.View.showStern
	case app.mesh.Deck:
		return app.View.showDeck
	}
	return true
}

// visibleSurfaces returns the surfaces to draw and ray-cast against.
func (app *App) visibleSurfaces() []*hull.Surface {
	if app.mesh == nil {
		return nil
	}
	var out []*hull.Surface
	for _, s := range app.mesh.Surfaces() {
		if app.surfaceVisible(s) {
			out = append(out, s)
		}
	}
	return out
}
