// Package app implements the interactive hull viewer: offset table
// loading, mesh display, orbit camera, weight painting and table
// auto-reload.
package app

import (
	"errors"
	"flag"
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/Arthur-Matias/hull-visualizer/internal/config"
	"github.com/Arthur-Matias/hull-visualizer/internal/logger"
	"github.com/Arthur-Matias/hull-visualizer/pkg/hull"
	"github.com/Arthur-Matias/hull-visualizer/pkg/offsets"
	"github.com/Arthur-Matias/hull-visualizer/pkg/paint"
	"github.com/Arthur-Matias/hull-visualizer/pkg/watcher"
	"github.com/Arthur-Matias/hull-visualizer/pkg/weights"
)

const reloadDebounce = 300 * time.Millisecond

// Run starts the viewer. The offset table path comes from the first
// positional argument.
func Run() error {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return err
	}
	defer logger.Sync()

	tablePath := flag.Arg(0)
	if tablePath == "" {
		return fmt.Errorf("usage: hullviz-view [flags] <table.yaml>")
	}

	colorMap, err := cfg.Colors.ColorMap()
	if err != nil {
		return err
	}

	app := newApp(cfg, tablePath, colorMap)
	if err := app.loadTable(); err != nil {
		return err
	}

	if err := app.setupTableWatcher(); err != nil {
		logger.Warn("file watching unavailable", zap.Error(err))
	} else {
		defer app.tableWatcher.Close()
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetTargetFPS(int32(cfg.Window.TargetFPS))

	app.material = rl.LoadMaterialDefault()
	app.uploadMeshes()
	app.setupCamera()

	for {
		if rl.WindowShouldClose() {
			break
		}

		if app.needsReload.CompareAndSwap(true, false) {
			app.reload()
		}

		app.handleInput()
		app.updateCamera()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.camera)
		app.drawScene()
		rl.EndMode3D()

		app.drawUI()
		rl.EndDrawing()
	}

	app.unloadMeshes()
	rl.CloseWindow()
	return nil
}

// newApp wires the viewer components together.
func newApp(cfg *config.Config, tablePath string, colorMap hull.ColorMap) *App {
	app := &App{
		cfg:       cfg,
		tablePath: tablePath,
		lod:       cfg.LOD,
		colorMap:  colorMap,
		View: ViewSettings{
			showHull:  true,
			showBow:   true,
			showStern: true,
			showDeck:  true,
		},
		painter:  paint.NewPainter(cfg.Brush.Radius, cfg.Brush.WeightPerFace),
		ledger:   weights.NewLedger(0),
		settings: NewSettingsBus(),
	}

	app.painter.Visible = app.surfaceVisible
	app.painter.Tag = func(s *hull.Surface, face int) string {
		if app.mesh == nil {
			return s.Name
		}
		return app.mesh.FaceTag(s, face)
	}

	app.settings.OnBrushRadius(func(v float64) {
		if v > 0 {
			app.painter.Radius = v
		}
	})
	app.settings.OnWeightPerFace(func(v float64) {
		if v > 0 {
			app.painter.WeightPerFace = v
		}
	})
	app.settings.OnEditMode(app.painter.SetEditMode)
	app.settings.OnRemoveMode(app.painter.SetRemoveMode)

	return app
}

// loadTable loads the offset table from disk and builds the mesh.
func (app *App) loadTable() error {
	table, err := offsets.Load(app.tablePath)
	if err != nil {
		return fmt.Errorf("loading offset table: %w", err)
	}
	app.table = table
	app.ledger.SetBase(table.Weight)

	logger.Info("loaded offset table",
		zap.String("path", app.tablePath),
		zap.String("name", table.Name),
		zap.Int("stations", len(table.Stations)))

	return app.buildMesh()
}

// buildMesh rebuilds the hull mesh from the current table and LOD. A
// geometry failure keeps the placeholder mesh on screen instead of
// aborting the viewer.
func (app *App) buildMesh() error {
	mesh, err := hull.Build(app.table, app.lod, app.colorMap)
	if err != nil {
		if !errors.Is(err, hull.ErrInvalidGeometry) {
			return err
		}
		logger.Warn("offset table produced invalid geometry", zap.Error(err))
	}
	app.mesh = mesh
	return nil
}

// rebuildMesh rebuilds and re-uploads after a LOD change. Face indices
// shift, so any pending selection is dropped.
func (app *App) rebuildMesh() {
	if app.table == nil {
		return
	}
	if err := app.buildMesh(); err != nil {
		logger.Error("mesh rebuild failed", zap.Error(err))
		return
	}
	app.painter.Clear()
	app.uploadMeshes()
}

// setupTableWatcher arranges for the table file to be reloaded on
// change. The fsnotify callback runs off the main thread, so it only
// sets a flag; the render loop does the actual reload.
func (app *App) setupTableWatcher() error {
	tw, err := watcher.NewTableWatcher(reloadDebounce, logger.Log)
	if err != nil {
		return err
	}
	if err := tw.Watch([]string{app.tablePath}, func(string) {
		app.needsReload.Store(true)
	}); err != nil {
		tw.Close()
		return err
	}
	tw.Start()
	app.tableWatcher = tw
	return nil
}

// reload re-reads the table from disk on the main thread. Painted
// weights in the ledger survive; the uncommitted selection does not.
func (app *App) reload() {
	if err := app.loadTable(); err != nil {
		logger.Error("table reload failed", zap.Error(err))
		return
	}
	app.painter.Clear()
	app.uploadMeshes()
	logger.Info("offset table reloaded", zap.String("path", app.tablePath))
}
