package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Arthur-Matias/hull-visualizer/pkg/geometry"
	"github.com/Arthur-Matias/hull-visualizer/pkg/hull"
)

// surfaceToRaylibMesh converts a hull surface into a raylib triangle
// soup with region colors and baked diffuse lighting.
func surfaceToRaylibMesh(s *hull.Surface) rl.Mesh {
	triangleCount := s.TriangleCount()
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, vertexCount*4)

	lightDir := geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

	idx := 0
	for i := 0; i < triangleCount; i++ {
		tri := s.Triangle(i)
		normal := tri.Normal()

		// Min 35% ambient, max 100% diffuse
		intensity := -normal.Dot(lightDir)
		if intensity < 0 {
			intensity = -intensity
		}
		if intensity < 0.35 {
			intensity = 0.35
		}

		for k := 0; k < 3; k++ {
			v := tri.V1
			if k == 1 {
				v = tri.V2
			} else if k == 2 {
				v = tri.V3
			}

			base := hull.Color{R: 150, G: 160, B: 180, A: 255}
			if vi := s.Indices[i*3+k]; int(vi) < len(s.Colors) {
				base = s.Colors[vi]
			}

			vertices[idx*3+0] = float32(v.X)
			vertices[idx*3+1] = float32(v.Y)
			vertices[idx*3+2] = float32(v.Z)
			normals[idx*3+0] = float32(normal.X)
			normals[idx*3+1] = float32(normal.Y)
			normals[idx*3+2] = float32(normal.Z)
			texcoords[idx*2+0] = 0
			texcoords[idx*2+1] = 0
			colors[idx*4+0] = uint8(float64(base.R) * intensity)
			colors[idx*4+1] = uint8(float64(base.G) * intensity)
			colors[idx*4+2] = uint8(float64(base.B) * intensity)
			colors[idx*4+3] = base.A
			idx++
		}
	}

	if len(vertices) > 0 {
		mesh.Vertices = &vertices[0]
		mesh.Normals = &normals[0]
		mesh.Texcoords = &texcoords[0]
		mesh.Colors = &colors[0]
	}

	rl.UploadMesh(&mesh, false)
	return mesh
}

// uploadMeshes converts every hull surface into a GPU mesh.
func (app *App) uploadMeshes() {
	app.unloadMeshes()
	if app.mesh == nil {
		return
	}
	for _, s := range app.mesh.Surfaces() {
		app.meshes = append(app.meshes, renderMesh{
			surface: s,
			mesh:    surfaceToRaylibMesh(s),
			loaded:  true,
		})
	}
}

// unloadMeshes releases the GPU meshes.
func (app *App) unloadMeshes() {
	for i := range app.meshes {
		if app.meshes[i].loaded {
			rl.UnloadMesh(&app.meshes[i].mesh)
		}
	}
	app.meshes = nil
}

// drawScene renders the hull surfaces, selection highlight and brush
// preview inside the 3D mode block.
func (app *App) drawScene() {
	for _, rm := range app.meshes {
		if !app.surfaceVisible(rm.surface) {
			continue
		}
		rl.DrawMesh(rm.mesh, app.material, rl.MatrixIdentity())
		if app.View.showWireframe {
			app.drawWireframe(rm.surface)
		}
	}

	app.drawSelection()
	app.drawBrush()
}

// drawWireframe renders a surface's triangle edges.
func (app *App) drawWireframe(s *hull.Surface) {
	color := rl.NewColor(100, 100, 100, 200)
	for i := 0; i < s.TriangleCount(); i++ {
		tri := s.WorldTriangle(i)
		v1 := toRaylib(tri.V1)
		v2 := toRaylib(tri.V2)
		v3 := toRaylib(tri.V3)
		rl.DrawLine3D(v1, v2, color)
		rl.DrawLine3D(v2, v3, color)
		rl.DrawLine3D(v3, v1, color)
	}
}

// drawSelection highlights the painted faces.
func (app *App) drawSelection() {
	highlight := rl.NewColor(255, 210, 60, 160)
	if app.painter.RemoveMode() {
		highlight = rl.NewColor(255, 90, 60, 160)
	}

	for _, e := range app.painter.Entries() {
		tri := e.Surface.WorldTriangle(e.Ref.Index)
		// Offset along the normal so the highlight wins the depth test.
		offset := tri.Normal().Mul(0.002)
		v1 := toRaylib(tri.V1.Add(offset))
		v2 := toRaylib(tri.V2.Add(offset))
		v3 := toRaylib(tri.V3.Add(offset))
		rl.DrawTriangle3D(v1, v2, v3, highlight)
		rl.DrawTriangle3D(v1, v3, v2, highlight)
	}
}

// drawBrush renders the brush preview at the last pointer hit.
func (app *App) drawBrush() {
	point, shown := app.painter.BrushPoint()
	if !shown || !app.painter.EditMode() {
		return
	}
	color := rl.NewColor(255, 255, 255, 120)
	rl.DrawSphereWires(toRaylib(point), float32(app.painter.Radius), 8, 12, color)
}

// drawUI draws the heads-up display.
func (app *App) drawUI() {
	y := int32(10)
	line := func(text string, color rl.Color) {
		rl.DrawText(text, 10, y, 16, color)
		y += 20
	}

	name := "(no table)"
	if app.table != nil && app.table.Name != "" {
		name = app.table.Name
	}
	line(name, rl.Yellow)

	if app.mesh != nil {
		triangles := 0
		for _, s := range app.mesh.Surfaces() {
			triangles += s.TriangleCount()
		}
		line(fmt.Sprintf("Triangles: %d  LOD: %.0fx", triangles, app.lod.StationMultiplier), rl.White)
	}

	line(fmt.Sprintf("Weight: %.1f  (painted %d loads)", app.ledger.Total(), app.ledger.PaintedCount()), rl.White)

	if app.painter.EditMode() {
		mode := "paint"
		if app.painter.RemoveMode() {
			mode = "erase"
		}
		sum := app.painter.Summarize()
		line(fmt.Sprintf("EDIT [%s]  brush %.2f  weight/face %.1f", mode, app.painter.Radius, app.painter.WeightPerFace), rl.Orange)
		line(fmt.Sprintf("Selected: %d faces (+%.1f)", sum.Count, sum.Weight), rl.Orange)
		for tag, n := range sum.ByTag {
			line(fmt.Sprintf("  %s: %d", tag, n), rl.Gray)
		}
	}

	if app.View.showHelp {
		app.drawHelp()
	} else {
		rl.DrawText("F1: help", 10, int32(rl.GetScreenHeight())-24, 14, rl.Gray)
	}
}

// drawHelp lists the keyboard controls.
func (app *App) drawHelp() {
	lines := []string{
		"Drag: orbit   Shift+drag/middle: pan   Wheel: zoom",
		"Home: reset view   1: side   2: top   3: bow",
		"E: edit mode   X: erase   drag: paint   Enter: apply   C: clear",
		"-/=: brush size   ,/.: weight per face",
		"W: wireframe   H/B/N/D: hull/bow/stern/deck   L: cycle LOD",
	}
	y := int32(rl.GetScreenHeight()) - int32(len(lines))*18 - 10
	for _, l := range lines {
		rl.DrawText(l, 10, y, 14, rl.Gray)
		y += 18
	}
}

func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
