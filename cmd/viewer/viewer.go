package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"collide3d/internal/camera"
	"collide3d/internal/config"
	"collide3d/internal/debugdraw"
	"collide3d/internal/physics"
	"collide3d/internal/world"
)

const panelWidth = 220

type viewer struct {
	world   *world.World
	cfg     config.Config
	palette config.Palette
	logger  *log.Logger
	camera  *camera.OrbitCamera

	showGizmos bool
	showBounds bool
	showGrid   bool
	cull       bool
	animate    bool
	maxDist    float32

	ray     *physics.Ray
	hit     *world.Hit
	culled  int
	overlap int
}

func newViewer(w *world.World, cfg config.Config, logger *log.Logger) *viewer {
	return &viewer{
		world:      w,
		cfg:        cfg,
		palette:    cfg.Gizmos.Palette(),
		logger:     logger,
		camera:     camera.New(rl.Vector3{}, 15),
		showGizmos: true,
		showGrid:   true,
		cull:       true,
		animate:    true,
		maxDist:    min(cfg.MaxDistance, 100),
	}
}

func (v *viewer) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	rl.InitWindow(v.cfg.Viewer.Width, v.cfg.Viewer.Height, "collide3d - "+v.world.Scene.Name)
	defer rl.CloseWindow()

	rl.SetTargetFPS(v.cfg.Viewer.FPS)

	for !rl.WindowShouldClose() {
		v.Update()
		v.Draw()
	}
}

func (v *viewer) Update() {
	if v.animate {
		v.world.Scene.Update(rl.GetFrameTime())
	}

	mouse := rl.GetMousePosition()
	overPanel := mouse.X < panelWidth

	if !overPanel {
		v.camera.Update()
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !overPanel {
		v.pick(rl.GetScreenToWorldRay(mouse, v.camera.GetRaylibCamera()))
	}
	if rl.IsKeyPressed(rl.KeyC) {
		v.ray, v.hit = nil, nil
	}

	v.overlap = len(v.world.CollidingPairs())
}

func (v *viewer) pick(r rl.Ray) {
	ray, err := physics.FromRaylib(r)
	if err != nil {
		v.logger.Debug("ignoring pick", "error", err)
		return
	}
	v.ray = &ray
	v.hit = nil
	if h, ok := v.world.Raycast(ray, v.maxDist); ok {
		v.hit = &h
		v.logger.Info("hit", "object", h.Object.Name, "distance", h.Distance(), "point", h.Point())
		return
	}
	v.logger.Debug("miss", "ray", ray)
}

func (v *viewer) Draw() {
	cam := v.camera.GetRaylibCamera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(cam)
	if v.showGrid {
		rl.DrawGrid(20, 1)
	}

	drawer := debugdraw.Raylib{}
	culled := &debugdraw.Culled{Next: drawer}
	if v.cull {
		aspect := float32(rl.GetScreenWidth()) / float32(max(rl.GetScreenHeight(), 1))
		culled.Frustum = debugdraw.ExtractFrustum(cam, aspect)
	}

	if v.showGizmos {
		if v.cull {
			v.world.DrawGizmos(culled, v.palette)
		} else {
			v.world.DrawGizmos(drawer, v.palette)
		}
	}
	if v.showBounds {
		for _, s := range v.world.Shapes() {
			b := s.Shape.Bounds()
			rl.DrawBoundingBox(rl.BoundingBox{Min: b.Min, Max: b.Max}, rl.Fade(rl.LightGray, 0.4))
		}
	}
	if v.ray != nil {
		world.DrawRay(drawer, *v.ray, v.maxDist, v.hit, v.palette)
	}
	rl.EndMode3D()

	v.culled = culled.Skipped
	v.DrawUI()
	rl.EndDrawing()
}

func (v *viewer) DrawUI() {
	rl.DrawRectangle(0, 0, panelWidth, int32(rl.GetScreenHeight()), rl.NewColor(30, 30, 40, 230))

	y := float32(10)
	row := func() rl.Rectangle {
		r := rl.Rectangle{X: 10, Y: y, Width: 20, Height: 20}
		y += 28
		return r
	}

	v.showGizmos = gui.CheckBox(row(), "Gizmos", v.showGizmos)
	v.showBounds = gui.CheckBox(row(), "Bounds", v.showBounds)
	v.showGrid = gui.CheckBox(row(), "Grid", v.showGrid)
	v.cull = gui.CheckBox(row(), "Frustum cull", v.cull)
	v.animate = gui.CheckBox(row(), "Animate", v.animate)

	rl.DrawText("Max distance", 10, int32(y), 14, rl.LightGray)
	y += 18
	v.maxDist = gui.Slider(rl.Rectangle{X: 10, Y: y, Width: 150, Height: 16}, "", fmt.Sprintf("%.0f", v.maxDist), v.maxDist, 1, v.cfg.MaxDistance)
	y += 30

	lines := []string{
		fmt.Sprintf("Colliders: %d", v.world.Colliders()),
		fmt.Sprintf("Overlapping pairs: %d", v.overlap),
		fmt.Sprintf("Culled: %d", v.culled),
	}
	if v.hit != nil {
		p, n := v.hit.Point(), v.hit.Normal()
		lines = append(lines,
			"",
			"Hit: "+v.hit.Object.Name,
			fmt.Sprintf("Distance: %.3f", v.hit.Distance()),
			fmt.Sprintf("Point: %.2f %.2f %.2f", p.X, p.Y, p.Z),
			fmt.Sprintf("Normal: %.2f %.2f %.2f", n.X, n.Y, n.Z),
		)
	} else if v.ray != nil {
		lines = append(lines, "", "No hit")
	}
	for _, line := range lines {
		rl.DrawText(line, 10, int32(y), 14, rl.RayWhite)
		y += 18
	}

	rl.DrawText("Right drag orbit, middle drag pan, wheel zoom", panelWidth+10, 10, 16, rl.DarkGray)
	rl.DrawText("Left click to cast a ray, C clears", panelWidth+10, 30, 16, rl.DarkGray)
	rl.DrawFPS(panelWidth+10, 50)
}
