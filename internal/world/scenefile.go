package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"collide3d/internal/components"
	"collide3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

var ErrSceneFormat = errors.New("world: unsupported scene format")

// --- JSON types ---

type SceneFile struct {
	Name    string      `json:"name,omitempty"`
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Active     *bool             `json:"active,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components,omitempty"`
	Children   []ObjectDef       `json:"children,omitempty"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type boxColliderDef struct {
	Type   string     `json:"type"`
	Size   [3]float32 `json:"size"`
	Center [3]float32 `json:"center,omitempty"`
	// Offset is the older name of Center.
	Offset *[3]float32 `json:"offset,omitempty"`
}

type sphereColliderDef struct {
	Type   string     `json:"type"`
	Radius float32    `json:"radius"`
	Center [3]float32 `json:"center,omitempty"`
}

type capsuleColliderDef struct {
	Type      string           `json:"type"`
	Radius    float32          `json:"radius"`
	Height    float32          `json:"height"`
	Direction *components.Axis `json:"direction,omitempty"`
	Center    [3]float32       `json:"center,omitempty"`
}

type spinnerDef struct {
	Type  string     `json:"type"`
	Speed [3]float32 `json:"speed"`
}

func vec(a [3]float32) rl.Vector3 {
	return rl.Vector3{X: a[0], Y: a[1], Z: a[2]}
}

func arr(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// --- Loading ---

// LoadScene reads a JSON or YAML (.yaml/.yml) scene file. Component types
// other than the three colliders and Spinner are ignored.
func LoadScene(path string) (*engine.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	sf, err := DecodeScene(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}
	name := sf.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sf.Build(name)
}

// DecodeScene parses scene bytes; ext selects YAML for ".yaml"/".yml" and
// JSON for ".json" or "".
func DecodeScene(data []byte, ext string) (SceneFile, error) {
	var sf SceneFile
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		// YAML is converted to JSON so both formats share the component decoders.
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return sf, err
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return sf, fmt.Errorf("convert yaml: %w", err)
		}
		data = converted
	case ".json", "":
	default:
		return sf, fmt.Errorf("%w: %q", ErrSceneFormat, ext)
	}
	if err := json.Unmarshal(data, &sf); err != nil {
		return sf, err
	}
	return sf, nil
}

// Build creates the scene graph. Children are added to the scene after
// their parent.
func (sf SceneFile) Build(name string) (*engine.Scene, error) {
	scene := engine.NewScene(name)
	for _, def := range sf.Objects {
		if _, err := buildObject(scene, nil, def); err != nil {
			return nil, err
		}
	}
	return scene, nil
}

func buildObject(scene *engine.Scene, parent *engine.GameObject, def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	if def.Active != nil {
		g.Active = *def.Active
	}
	g.Transform.Position = vec(def.Position)
	g.Transform.Rotation = vec(def.Rotation)

	// Default scale to 1 if zero
	if def.Scale == [3]float32{} {
		g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	} else {
		g.Transform.Scale = vec(def.Scale)
	}

	for i, raw := range def.Components {
		c, err := decodeComponent(raw)
		if err != nil {
			return nil, fmt.Errorf("object %q component %d: %w", def.Name, i, err)
		}
		if c != nil {
			g.AddComponent(c)
		}
	}

	if parent != nil {
		parent.AddChild(g)
	}
	scene.AddGameObject(g)

	for _, child := range def.Children {
		if _, err := buildObject(scene, g, child); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func decodeComponent(raw json.RawMessage) (engine.Component, error) {
	var header componentHeader
	if err := json.Unmarshal(raw, &header); err != nil {
		return nil, err
	}

	switch header.Type {
	case "BoxCollider":
		var def boxColliderDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return nil, err
		}
		col := components.NewBoxCollider(vec(def.Size))
		col.Center = vec(def.Center)
		if def.Offset != nil && def.Center == [3]float32{} {
			col.Center = vec(*def.Offset)
		}
		return col, nil

	case "SphereCollider":
		var def sphereColliderDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return nil, err
		}
		col := components.NewSphereCollider(def.Radius)
		col.Center = vec(def.Center)
		return col, nil

	case "CapsuleCollider":
		var def capsuleColliderDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return nil, err
		}
		col := components.NewCapsuleCollider(def.Radius, def.Height)
		if def.Direction != nil {
			col.Direction = *def.Direction
		}
		col.Center = vec(def.Center)
		return col, nil

	case "Spinner":
		var def spinnerDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return nil, err
		}
		return components.NewSpinner(vec(def.Speed)), nil
	}
	return nil, nil
}

// --- Saving ---

// SaveScene writes the scene as indented JSON. Only root objects are listed
// at the top level; children nest under their parents.
func SaveScene(scene *engine.Scene, path string) error {
	sf := SceneFile{Name: scene.Name}
	for _, g := range scene.GameObjects {
		if g.Parent != nil {
			continue
		}
		sf.Objects = append(sf.Objects, encodeObject(g))
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	return nil
}

func encodeObject(g *engine.GameObject) ObjectDef {
	def := ObjectDef{
		Name:     g.Name,
		Tags:     g.Tags,
		Position: arr(g.Transform.Position),
		Rotation: arr(g.Transform.Rotation),
		Scale:    arr(g.Transform.Scale),
	}
	if !g.Active {
		inactive := false
		def.Active = &inactive
	}
	for _, c := range g.Components() {
		if raw := serializeComponent(c); raw != nil {
			def.Components = append(def.Components, raw)
		}
	}
	for _, child := range g.Children {
		def.Children = append(def.Children, encodeObject(child))
	}
	return def
}

func serializeComponent(c engine.Component) json.RawMessage {
	var def any

	switch comp := c.(type) {
	case *components.BoxCollider:
		def = boxColliderDef{
			Type:   "BoxCollider",
			Size:   arr(comp.Size),
			Center: arr(comp.Center),
		}

	case *components.SphereCollider:
		def = sphereColliderDef{
			Type:   "SphereCollider",
			Radius: comp.Radius,
			Center: arr(comp.Center),
		}

	case *components.CapsuleCollider:
		dir := comp.Direction
		def = capsuleColliderDef{
			Type:      "CapsuleCollider",
			Radius:    comp.Radius,
			Height:    comp.Height,
			Direction: &dir,
			Center:    arr(comp.Center),
		}

	case *components.Spinner:
		def = spinnerDef{
			Type:  "Spinner",
			Speed: arr(comp.Speed),
		}

	default:
		return nil
	}

	data, err := json.Marshal(def)
	if err != nil {
		return nil
	}
	return data
}
