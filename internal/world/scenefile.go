package world

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"exogame/internal/components"
	"exogame/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Mobility   string            `json:"mobility,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type meshRendererDef struct {
	Type      string     `json:"type"`
	Mesh      string     `json:"mesh"`
	Size      [3]float32 `json:"size"`
	Color     string     `json:"color"`
	Wireframe bool       `json:"wireframe,omitempty"`
}

type boxColliderDef struct {
	Type    string     `json:"type"`
	Size    [3]float32 `json:"size"`
	Offset  [3]float32 `json:"offset,omitempty"`
	Trigger bool       `json:"trigger,omitempty"`
}

type sphereColliderDef struct {
	Type    string     `json:"type"`
	Radius  float32    `json:"radius"`
	Offset  [3]float32 `json:"offset,omitempty"`
	Trigger bool       `json:"trigger,omitempty"`
}

type rigidbodyDef struct {
	Type        string  `json:"type"`
	Mass        float32 `json:"mass,omitempty"`
	Bounciness  float32 `json:"bounciness,omitempty"`
	Friction    float32 `json:"friction,omitempty"`
	UseGravity  *bool   `json:"useGravity,omitempty"`
	IsKinematic bool    `json:"isKinematic,omitempty"`
}

type scriptDef struct {
	Type  string         `json:"type"`
	Name  string         `json:"name"`
	Props map[string]any `json:"props,omitempty"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

var nameByColor map[rl.Color]string

func init() {
	nameByColor = make(map[rl.Color]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

// lookupColor accepts a palette name or #rrggbb / #rrggbbaa.
func lookupColor(name string) (rl.Color, error) {
	if c, ok := colorByName[name]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(name, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return rl.White, fmt.Errorf("unknown color %q", name)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rl.White, fmt.Errorf("unknown color %q: %w", name, err)
	}
	return rl.NewColor(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

func lookupColorName(c rl.Color) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func vec(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func arr(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// --- Loading ---

// ReadSceneFile parses a scene file into detached GameObjects. Nothing is
// added to a scene, so it is safe to call off the main thread.
func ReadSceneFile(path string) ([]*engine.GameObject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	objects, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return objects, nil
}

// ParseScene builds GameObjects from scene JSON.
func ParseScene(data []byte) ([]*engine.GameObject, error) {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	objects := make([]*engine.GameObject, 0, len(sf.Objects))
	for _, objDef := range sf.Objects {
		g, err := buildObject(objDef)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", objDef.Name, err)
		}
		objects = append(objects, g)
	}
	return objects, nil
}

func buildObject(objDef ObjectDef) (*engine.GameObject, error) {
	mobility, err := engine.ParseMobility(objDef.Mobility)
	if err != nil {
		return nil, err
	}

	g := engine.NewGameObject(objDef.Name)
	g.Tags = objDef.Tags
	g.Mobility = mobility
	g.Transform.Position = vec(objDef.Position)
	g.Transform.Rotation = vec(objDef.Rotation)

	// Default scale to 1 if zero
	if objDef.Scale != [3]float32{} {
		g.Transform.Scale = vec(objDef.Scale)
	}

	for _, raw := range objDef.Components {
		var header componentHeader
		if err := json.Unmarshal(raw, &header); err != nil {
			return nil, fmt.Errorf("parse component: %w", err)
		}

		var c engine.Component
		switch header.Type {
		case "MeshRenderer":
			c, err = loadMeshRenderer(raw)
		case "BoxCollider":
			c, err = loadBoxCollider(raw)
		case "SphereCollider":
			c, err = loadSphereCollider(raw)
		case "Rigidbody":
			c, err = loadRigidbody(raw)
		case "Script":
			c, err = loadScript(raw)
		default:
			err = fmt.Errorf("unknown component type %q", header.Type)
		}
		if err != nil {
			return nil, err
		}
		g.AddComponent(c)
	}
	return g, nil
}

func loadMeshRenderer(raw json.RawMessage) (engine.Component, error) {
	var def meshRendererDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("parse MeshRenderer: %w", err)
	}
	mesh, err := components.ParseMeshType(def.Mesh)
	if err != nil {
		return nil, err
	}
	color, err := lookupColor(def.Color)
	if err != nil {
		return nil, err
	}
	r := components.NewMeshRenderer(mesh, color, vec(def.Size))
	r.Wireframe = def.Wireframe
	return r, nil
}

func loadBoxCollider(raw json.RawMessage) (engine.Component, error) {
	var def boxColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("parse BoxCollider: %w", err)
	}
	col := components.NewBoxCollider(vec(def.Size))
	col.Offset = vec(def.Offset)
	col.IsTrigger = def.Trigger
	return col, nil
}

func loadSphereCollider(raw json.RawMessage) (engine.Component, error) {
	var def sphereColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("parse SphereCollider: %w", err)
	}
	col := components.NewSphereCollider(def.Radius)
	col.Offset = vec(def.Offset)
	col.IsTrigger = def.Trigger
	return col, nil
}

func loadRigidbody(raw json.RawMessage) (engine.Component, error) {
	var def rigidbodyDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("parse Rigidbody: %w", err)
	}
	rb := components.NewRigidbody()
	if def.Mass > 0 {
		rb.Mass = def.Mass
	}
	if def.Bounciness > 0 {
		rb.Bounciness = def.Bounciness
	}
	if def.Friction > 0 {
		rb.Friction = def.Friction
	}
	if def.UseGravity != nil {
		rb.UseGravity = *def.UseGravity
	}
	rb.IsKinematic = def.IsKinematic
	return rb, nil
}

func loadScript(raw json.RawMessage) (engine.Component, error) {
	var def scriptDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("parse Script: %w", err)
	}
	comp := engine.CreateScript(def.Name, def.Props)
	if comp == nil {
		return nil, fmt.Errorf("unknown script %q (registered: %s)", def.Name, strings.Join(engine.GetRegisteredScripts(), ", "))
	}
	return comp, nil
}

// --- Saving ---

// SaveScene writes the persistent level back to path. Objects that are not
// part of a scene file (the player, projectiles, streamed segments) are left
// out.
func (w *World) SaveScene(path string) error {
	var sf SceneFile

	for _, g := range w.Scene.GameObjects {
		if !w.persistent[g.UID] || g.Parent != nil {
			continue
		}

		objDef := ObjectDef{
			Name:     g.Name,
			Tags:     g.Tags,
			Position: arr(g.Transform.Position),
			Rotation: arr(g.Transform.Rotation),
			Scale:    arr(g.Transform.Scale),
		}
		if g.Mobility != engine.Static {
			objDef.Mobility = g.Mobility.String()
		}

		for _, c := range g.Components() {
			if raw := serializeComponent(c); raw != nil {
				objDef.Components = append(objDef.Components, raw)
			}
		}

		sf.Objects = append(sf.Objects, objDef)
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

func serializeComponent(c engine.Component) json.RawMessage {
	var def any

	switch comp := c.(type) {
	case *components.MeshRenderer:
		def = meshRendererDef{
			Type:      "MeshRenderer",
			Mesh:      comp.MeshType.String(),
			Size:      arr(comp.Size),
			Color:     lookupColorName(comp.Color),
			Wireframe: comp.Wireframe,
		}

	case *components.BoxCollider:
		def = boxColliderDef{
			Type:    "BoxCollider",
			Size:    arr(comp.Size),
			Offset:  arr(comp.Offset),
			Trigger: comp.IsTrigger,
		}

	case *components.SphereCollider:
		def = sphereColliderDef{
			Type:    "SphereCollider",
			Radius:  comp.Radius,
			Offset:  arr(comp.Offset),
			Trigger: comp.IsTrigger,
		}

	case *components.Rigidbody:
		useGravity := comp.UseGravity
		def = rigidbodyDef{
			Type:        "Rigidbody",
			Mass:        comp.Mass,
			Bounciness:  comp.Bounciness,
			Friction:    comp.Friction,
			UseGravity:  &useGravity,
			IsKinematic: comp.IsKinematic,
		}

	default:
		// Try script registry
		if name, props, ok := engine.SerializeScript(c); ok {
			def = scriptDef{Type: "Script", Name: name, Props: props}
		} else {
			return nil
		}
	}

	data, err := json.Marshal(def)
	if err != nil {
		return nil
	}
	return data
}
