package engine

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}

	if obj.components == nil {
		t.Error("components slice should be initialized")
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")
	obj3 := NewGameObject("Third")

	if obj1.UID == obj2.UID {
		t.Error("GameObjects should have unique UIDs")
	}
	if obj2.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
	if obj1.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"enemy", "ai", "dangerous"}

	if !obj.HasTag("enemy") {
		t.Error("HasTag should return true for existing tag")
	}

	if !obj.HasTag("ai") {
		t.Error("HasTag should return true for existing tag")
	}

	if obj.HasTag("player") {
		t.Error("HasTag should return false for non-existent tag")
	}

	// Test empty tags
	obj2 := NewGameObject("Test2")
	if obj2.HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child, got %d", len(parent.Children))
	}

	if parent.Children[0] != child {
		t.Error("Child not added to parent's Children slice")
	}
}

func TestGameObjectRemoveChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child1 := NewGameObject("Child1")
	child2 := NewGameObject("Child2")

	parent.AddChild(child1)
	parent.AddChild(child2)

	parent.RemoveChild(child1)

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child after removal, got %d", len(parent.Children))
	}

	if parent.Children[0] != child2 {
		t.Error("Wrong child removed")
	}

	if child1.Parent != nil {
		t.Error("Removed child should have nil parent")
	}
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	if len(obj.components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.components))
	}

	if comp.gameObject != obj {
		t.Error("Component.gameObject should be set")
	}
}

func TestGameObjectGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	found := GetComponent[*BaseComponent](obj)
	if found != comp {
		t.Error("GetComponent failed to find component")
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")

	// First call should set started = true
	obj.Start()
	if !obj.started {
		t.Error("started flag should be true after Start()")
	}

	// Second call should be a no-op (no panic, no re-initialization)
	obj.Start() // Should not panic or cause issues
}

type greeter interface {
	Greet() string
}

type greetingComponent struct {
	BaseComponent
}

func (g *greetingComponent) Greet() string { return "hi" }

func TestFindComponentByInterface(t *testing.T) {
	obj := NewGameObject("Test")
	obj.AddComponent(&BaseComponent{})
	obj.AddComponent(&greetingComponent{})

	found := FindComponent[greeter](obj)
	if found == nil {
		t.Fatal("FindComponent failed to find interface implementation")
	}
	if found.Greet() != "hi" {
		t.Errorf("Expected 'hi', got '%s'", found.Greet())
	}

	if FindComponent[greeter](nil) != nil {
		t.Error("FindComponent on nil object should return nil")
	}
}

func vecNear(a, b rl.Vector3) bool {
	const eps = 1e-3
	return math.Abs(float64(a.X-b.X)) < eps &&
		math.Abs(float64(a.Y-b.Y)) < eps &&
		math.Abs(float64(a.Z-b.Z)) < eps
}

func TestAttachDetachKeepsWorldTransform(t *testing.T) {
	parent := NewGameObject("Player")
	parent.Transform.Position = rl.Vector3{X: 3, Y: 1, Z: -2}
	parent.Transform.Rotation = rl.Vector3{Y: 90}

	crate := NewGameObject("Crate")
	crate.Transform.Position = rl.Vector3{X: 5, Y: 2, Z: 7}
	crate.Transform.Rotation = rl.Vector3{Y: 15}

	before := crate.WorldPosition()
	beforeRot := crate.WorldRotation()

	crate.AttachKeepWorld(parent)
	if crate.Parent != parent {
		t.Fatal("Crate should be parented to player")
	}
	if !vecNear(crate.WorldPosition(), before) {
		t.Errorf("Attach moved object: expected %v, got %v", before, crate.WorldPosition())
	}

	crate.DetachKeepWorld()
	if crate.Parent != nil {
		t.Error("Crate should have no parent after detach")
	}
	if !vecNear(crate.WorldPosition(), before) {
		t.Errorf("Detach moved object: expected %v, got %v", before, crate.WorldPosition())
	}
	if !vecNear(crate.WorldRotation(), beforeRot) {
		t.Errorf("Rotation changed: expected %v, got %v", beforeRot, crate.WorldRotation())
	}
}

func TestAttachFollowsParent(t *testing.T) {
	parent := NewGameObject("Player")
	crate := NewGameObject("Crate")
	crate.Transform.Position = rl.Vector3{X: 0, Y: 0, Z: 2}

	crate.AttachKeepWorld(parent)
	parent.Transform.Position.X += 4

	want := rl.Vector3{X: 4, Y: 0, Z: 2}
	if !vecNear(crate.WorldPosition(), want) {
		t.Errorf("Expected child at %v, got %v", want, crate.WorldPosition())
	}
}

func TestAttachRejectsCycles(t *testing.T) {
	a := NewGameObject("A")
	b := NewGameObject("B")
	a.AttachKeepWorld(b)

	b.AttachKeepWorld(a)
	if b.Parent != nil {
		t.Error("Attaching an ancestor under its descendant must be refused")
	}

	a.AttachKeepWorld(a)
	if a.Parent != b {
		t.Error("Self-attach must be ignored")
	}
}

func TestTransformForward(t *testing.T) {
	tr := Transform{}
	if !vecNear(tr.Forward(), rl.Vector3{Z: 1}) {
		t.Errorf("Identity forward should be +Z, got %v", tr.Forward())
	}

	tr.Rotation.Y = 90
	if !vecNear(tr.Forward(), rl.Vector3{X: 1}) {
		t.Errorf("Yaw 90 forward should be +X, got %v", tr.Forward())
	}
}
