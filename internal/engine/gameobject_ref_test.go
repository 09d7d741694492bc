package engine

import "testing"

func TestGameObjectRefResolves(t *testing.T) {
	scene := NewScene("Test")
	crate := NewGameObject("Crate")
	scene.AddGameObject(crate)

	var ref GameObjectRef
	if ref.IsValid() || ref.Get(scene) != nil {
		t.Error("Zero ref should be empty")
	}

	ref.Set(crate)
	if got := ref.Get(scene); got != crate {
		t.Errorf("Expected ref to resolve to the crate, got %v", got)
	}
	if ref.Get(nil) != nil {
		t.Error("Ref should not resolve without a scene")
	}
	if ref.Get(NewScene("Other")) != nil {
		t.Error("Ref should not resolve in a scene that does not hold the object")
	}

	ref.Set(nil)
	if ref.IsValid() {
		t.Error("Set(nil) should clear the ref")
	}
}

func TestGameObjectRefWeakAfterRemoval(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Crate")
	scene.AddGameObject(obj)

	var ref GameObjectRef
	ref.Set(obj)

	scene.RemoveGameObject(obj)

	if ref.Get(scene) != nil {
		t.Error("Ref to removed object should resolve to nil")
	}
	if !ref.IsValid() {
		t.Error("Ref keeps its UID after the object is gone")
	}

	ref.Clear()
	if ref.IsValid() {
		t.Error("Clear should empty the ref")
	}
}

func TestGameObjectRefToHeldChildOfRemovedParent(t *testing.T) {
	scene := NewScene("Test")
	player := NewGameObject("Player")
	crate := NewGameObject("Crate")
	scene.AddGameObject(player)
	scene.AddGameObject(crate)
	crate.AttachKeepWorld(player)

	var held GameObjectRef
	held.Set(crate)
	scene.RemoveGameObject(player)

	if held.Get(scene) != nil {
		t.Error("Held object removed with its holder should resolve to nil")
	}
}

func TestGameObjectRefDistinctObjects(t *testing.T) {
	scene := NewScene("Test")
	a := NewGameObject("Crate")
	b := NewGameObject("Crate")
	scene.AddGameObject(a)
	scene.AddGameObject(b)

	var ra, rb GameObjectRef
	ra.Set(a)
	rb.Set(b)

	if ra.Get(scene) != a || rb.Get(scene) != b {
		t.Error("Refs to same-named objects should resolve by UID")
	}
}
