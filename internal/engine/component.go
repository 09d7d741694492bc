package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// LookProvider is implemented by components that control camera look direction.
// Used by the follow camera to orbit its target.
type LookProvider interface {
	GetLookDirection() (x, y, z float32)
	GetEyeHeight() float32
}

// CollisionHandler is implemented by components that want to receive collision callbacks.
// Scripts can implement these methods to react to solid contacts.
type CollisionHandler interface {
	OnCollisionEnter(other *GameObject)
	OnCollisionExit(other *GameObject)
}

// TriggerHandler is implemented by components that react to trigger volumes.
// Both the trigger's components and the overlapping object's components are notified.
type TriggerHandler interface {
	OnTriggerEnter(other *GameObject)
	OnTriggerExit(other *GameObject)
}

// CollisionFilter lets a component veto solid contacts with specific objects.
// A projectile uses it to pass through the character that fired it.
type CollisionFilter interface {
	IgnoresCollisionWith(other *GameObject) bool
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

// World returns the WorldAccess of the scene this component lives in, or nil
// when the component is detached or the scene has no world.
func (b *BaseComponent) World() WorldAccess {
	if b.gameObject == nil || b.gameObject.Scene == nil {
		return nil
	}
	return b.gameObject.Scene.World
}
