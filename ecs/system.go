package ecs

// System represents a behavior that operates on entities with specific components.
// Systems can declare exported QueryN and Singleton fields, which the Scheduler
// initializes on registration, alongside any state that persists between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
