package ecs_test

import "github.com/plus3/archstore/ecs"

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Rotation struct {
	Degrees float32
}

type Name struct {
	Value string
}

type Health struct {
	Current int
	Max     int
}

// Custom primitive types for testing non-struct components
type Score int32
type Temperature float64

type C1 struct{ V int }
type C2 struct{ V int }
type C3 struct{ V int }

// Tags
type Enemy struct{}
type Frozen struct{}
type Player struct{}
type T1 struct{}
type T2 struct{}

// Registration order fixes the canonical order used in rendered sets.
func init() {
	ecs.RegisterComponent[C1]()
	ecs.RegisterComponent[C2]()
	ecs.RegisterComponent[C3]()
	ecs.RegisterComponent[Health]()
	ecs.RegisterComponent[Name]()
	ecs.RegisterComponent[Position]()
	ecs.RegisterComponent[Rotation]()
	ecs.RegisterComponent[Score]()
	ecs.RegisterComponent[Temperature]()
	ecs.RegisterComponent[Velocity]()

	ecs.RegisterTag[Enemy]()
	ecs.RegisterTag[Frozen]()
	ecs.RegisterTag[Player]()
	ecs.RegisterTag[T1]()
	ecs.RegisterTag[T2]()
}
