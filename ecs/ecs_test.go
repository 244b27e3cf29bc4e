package ecs_test

import (
	"testing"

	"github.com/yohamta/donburi"

	"github.com/go-theft-auto/inputmap"
	"github.com/go-theft-auto/inputmap/ecs"
)

type context int

const gameplay context = 0

func newRegistry() *inputmap.Registry[context, string] {
	set := inputmap.NewBindingSet[string]()
	set.BeginKey("jump").Add(inputmap.KeyInput(inputmap.KeySpace)).Finish()

	reg := inputmap.NewRegistry[context, string]()
	reg.AddInput(gameplay, set)
	return reg
}

func TestEachVisitsTrackedEntities(t *testing.T) {
	world := donburi.NewWorld()
	reg := newRegistry()

	a := world.Entry(world.Create())
	b := world.Entry(world.Create())
	world.Create() // no actor

	idA := ecs.Attach(a, reg, gameplay)
	idB := ecs.Attach(b, reg, gameplay)
	if idA == idB {
		t.Fatal("expected distinct actors")
	}
	if got := *ecs.Actor.Get(b); got != idB {
		t.Errorf("expected %v on entity, got %v", idB, got)
	}

	reg.BeginTick()
	reg.ProcessKey(inputmap.KeySpace, inputmap.Pressed)
	reg.EndTick()

	seen := map[inputmap.ActorID]bool{}
	ecs.Each(world, reg, func(e *donburi.Entry, h inputmap.Handle[context, string]) {
		if !h.JustPressed("jump") {
			t.Errorf("%v: expected jump", h.Actor())
		}
		seen[h.Actor()] = true
	})
	if len(seen) != 2 || !seen[idA] || !seen[idB] {
		t.Errorf("expected both actors visited, got %v", seen)
	}
}

func TestDetach(t *testing.T) {
	world := donburi.NewWorld()
	reg := newRegistry()

	e := world.Entry(world.Create())
	id := ecs.Attach(e, reg, gameplay)
	ecs.Detach(e, reg)

	if e.HasComponent(ecs.Actor) {
		t.Error("expected component removed")
	}
	if _, ok := reg.Handle(id); ok {
		t.Error("expected actor stopped")
	}

	// Detaching twice is harmless
	ecs.Detach(e, reg)
}

func TestDispatch(t *testing.T) {
	world := donburi.NewWorld()
	reg := newRegistry()
	for range 3 {
		ecs.Attach(world.Entry(world.Create()), reg, gameplay)
	}

	jumps := 0
	actions := inputmap.NewActionRegistry[context, string]()
	actions.Register("jump", "jump", inputmap.OnPress, func(float32) { jumps++ })

	reg.BeginTick()
	reg.ProcessKey(inputmap.KeySpace, inputmap.Pressed)
	reg.EndTick()

	if n := ecs.Dispatch(world, reg, actions); n != 3 {
		t.Errorf("expected 3 entities handled, got %d", n)
	}
	if jumps != 3 {
		t.Errorf("expected 3 jumps, got %d", jumps)
	}
}
