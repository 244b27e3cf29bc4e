// Package ecs attaches inputmap actors to donburi entities.
//
//	player := world.Entry(world.Create(ecs.Actor))
//	ecs.Actor.SetValue(player, reg.CreateActor(Gameplay))
//
//	// each tick, after reg.EndTick()
//	ecs.Each(world, reg, func(e *donburi.Entry, h inputmap.Handle[Context, Action]) {
//		...
//	})
package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/go-theft-auto/inputmap"
)

// Actor is the component holding the entity's actor ID.
var Actor = donburi.NewComponentType[inputmap.ActorID]()

var actors = donburi.NewQuery(filter.Contains(Actor))

// Attach creates an actor in context and stores its ID on the entry.
func Attach[C, A comparable](e *donburi.Entry, reg *inputmap.Registry[C, A], context C) inputmap.ActorID {
	id := reg.CreateActor(context)
	if !e.HasComponent(Actor) {
		e.AddComponent(Actor)
	}
	Actor.SetValue(e, id)
	return id
}

// Detach stops tracking the entry's actor and removes the component.
func Detach[C, A comparable](e *donburi.Entry, reg *inputmap.Registry[C, A]) {
	if !e.HasComponent(Actor) {
		return
	}
	reg.StopTracking(*Actor.Get(e))
	e.RemoveComponent(Actor)
}

// Each calls fn for every entity whose actor has a readable handle.
// Entities whose actor is unknown or has no active context are skipped.
func Each[C, A comparable](w donburi.World, reg *inputmap.Registry[C, A], fn func(e *donburi.Entry, h inputmap.Handle[C, A])) {
	actors.Each(w, func(e *donburi.Entry) {
		if h, ok := reg.Handle(*Actor.Get(e)); ok {
			fn(e, h)
		}
	})
}

// Dispatch runs actions against every entity's handle. Returns the number of
// entities for which at least one handler ran.
func Dispatch[C, A comparable](w donburi.World, reg *inputmap.Registry[C, A], actions *inputmap.ActionRegistry[C, A]) int {
	n := 0
	Each(w, reg, func(_ *donburi.Entry, h inputmap.Handle[C, A]) {
		if actions.HandleActions(h) {
			n++
		}
	})
	return n
}
