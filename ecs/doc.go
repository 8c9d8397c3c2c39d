// Package ecs provides ECS adapters for runes menu events.
//
// The primary adapter is [NewDonburiStore], which bridges menu events
// (expand, collapse, select, spiral mode) into a [Donburi] world as typed
// events and keeps one [MenuState] entity per menu up to date.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
