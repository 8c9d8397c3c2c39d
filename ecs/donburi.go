package ecs

import (
	"github.com/phanxgames/runes"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MenuEventType is the Donburi event type for runes menu events.
// Subscribe to this in your ECS systems to receive expand, collapse, select
// and spiral mode events.
var MenuEventType = events.NewEventType[runes.MenuEvent]()

// MenuState mirrors the latest known state of one menu.
type MenuState struct {
	Name       string
	Expanded   bool
	Spiral     bool
	ActiveSlot int
	Icon       string
}

// MenuStateComponent holds a MenuState on the entity created for each menu.
var MenuStateComponent = donburi.NewComponentType[MenuState]()

// DonburiStore is an EntityStore backed by a Donburi world.
type DonburiStore struct {
	world    donburi.World
	entities map[string]donburi.Entity
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Menu events are published to MenuEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) *DonburiStore {
	return &DonburiStore{world: world, entities: make(map[string]donburi.Entity)}
}

// EmitEvent publishes event and updates the menu's MenuState entity.
func (s *DonburiStore) EmitEvent(event runes.MenuEvent) {
	st := s.state(event.Menu)
	st.Expanded = event.Expanded
	st.Spiral = event.Spiral
	st.Icon = event.Icon
	if event.Type == runes.EventSelect {
		st.ActiveSlot = event.Index
	}
	MenuEventType.Publish(s.world, event)
}

// Entity returns the entity holding the MenuState of the named menu.
func (s *DonburiStore) Entity(menu string) (donburi.Entity, bool) {
	e, ok := s.entities[menu]
	return e, ok
}

func (s *DonburiStore) state(menu string) *MenuState {
	e, ok := s.entities[menu]
	if !ok || !s.world.Valid(e) {
		e = s.world.Create(MenuStateComponent)
		s.entities[menu] = e
		MenuStateComponent.SetValue(s.world.Entry(e), MenuState{Name: menu})
	}
	return MenuStateComponent.Get(s.world.Entry(e))
}
