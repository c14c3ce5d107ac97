package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/canopy"
)

// InteractionEventType is the Donburi event type carrying canopy pointer and
// resize events.
var InteractionEventType = events.NewEventType[canopy.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world. Events
// are queued on InteractionEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) canopy.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event canopy.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// Subscribe registers fn for events of type t only.
func Subscribe(world donburi.World, t canopy.EventType, fn func(donburi.World, canopy.InteractionEvent)) {
	InteractionEventType.Subscribe(world, func(w donburi.World, e canopy.InteractionEvent) {
		if e.Type == t {
			fn(w, e)
		}
	})
}
