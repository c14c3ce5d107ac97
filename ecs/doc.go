// Package ecs bridges canopy interaction events into an ECS world.
//
// [NewDonburiStore] publishes every consumed pointer event of a view with a
// non-zero EntityID, and every window resize, to a [Donburi] world as a typed
// event. Subscribe to [InteractionEventType] in your systems to receive them.
//
//	store := ecs.NewDonburiStore(world)
//	stage.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
