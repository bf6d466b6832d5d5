// Package publisher sends immediate and delayed messages through a
// topology.Transport.
//
// Delayed delivery relies entirely on the broker: a delayed send sets a
// per-message TTL, the message sits in the unit's queue until it expires,
// and the broker dead-letters it to the unit's dead-letter target, where
// the actual consumer picks it up. The publisher itself holds no timers
// and no state; it only computes the expiration and routes the publish.
//
//	pub := publisher.NewPublisher(publisher.Config{}, transport).
//		WithLogger(log)
//
//	unit, _ := registry.Lookup("task.ttl")
//	err := pub.SendDelayed(ctx, unit, payload, 30) // delivered via DLX in ~30s
//
// Publishing is fire-and-forget at this layer: errors are propagated, but
// there is no retry and no confirm wait. Callers that need delivery
// confirmation use a transport with publisher acknowledgements. All Send
// methods are safe for concurrent use; the publisher shares nothing
// mutable between calls.
package publisher
