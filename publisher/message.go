package publisher

// Message is one outbound publish: payload, routing, and the optional
// per-message TTL. Messages are built per call, handed to the transport
// and discarded; nothing is persisted.
type Message struct {
	Exchange string
	RouteKey string
	Payload  []byte

	// ExpirationMillis is the per-message TTL. Zero means the message
	// never expires on its own.
	ExpirationMillis uint64
}

// newMessage builds the outbound message for a send. A zero delay produces
// no expiration, so a delayed send with delay 0 is identical to an
// immediate one.
func newMessage(exchange, routeKey string, payload []byte, delaySeconds uint32) Message {
	msg := Message{
		Exchange: exchange,
		RouteKey: routeKey,
		Payload:  payload,
	}
	if delaySeconds > 0 {
		msg.ExpirationMillis = uint64(delaySeconds) * 1000
	}
	return msg
}
