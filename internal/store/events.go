package store

// Topics published on every successful mutation. Payload is the operation
// name followed by the affected product id (empty for whole-cart ops).
const (
	TopicInventoryChanged = "store.inventory.changed"
	TopicCartChanged      = "store.cart.changed"
	TopicCheckout         = "store.checkout"
)

// EventPublisher is the slice of the event bus the bookkeeping layer
// needs. asaskevich/EventBus satisfies it; a nil publisher disables
// notifications.
type EventPublisher interface {
	Publish(topic string, args ...interface{})
}

func publish(bus EventPublisher, topic string, args ...interface{}) {
	if bus != nil {
		bus.Publish(topic, args...)
	}
}
