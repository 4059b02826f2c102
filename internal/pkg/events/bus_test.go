package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()

	var order []string
	bus.Subscribe("topic", func(interface{}) { order = append(order, "first") })
	bus.Subscribe("topic", func(interface{}) { order = append(order, "second") })

	bus.Publish("topic", nil)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestPublishOnlyReachesMatchingTopic(t *testing.T) {
	bus := NewBus()

	var got []interface{}
	bus.Subscribe("a", func(p interface{}) { got = append(got, p) })

	bus.Publish("b", "ignored")
	bus.Publish("a", "delivered")
	assert.Equal(t, []interface{}{"delivered"}, got)
}

func TestPublishWithoutSubscribersIsANoOp(t *testing.T) {
	assert.NotPanics(t, func() {
		NewBus().Publish("nobody-home", 42)
	})
}

func TestPanickingHandlerDoesNotStopDelivery(t *testing.T) {
	bus := NewBus()

	var delivered bool
	bus.Subscribe("topic", func(interface{}) { panic("boom") })
	bus.Subscribe("topic", func(interface{}) { delivered = true })

	assert.NotPanics(t, func() { bus.Publish("topic", nil) })
	assert.True(t, delivered)
}
