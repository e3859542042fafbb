package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) {
	r.events = append(r.events, e)
}

func TestDispatchReachesSubscribersOfType(t *testing.T) {
	d := NewDispatcher()
	placed := &recorder{}
	removed := &recorder{}
	d.Subscribe(TowerPlaced, placed)
	d.Subscribe(TowerRemoved, removed)

	d.Dispatch(Event{Type: TowerPlaced, Data: 1})
	d.Dispatch(Event{Type: TowerPlaced, Data: 2})

	assert.Len(t, placed.events, 2)
	assert.Equal(t, 2, placed.events[1].Data)
	assert.Empty(t, removed.events)
}

func TestDispatchKeepsSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(UnitKilled, named{"first", &order})
	d.Subscribe(UnitKilled, named{"second", &order})

	d.Dispatch(Event{Type: UnitKilled})

	assert.Equal(t, []string{"first", "second"}, order)
}

type named struct {
	name  string
	order *[]string
}

func (n named) OnEvent(Event) {
	*n.order = append(*n.order, n.name)
}

func TestDispatchWithoutListenersOrDispatcher(t *testing.T) {
	assert.NotPanics(t, func() { NewDispatcher().Dispatch(Event{Type: UnitArrived}) })

	var d *Dispatcher
	assert.NotPanics(t, func() { d.Dispatch(Event{Type: UnitArrived}) })
}
