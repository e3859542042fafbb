package system

import (
	"go-tower-sim/internal/event"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func listenAll(d *event.Dispatcher) *recorder {
	r := &recorder{}
	for _, t := range []event.EventType{
		event.TowerPlaced, event.TowerRemoved, event.UnitsSpawned,
		event.UnitKilled, event.UnitDied, event.UnitArrived,
	} {
		d.Subscribe(t, r)
	}
	return r
}
