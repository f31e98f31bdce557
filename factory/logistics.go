// Package factory shows object creation behind interfaces in two shapes:
//
//   - Factory Method: a Logistics creates the Transport that PlanDelivery uses.
//   - Abstract Factory: a FurnitureFactory creates a matching Chair and Table.
//
// Concrete variants are chosen either by constructing one directly or by a
// tagged value (FactoryFor).
package factory

import (
	"fmt"
	"io"
)

// Transport delivers goods.
type Transport interface {
	Deliver(w io.Writer)
}

type Truck struct{}

func (Truck) Deliver(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Delivering goods by land in a truck.")
}

type Ship struct{}

func (Ship) Deliver(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Delivering goods by sea in a ship.")
}

// Logistics decides which Transport to create.
type Logistics interface {
	CreateTransport() Transport
}

// RoadLogistics creates trucks.
type RoadLogistics struct{}

func (RoadLogistics) CreateTransport() Transport { return Truck{} }

// SeaLogistics creates ships.
type SeaLogistics struct{}

func (SeaLogistics) CreateTransport() Transport { return Ship{} }

// PlanDelivery creates a transport through l and delivers with it.
func PlanDelivery(l Logistics, w io.Writer) {
	l.CreateTransport().Deliver(w)
}
