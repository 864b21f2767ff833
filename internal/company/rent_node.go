package company

import (
	"github.com/google/uuid"

	"carrental/internal/domain"
)

// RentNode is one link of a Company list. It owns a private copy of its rent.
type RentNode struct {
	id   uuid.UUID
	rent *domain.Rent
	next *RentNode
}

func NewRentNode(r *domain.Rent) *RentNode {
	return NewRentNodeWithNext(r, nil)
}

func NewRentNodeWithNext(r *domain.Rent, next *RentNode) *RentNode {
	return &RentNode{
		id:   uuid.New(),
		rent: r.Clone(),
		next: next,
	}
}

// Clone copies the node's rent and link. The copy keeps the node id.
func (n *RentNode) Clone() *RentNode {
	return &RentNode{
		id:   n.id,
		rent: n.rent.Clone(),
		next: n.next,
	}
}

// ID identifies the node in logs and reports. It plays no part in equality.
func (n *RentNode) ID() uuid.UUID {
	return n.id
}

// Rent returns a copy of the stored rent.
func (n *RentNode) Rent() *domain.Rent {
	return n.rent.Clone()
}

func (n *RentNode) Next() *RentNode {
	return n.next
}

func (n *RentNode) SetRent(r *domain.Rent) {
	n.rent = r.Clone()
}

func (n *RentNode) SetNext(next *RentNode) {
	n.next = next
}
