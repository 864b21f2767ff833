package company

import (
	"fmt"
	"strings"

	"carrental/internal/domain"
	"carrental/internal/logger"
)

// Company keeps its rentals in a singly linked list ordered by pick-up date.
// Rentals picked up on the same day are ordered longest first. No two equal
// rentals are ever stored. A Company is not safe for concurrent use.
type Company struct {
	head *RentNode
}

func New() *Company {
	return &Company{}
}

// comesBefore reports whether a belongs strictly ahead of b in the list
func comesBefore(a, b *domain.Rent) bool {
	ap, bp := a.PickDate(), b.PickDate()
	if ap.Before(bp) {
		return true
	}
	if ap.After(bp) {
		return false
	}
	return a.HowManyDays() > b.HowManyDays()
}

func (c *Company) contains(r *domain.Rent) bool {
	for n := c.head; n != nil; n = n.next {
		if n.rent.Equals(r) {
			return true
		}
	}
	return false
}

// AddRent builds a rental and inserts it in order. It returns false when an
// argument is missing or an equal rental is already stored.
func (c *Company) AddRent(name string, car *domain.Car, pick, ret *domain.Date) bool {
	if name == "" || car == nil || pick == nil || ret == nil {
		logger.Debug("Rent rejected, missing argument", "name", name)
		return false
	}

	rent := domain.NewRent(name, *car, *pick, *ret)
	if c.contains(rent) {
		logger.Debug("Rent rejected, already exists", "rent", rent.String())
		return false
	}

	node := NewRentNode(rent)
	if c.head == nil || comesBefore(rent, c.head.rent) {
		node.next = c.head
		c.head = node
	} else {
		curr := c.head
		for curr.next != nil && !comesBefore(rent, curr.next.rent) {
			curr = curr.next
		}
		node.next = curr.next
		curr.next = node
	}

	logger.Debug("Rent added", "id", node.id, "rent", rent.String())
	return true
}

// RemoveRent unlinks the first rental returned on d.
func (c *Company) RemoveRent(d domain.Date) bool {
	var prev *RentNode
	for curr := c.head; curr != nil; prev, curr = curr, curr.next {
		if !curr.rent.ReturnDate().Equals(d) {
			continue
		}
		if prev == nil {
			c.head = curr.next
		} else {
			prev.next = curr.next
		}
		curr.next = nil
		logger.Debug("Rent removed", "id", curr.id, "return_date", d.String())
		return true
	}
	return false
}

func (c *Company) NumOfRents() int {
	count := 0
	for n := c.head; n != nil; n = n.next {
		count++
	}
	return count
}

func (c *Company) SumOfPrices() int {
	sum := 0
	for n := c.head; n != nil; n = n.next {
		sum += n.rent.Price()
	}
	return sum
}

func (c *Company) SumOfDays() int {
	sum := 0
	for n := c.head; n != nil; n = n.next {
		sum += n.rent.HowManyDays()
	}
	return sum
}

// AverageRent is the mean rental length in days, or 0 for an empty company.
func (c *Company) AverageRent() float64 {
	if c.head == nil {
		return 0
	}
	return float64(c.SumOfDays()) / float64(c.NumOfRents())
}

// LastCarRent returns the car of the rental with the latest return date.
// On ties the earliest such rental in the list wins.
func (c *Company) LastCarRent() (domain.Car, bool) {
	if c.head == nil {
		return domain.Car{}, false
	}
	last := c.head.rent
	for n := c.head.next; n != nil; n = n.next {
		if n.rent.ReturnDate().After(last.ReturnDate()) {
			last = n.rent
		}
	}
	return last.Car(), true
}

// LongestRent returns a copy of the longest rental, or nil if there is none.
func (c *Company) LongestRent() *domain.Rent {
	if c.head == nil {
		return nil
	}
	longest := c.head.rent
	for n := c.head.next; n != nil; n = n.next {
		if n.rent.HowManyDays() > longest.HowManyDays() {
			longest = n.rent
		}
	}
	return longest.Clone()
}

// MostCommonRate returns the car type rented most often. Ties go to the
// higher type. CarTypeNone is returned for an empty company.
func (c *Company) MostCommonRate() domain.CarType {
	if c.head == nil {
		return domain.CarTypeNone
	}

	counts := make(map[domain.CarType]int, 4)
	for n := c.head; n != nil; n = n.next {
		counts[n.rent.Car().Type()]++
	}

	best := domain.CarTypeNone
	for _, t := range []domain.CarType{domain.CarTypeD, domain.CarTypeC, domain.CarTypeB, domain.CarTypeA} {
		if best == domain.CarTypeNone || counts[t] > counts[best] {
			best = t
		}
	}
	return best
}

// Includes walks both lists once, advancing through other only on a match.
// It is true when every rental of other was matched in order. A rental that
// appears in c only before its position in other is not found.
func (c *Company) Includes(other *Company) bool {
	if other == nil {
		return true
	}
	theirs := other.head
	for ours := c.head; ours != nil && theirs != nil; ours = ours.next {
		if theirs.rent.Equals(ours.rent) {
			theirs = theirs.next
		}
	}
	return theirs == nil
}

// Merge adds every rental of other. Rentals already present are skipped.
func (c *Company) Merge(other *Company) {
	if other == nil || other == c {
		return
	}
	for n := other.head; n != nil; n = n.next {
		car, pick, ret := n.rent.Car(), n.rent.PickDate(), n.rent.ReturnDate()
		c.AddRent(n.rent.Name(), &car, &pick, &ret)
	}
}

// Rents returns copies of the stored rentals in list order.
func (c *Company) Rents() []*domain.Rent {
	rents := make([]*domain.Rent, 0, c.NumOfRents())
	for n := c.head; n != nil; n = n.next {
		rents = append(rents, n.rent.Clone())
	}
	return rents
}

func (c *Company) String() string {
	count := c.NumOfRents()
	if count == 0 {
		return fmt.Sprintf("The company has %d rents.", count)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "The company has %d rents:\n", count)
	for n := c.head; n != nil; n = n.next {
		sb.WriteString(n.rent.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
