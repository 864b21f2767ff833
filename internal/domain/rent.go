package domain

import (
	"fmt"

	"carrental/internal/utils"
)

// Rent is a single rental: a customer, a car and the period it is held.
// The return date is always after the pick-up date.
type Rent struct {
	name       string
	car        Car
	pickDate   Date
	returnDate Date
}

// NewRent creates a rental. A return date that is not after the pick-up date
// is replaced with the day after pick-up.
func NewRent(name string, car Car, pick, ret Date) *Rent {
	if !pick.Before(ret) {
		ret = pick.Tomorrow()
	}
	return &Rent{
		name:       name,
		car:        car,
		pickDate:   pick,
		returnDate: ret,
	}
}

// Clone returns an independent copy of r, or nil for a nil receiver.
func (r *Rent) Clone() *Rent {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

func (r *Rent) Name() string { return r.name }
func (r *Rent) Car() Car { return r.car }
func (r *Rent) PickDate() Date { return r.pickDate }
func (r *Rent) ReturnDate() Date { return r.returnDate }
func (r *Rent) SetName(name string) { r.name = name }
func (r *Rent) SetCar(car Car) { r.car = car }

// SetPickDate is ignored unless pick is before the current return date.
func (r *Rent) SetPickDate(pick Date) {
	if pick.Before(r.returnDate) {
		r.pickDate = pick
	}
}

// SetReturnDate is ignored unless ret is after the current pick-up date.
func (r *Rent) SetReturnDate(ret Date) {
	if ret.After(r.pickDate) {
		r.returnDate = ret
	}
}

// Equals reports whether both rentals have the same customer, an equal car
// and the same period.
func (r *Rent) Equals(other *Rent) bool {
	if other == nil {
		return false
	}
	return r.car.Equals(other.car) &&
		r.name == other.name &&
		r.pickDate.Equals(other.pickDate) &&
		r.returnDate.Equals(other.returnDate)
}

func (r *Rent) HowManyDays() int {
	return r.pickDate.Difference(r.returnDate)
}

// Price is derived from the car type and the number of days; see
// utils.CalculateRentalPrice.
func (r *Rent) Price() int {
	return utils.CalculateRentalPrice(byte(r.car.Type()), r.HowManyDays())
}

// PriceBreakdown splits Price into its discounted weeks and remaining days.
func (r *Rent) PriceBreakdown() utils.RentalPriceBreakdown {
	return utils.CalculateRentalPriceWithBreakdown(byte(r.car.Type()), r.HowManyDays())
}

// Upgrade swaps in newCar if it is better than the current car and returns
// the resulting price increase. It returns 0 and keeps the car otherwise.
func (r *Rent) Upgrade(newCar Car) int {
	if !newCar.Better(r.car) {
		return 0
	}
	before := r.Price()
	r.car = newCar
	return r.Price() - before
}

// Overlap merges two rentals of the same customer and car whose periods
// intersect. Periods that only touch (one returns the day the other picks
// up) count as intersecting. It returns nil when there is nothing to merge.
func (r *Rent) Overlap(other *Rent) *Rent {
	if other == nil || other.name != r.name || !other.car.Equals(r.car) {
		return nil
	}
	if r.returnDate.Before(other.pickDate) || other.returnDate.Before(r.pickDate) {
		return nil
	}

	pick := other.pickDate
	if r.pickDate.Before(pick) {
		pick = r.pickDate
	}
	ret := other.returnDate
	if r.returnDate.After(ret) {
		ret = r.returnDate
	}
	return NewRent(r.name, r.car, pick, ret)
}

func (r *Rent) String() string {
	return fmt.Sprintf("Name:%s From:%s To:%s Type:%s Days:%d Price:%d",
		r.name, r.pickDate, r.returnDate, r.car.Type(), r.HowManyDays(), r.Price())
}
