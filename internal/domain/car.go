package domain

import (
	"fmt"
	"strings"
)

// CarType is the rate class of a car, from A (cheapest) to D.
type CarType byte

const (
	CarTypeA CarType = 'A'
	CarTypeB CarType = 'B'
	CarTypeC CarType = 'C'
	CarTypeD CarType = 'D'

	// CarTypeNone is reported when there is no car to classify.
	CarTypeNone CarType = 'N'
)

const (
	minCarID     = 999999
	maxCarID     = 10000000
	DefaultCarID = 9999999
)

func (t CarType) IsValid() bool {
	return t == CarTypeA || t == CarTypeB || t == CarTypeC || t == CarTypeD
}

func (t CarType) String() string {
	return string(rune(t))
}

// ParseCarType reads a single type letter, case-insensitively.
func ParseCarType(s string) (CarType, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 1 {
		return 0, fmt.Errorf("invalid car type %q", s)
	}
	t := CarType(s[0])
	if !t.IsValid() {
		return 0, fmt.Errorf("invalid car type %q, expected one of A, B, C, D", s)
	}
	return t, nil
}

// Car is a rentable vehicle. Invalid ids and types are replaced with
// DefaultCarID and CarTypeA instead of being rejected.
type Car struct {
	id       int
	carType  CarType
	brand    string
	isManual bool
}

func normalizeCarID(id int) int {
	if id <= minCarID || id >= maxCarID {
		return DefaultCarID
	}
	return id
}

func normalizeCarType(t CarType) CarType {
	if !t.IsValid() {
		return CarTypeA
	}
	return t
}

func NewCar(id int, carType CarType, brand string, isManual bool) Car {
	return Car{
		id:       normalizeCarID(id),
		carType:  normalizeCarType(carType),
		brand:    brand,
		isManual: isManual,
	}
}

func (c Car) ID() int { return c.id }
func (c Car) Type() CarType { return c.carType }
func (c Car) Brand() string { return c.brand }
func (c Car) IsManual() bool { return c.isManual }
func (c *Car) SetID(id int) { c.id = normalizeCarID(id) }
func (c *Car) SetType(t CarType) { c.carType = normalizeCarType(t) }
func (c *Car) SetBrand(b string) { c.brand = b }
func (c *Car) SetManual(m bool) { c.isManual = m }

// Equals compares type, brand and gear. The id is not part of a car's identity.
func (c Car) Equals(other Car) bool {
	return c.carType == other.carType && c.brand == other.brand && c.isManual == other.isManual
}

// Better reports whether c has a higher type than other, or the same type
// with an automatic gear where other is manual.
func (c Car) Better(other Car) bool {
	if c.carType != other.carType {
		return c.carType > other.carType
	}
	return !c.isManual && other.isManual
}

// Worse reports whether c is neither better than nor equal to other.
func (c Car) Worse(other Car) bool {
	return !c.Better(other) && !c.Equals(other)
}

func (c Car) gear() string {
	if c.isManual {
		return "manual"
	}
	return "auto"
}

func (c Car) String() string {
	return fmt.Sprintf("id:%d type:%s brand:%s gear:%s", c.id, c.carType, c.brand, c.gear())
}
