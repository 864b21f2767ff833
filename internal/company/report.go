package company

import (
	"gopkg.in/yaml.v3"

	"carrental/internal/domain"
)

// RentSummary is the report view of a single rental
type RentSummary struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	CarID      int    `yaml:"car_id"`
	CarType    string `yaml:"car_type"`
	Brand      string `yaml:"brand"`
	Manual     bool   `yaml:"manual"`
	PickDate   string `yaml:"pick_date"`
	ReturnDate string `yaml:"return_date"`
	Days       int    `yaml:"days"`
	Weeks      int    `yaml:"weeks"`
	DailyRate  int    `yaml:"daily_rate"`
	WeeksCost  int    `yaml:"weeks_cost"`
	DaysCost   int    `yaml:"days_cost"`
	Price      int    `yaml:"price"`
}

// Summary is the report view of a whole company
type Summary struct {
	Count          int           `yaml:"count"`
	TotalPrice     int           `yaml:"total_price"`
	TotalDays      int           `yaml:"total_days"`
	AverageDays    float64       `yaml:"average_days"`
	MostCommonType string        `yaml:"most_common_type"`
	LastCar        string        `yaml:"last_car,omitempty"`
	Longest        string        `yaml:"longest,omitempty"`
	Rents          []RentSummary `yaml:"rents"`
}

func summarizeRent(id string, r *domain.Rent) RentSummary {
	car := r.Car()
	price := r.PriceBreakdown()
	return RentSummary{
		ID:         id,
		Name:       r.Name(),
		CarID:      car.ID(),
		CarType:    car.Type().String(),
		Brand:      car.Brand(),
		Manual:     car.IsManual(),
		PickDate:   r.PickDate().String(),
		ReturnDate: r.ReturnDate().String(),
		Days:       r.HowManyDays(),
		Weeks:      price.Weeks,
		DailyRate:  price.DailyRate,
		WeeksCost:  price.WeeksCost,
		DaysCost:   price.DaysCost,
		Price:      price.TotalCost,
	}
}

// Summary collects the aggregate queries and every rental in list order.
func (c *Company) Summary() Summary {
	s := Summary{
		Count:          c.NumOfRents(),
		TotalPrice:     c.SumOfPrices(),
		TotalDays:      c.SumOfDays(),
		AverageDays:    c.AverageRent(),
		MostCommonType: c.MostCommonRate().String(),
		Rents:          make([]RentSummary, 0),
	}
	if car, ok := c.LastCarRent(); ok {
		s.LastCar = car.String()
	}
	if longest := c.LongestRent(); longest != nil {
		s.Longest = longest.String()
	}
	for n := c.head; n != nil; n = n.next {
		s.Rents = append(s.Rents, summarizeRent(n.id.String(), n.rent))
	}
	return s
}

// YAML renders the company summary as a YAML document.
func (c *Company) YAML() ([]byte, error) {
	return yaml.Marshal(c.Summary())
}
