package domain

// Court a bookable court with a fixed hourly price
type Court struct {
	ID          int64
	Name        string
	Kind        string
	HourlyPrice int64
	IsActive    bool
}

// PriceFor returns the amount for the given number of hours
func (c *Court) PriceFor(hours int) int64 {
	return c.HourlyPrice * int64(hours)
}
