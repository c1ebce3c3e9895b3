package domain

import "time"

// Client клиент картодрома
type Client struct {
	ID        int64
	RUT       string
	Name      string
	Email     string
	Phone     string
	BirthDate *time.Time // может отсутствовать
}

// HasBirthdayOn проверяет совпадение дня и месяца рождения с датой
func (c *Client) HasBirthdayOn(date time.Time) bool {
	if c.BirthDate == nil {
		return false
	}
	return c.BirthDate.Month() == date.Month() && c.BirthDate.Day() == date.Day()
}
