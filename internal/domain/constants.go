package domain

// Скидки по особым датам
const (
	BirthdayDiscountPercent = 50
	WeekendDiscountPercent  = 10
	HolidayDiscountPercent  = 20
)

// Границы процента скидки
const (
	MinDiscountPercent = 0
	MaxDiscountPercent = 100
)

// TaxPercent НДС, начисляемый на сумму после скидки
const TaxPercent = 19

// Time format constants
const (
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04" // локальное время заезда без часового пояса
	TimeFormat     = "15:04"
)

// HeadcountBrackets диапазоны количества участников для отчёта по выручке
var HeadcountBrackets = []struct {
	Min   int
	Max   int
	Label string
}{
	{Min: 1, Max: 2, Label: "1-2"},
	{Min: 3, Max: 5, Label: "3-5"},
	{Min: 6, Max: 10, Label: "6-10"},
	{Min: 11, Max: 15, Label: "11-15"},
}
