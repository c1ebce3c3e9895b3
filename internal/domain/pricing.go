package domain

// PriceQuote разбивка стоимости бронирования
type PriceQuote struct {
	BasePricePerPerson int
	Headcount          int
	TotalBase          int // BasePricePerPerson * Headcount
	DiscountPercent    int
	Subtotal           int // TotalBase минус скидка (целочисленное деление с отбрасыванием)
	Tax                int
	Total              int // round(Subtotal * 1.19), округление половины вверх
}

// CalculatePrice считает итоговую цену целочисленно, без float
func CalculatePrice(basePricePerPerson, headcount, discountPercent int) PriceQuote {
	totalBase := basePricePerPerson * headcount
	subtotal := totalBase - totalBase*discountPercent/100
	total := percentOfRoundHalfUp(subtotal, 100+TaxPercent)

	return PriceQuote{
		BasePricePerPerson: basePricePerPerson,
		Headcount:          headcount,
		TotalBase:          totalBase,
		DiscountPercent:    discountPercent,
		Subtotal:           subtotal,
		Tax:                total - subtotal,
		Total:              total,
	}
}

// percentOfRoundHalfUp возвращает round(amount * percent / 100) для неотрицательных значений
func percentOfRoundHalfUp(amount, percent int) int {
	return (amount*percent + 50) / 100
}
