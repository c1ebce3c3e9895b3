package notifier

import (
	"fmt"
	"strings"
)

// FormatReceipt текст квитанции для рассылки участникам
func FormatReceipt(event *ReservationConfirmedEvent) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Reservation #%d\n", event.ReservationID)
	fmt.Fprintf(&b, "Titular: %s <%s>\n", event.TitularName, event.TitularEmail)
	fmt.Fprintf(&b, "Session: %s - %s, %d laps\n",
		event.StartTime.Format("2006-01-02 15:04"), event.EndTime.Format("15:04"), event.LapCount)
	fmt.Fprintf(&b, "Participants: %s\n", strings.Join(event.ParticipantNames, ", "))
	fmt.Fprintf(&b, "Base: %d\n", event.TotalBase)
	fmt.Fprintf(&b, "Discount: %d%%\n", event.DiscountPercent)
	fmt.Fprintf(&b, "Subtotal: %d\n", event.Subtotal)
	fmt.Fprintf(&b, "Tax: %d\n", event.Tax)
	fmt.Fprintf(&b, "Total: %d\n", event.Total)

	return b.String()
}
