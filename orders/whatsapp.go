package orders

import (
	"fmt"
	"net/url"
)

// WhatsAppLink builds the wa.me deep link opened after an order is recorded,
// pre-filled with the order details for the manual verification channel.
func WhatsAppLink(number string, o Order) string {
	msg := fmt.Sprintf(
		"Hello OTT Trusted Team!\n\nI want to confirm my OTT order.\n\nOrder ID: %s\nName: %s\nEmail: %s\nOTT App: %s\nPlan: %s\nAmount: ₹%d\n\nPayment screenshot attached in system.",
		o.ID, o.UserName, o.UserEmail, o.OTTName, o.PlanName, o.Amount,
	)
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(msg)
}
