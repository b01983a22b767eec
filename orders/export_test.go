package orders_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"otttrusted/orders"
)

func TestWriteCSV(t *testing.T) {
	created := time.Date(2025, 11, 3, 14, 30, 0, 0, time.UTC)
	list := []orders.Order{
		{
			ID: "ORD-A", UserID: "u1", UserName: "Asha", UserEmail: "asha@x.com", UserPhone: "9000000001",
			OTTName: "Netflix Premium", PlanName: "Standard (Full HD)", Amount: 199,
			Status: orders.StatusApproved, CreatedAt: created,
		},
		{
			ID: "ORD-B", UserID: "u2", UserName: "Ravi", UserEmail: "ravi@x.com",
			OTTName: "Amazon Prime", PlanName: "Annual Gold", Amount: 999,
			Status: orders.StatusPending, CreatedAt: created,
		},
	}

	var buf bytes.Buffer
	if err := orders.WriteCSV(&buf, list); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatal("Expected header plus 2 rows, got", len(rows))
	}

	if rows[0][0] != "Order ID" || rows[0][8] != "Date" {
		t.Error("Expected export header, got", rows[0])
	}
	if rows[1][0] != "ORD-A" || rows[1][6] != "199" || rows[1][7] != "APPROVED" {
		t.Error("Expected first order row, got", rows[1])
	}
	if rows[1][8] != "2025-11-03 14:30:00" {
		t.Error("Expected formatted date, got", rows[1][8])
	}
	// empty phone exports as N/A
	if rows[2][3] != "N/A" {
		t.Error("Expected N/A phone, got", rows[2][3])
	}
}

func TestWhatsAppLink(t *testing.T) {
	o := orders.Order{
		ID: "ORD-A", UserName: "Asha", UserEmail: "asha@x.com",
		OTTName: "Netflix Premium", PlanName: "Standard (Full HD)", Amount: 199,
	}

	link := orders.WhatsAppLink("9113401017", o)
	if !strings.HasPrefix(link, "https://wa.me/9113401017?text=") {
		t.Error("Expected wa.me deep link, got", link)
	}
	if !strings.Contains(link, "ORD-A") {
		t.Error("Expected order id in message, got", link)
	}
	if strings.Contains(link, " ") {
		t.Error("Expected fully escaped message, got", link)
	}
}
