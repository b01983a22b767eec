package orders

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{"Order ID", "User Name", "Email", "Phone Number", "App Subscription", "Plan", "Amount", "Status", "Date"}

// WriteCSV streams the given orders as the admin export. Read side only.
func WriteCSV(w io.Writer, list []Order) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, o := range list {
		phone := o.UserPhone
		if phone == "" {
			phone = "N/A"
		}
		row := []string{
			o.ID,
			o.UserName,
			o.UserEmail,
			phone,
			o.OTTName,
			o.PlanName,
			strconv.Itoa(o.Amount),
			string(o.Status),
			o.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
