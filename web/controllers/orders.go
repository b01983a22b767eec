package controllers

import (
	"net/http"
	"strconv"

	"otttrusted/auth"
	"otttrusted/orders"
	"otttrusted/payment/qrcode"

	"github.com/gin-gonic/gin"
)

// PlaceOrder records a PENDING order for the acting user and hands back the
// WhatsApp deep link for the manual verification channel.
func PlaceOrder(c *gin.Context) {
	user, ok := c.Get("user")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	userinfo := user.(auth.User)

	var body struct {
		OTTName       string `json:"ottName"`
		PlanName      string `json:"planName"`
		Amount        int    `json:"amount"`
		ProofAttached bool   `json:"proofAttached"`
		ProofImage    string `json:"proofImage"`
	}

	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !body.ProofAttached {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload payment screenshot proof first."})
		return
	}

	order, err := orderM.Place(userinfo, body.OTTName, body.PlanName, body.Amount, body.ProofAttached, body.ProofImage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":        order,
		"whatsapp_url": orders.WhatsAppLink(settingsM.Get().WhatsappNumber, order),
	})
}

// MyOrders lists the acting user's own orders, newest first, optionally
// filtered by status.
func MyOrders(c *gin.Context) {
	user, ok := c.Get("user")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	userinfo := user.(auth.User)

	list := orderM.ByUser(userinfo.ID)
	if status := orders.Status(c.Query("status")); status != "" {
		filtered := make([]orders.Order, 0, len(list))
		for _, o := range list {
			if o.Status == status {
				filtered = append(filtered, o)
			}
		}
		list = filtered
	}

	c.JSON(http.StatusOK, gin.H{"orders": list})
}

// PaymentQR renders the UPI collect QR for the selected plan. The price comes
// from the catalog, not the client.
func PaymentQR(c *gin.Context) {
	serviceID := c.Query("service")
	planID := c.Query("plan")

	svc, ok := catalogM.Get(serviceID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}

	amount := 0
	found := false
	for _, p := range svc.Plans {
		if p.ID == planID {
			amount = p.Price
			found = true
			break
		}
	}
	if !found {
		// also accept an explicit amount for custom plans
		if v, err := strconv.Atoi(c.Query("amount")); err == nil && v > 0 {
			amount = v
		} else {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
			return
		}
	}

	png, err := qrcode.GenerateUPIQRCode(settingsM.Get().UpiID, amount, svc.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
