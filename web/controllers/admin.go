package controllers

import (
	"fmt"
	"net/http"
	"time"

	"otttrusted/catalog"
	"otttrusted/orders"
	"otttrusted/settings"
	"otttrusted/utils"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// ListOrders returns every order for the dashboard, optionally filtered by
// status.
func ListOrders(c *gin.Context) {
	if status := orders.Status(c.Query("status")); status != "" {
		c.JSON(http.StatusOK, gin.H{"orders": orderM.ByStatus(status)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orderM.List()})
}

// UpdateOrderStatus approves or rejects an order. An unknown id is silently
// ignored.
func UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		Status orders.Status `json:"status"`
	}
	if err := c.BindJSON(&body); err != nil || !body.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	order, err := orderM.UpdateStatus(id, body.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

// ExportOrders downloads the full order book as CSV.
func ExportOrders(c *gin.Context) {
	filename := fmt.Sprintf("OTT_TRUSTED_DATA_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := orders.WriteCSV(c.Writer, orderM.List()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export orders"})
	}
}

func AddService(c *gin.Context) {
	var svc catalog.OTTService
	if err := c.BindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if svc.ID == "" {
		svc.ID = utils.GenerateUUID()
	}
	if err := catalogM.Add(svc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save service"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": svc})
}

func UpdateService(c *gin.Context) {
	var patch catalog.ServicePatch
	if err := c.BindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := catalogM.Update(c.Param("id"), patch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save service"})
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func DeleteService(c *gin.Context) {
	if err := catalogM.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

// UpdateSettings replaces the whole site configuration record.
func UpdateSettings(c *gin.Context) {
	var s settings.AppSettings
	if err := c.BindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := settingsM.Set(s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settingsM.Get()})
}

// Stats feeds the dashboard header: order counters plus host load.
func Stats(c *gin.Context) {
	all := orderM.List()
	counts := map[orders.Status]int{}
	revenue := 0
	for _, o := range all {
		counts[o.Status]++
		if o.Status == orders.StatusApproved {
			revenue += o.Amount
		}
	}

	cpuUsage, err := cpu.Percent(time.Second, false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read CPU usage"})
		return
	}
	memInfo, err := mem.VirtualMemory()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read memory usage"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": gin.H{
			"total":    len(all),
			"pending":  counts[orders.StatusPending],
			"approved": counts[orders.StatusApproved],
			"rejected": counts[orders.StatusRejected],
			"revenue":  revenue,
		},
		"system": gin.H{
			"cpu_percent":      cpuUsage[0],
			"mem_used_percent": memInfo.UsedPercent,
		},
	})
}
