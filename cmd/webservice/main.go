package main

import (
	stlog "log"
	"log/slog"
	"os"
	"time"

	"otttrusted/auth"
	"otttrusted/catalog"
	"otttrusted/log"
	"otttrusted/orders"
	"otttrusted/settings"
	"otttrusted/store"
	"otttrusted/utils"
	"otttrusted/web/controllers"
	"otttrusted/web/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func openStore(logger *slog.Logger) store.Store {
	if dsn := os.Getenv("STORE_DSN"); dsn != "" {
		st, err := store.NewDBStore(dsn)
		if err != nil {
			stlog.Fatalln("Error opening mysql store:", err)
		}
		logger.Info("using mysql store")
		return st
	}

	dir := utils.Getenv("DATA_DIR", "data")
	st, err := store.NewFileStore(dir)
	if err != nil {
		stlog.Fatalln("Error opening file store:", err)
	}
	logger.Info("using file store", "dir", dir)
	return st
}

func main() {
	utils.LoadEnv()
	logger := log.New("webservice")

	st := openStore(logger)

	gate := auth.NewGate(st, utils.AdminEmail(), utils.AdminPassword())
	catalogM := catalog.NewManager(st)
	settingsM := settings.NewManager(st)
	orderM := orders.NewManager(st, os.Getenv("LOCK_TERMINAL_ORDERS") == "true")

	controllers.Setup(gate, catalogM, orderM, settingsM)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"POST", "OPTIONS", "GET", "PUT", "DELETE"},
		AllowHeaders:    []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "Cache-Control", "X-Requested-With"},
		MaxAge:          12 * time.Hour,
	}))

	globalLimiter := middleware.NewRateLimiter(15, time.Minute) // 15 requests/min/IP
	globalLimiter.StartCleanup(10 * time.Minute)

	requireAuth := middleware.RequireAuth(gate)
	adminAuth := middleware.AdminAuth(gate)

	r.POST("/signup", globalLimiter.Middleware(), controllers.Signup)
	r.POST("/login", globalLimiter.Middleware(), controllers.Login)
	r.POST("/logout", globalLimiter.Middleware(), requireAuth, controllers.Logout)
	r.GET("/user", globalLimiter.Middleware(), requireAuth, controllers.User)
	r.GET("/services", globalLimiter.Middleware(), controllers.Services)
	r.GET("/settings", globalLimiter.Middleware(), controllers.Settings)
	r.POST("/orders", globalLimiter.Middleware(), requireAuth, controllers.PlaceOrder)
	r.GET("/orders", globalLimiter.Middleware(), requireAuth, controllers.MyOrders)
	r.GET("/payment/qr", globalLimiter.Middleware(), requireAuth, controllers.PaymentQR)

	// Admin routes
	r.GET("/admin/orders", adminAuth, controllers.ListOrders)
	r.POST("/admin/orders/:id/status", adminAuth, controllers.UpdateOrderStatus)
	r.GET("/admin/orders/export", adminAuth, controllers.ExportOrders)
	r.POST("/admin/services", adminAuth, controllers.AddService)
	r.PUT("/admin/services/:id", adminAuth, controllers.UpdateService)
	r.DELETE("/admin/services/:id", adminAuth, controllers.DeleteService)
	r.PUT("/admin/settings", adminAuth, controllers.UpdateSettings)
	r.POST("/admin/reviews", adminAuth, controllers.AddReview)
	r.PUT("/admin/reviews/:index", adminAuth, controllers.UpdateReview)
	r.DELETE("/admin/reviews/:index", adminAuth, controllers.RemoveReview)
	r.GET("/admin/stats", adminAuth, controllers.Stats)

	port := os.Getenv("GIN_PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("storefront listening", "port", port)
	r.Run(":" + port)
}
