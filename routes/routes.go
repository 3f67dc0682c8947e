package routes

import (
	"paymint-backend/config"
	"paymint-backend/controllers"
	"paymint-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	allowed := []string{config.C.FrontendURL, "http://localhost:3000"}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowed,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestLogger())

	users := r.Group("/api/users")
	{
		users.POST("/register", controllers.Register)
		users.POST("/login", controllers.Login)

		users.Use(utils.AuthMiddleware())
		users.GET("/me", controllers.Me)
		users.PUT("/me", controllers.UpdateMe)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		clients := api.Group("/clients")
		{
			clients.POST("", controllers.CreateClient)
			clients.GET("", controllers.GetClients)
			clients.GET("/:id", controllers.GetClient)
			clients.PUT("/:id", controllers.UpdateClient)
			clients.DELETE("/:id", controllers.DeleteClient)
		}

		services := api.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		invoices := api.Group("/invoices")
		{
			invoices.GET("/dashboard/stats", controllers.GetDashboardStats)

			invoices.POST("/connect/onboard", controllers.ConnectOnboard)
			invoices.GET("/connect/status", controllers.ConnectStatus)

			invoices.POST("", controllers.CreateInvoice)
			invoices.GET("", controllers.GetInvoices)
			invoices.GET("/:id", controllers.GetInvoice)
			invoices.PUT("/:id", controllers.UpdateInvoice)
			invoices.DELETE("/:id", controllers.DeleteInvoice)

			invoices.GET("/:id/pdf", controllers.GetInvoicePDF)
			invoices.POST("/:id/send", controllers.SendInvoice)
			invoices.POST("/:id/create-payment-session", controllers.CreatePaymentSession)
		}
	}

	// Stripe calls this endpoint directly; the signature check inside the
	// handler is its authentication.
	r.POST("/api/invoices/webhook", controllers.StripeWebhook)

	return r
}
