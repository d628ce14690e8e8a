package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"upright/internal/config"
	"upright/internal/controllers"
	"upright/internal/pkg/upright"
	"upright/internal/store"
)

// SetupRouter initializes all controllers and API routes
func SetupRouter(client *upright.Client, checkboxes store.CheckboxStore, cfg *config.Config) *gin.Engine {
	reportController := controllers.ReportController{Client: client}
	checkboxController := controllers.CheckboxController{Store: checkboxes}

	// Set up Gin router
	router := gin.Default()

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})

	api := router.Group("/api")
	{
		// Raw pass-through of the upstream report endpoints
		api.GET("/order_items", reportController.GetOrderItems)
		listings := api.Group("/listings")
		{
			listings.GET("/ebay", reportController.GetEbayListings)
			listings.GET("/shopgoodwill", reportController.GetShopgoodwillListings)
		}

		// Full merge-and-normalize pipeline
		api.GET("/export", reportController.Export)

		// UI checkbox toggles
		api.GET("/checkbox-state", checkboxController.GetState)
		api.POST("/checkbox-state", checkboxController.UpdateState)
	}

	// Everything outside /api serves the static UI
	router.NoRoute(gin.WrapH(http.FileServer(gin.Dir(cfg.PublicDir, false))))

	return router
}
