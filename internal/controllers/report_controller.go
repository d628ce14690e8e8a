package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"upright/internal/export"
	"upright/internal/pkg/upright"
)

type ReportController struct {
	Client *upright.Client
}

// GetOrderItems forwards the order-items report for the requested window.
func (rc *ReportController) GetOrderItems(c *gin.Context) {
	rc.passThrough(c, upright.EndpointOrderItems)
}

// GetEbayListings forwards the eBay listings report for the requested window.
func (rc *ReportController) GetEbayListings(c *gin.Context) {
	rc.passThrough(c, upright.EndpointEbayListings)
}

// GetShopgoodwillListings forwards the shopgoodwill listings report for the
// requested window.
func (rc *ReportController) GetShopgoodwillListings(c *gin.Context) {
	rc.passThrough(c, upright.EndpointShopgoodwillListings)
}

func (rc *ReportController) passThrough(c *gin.Context, endpoint string) {
	col, err := rc.Client.FetchWindow(c.Request.Context(), endpoint, c.Query("time_start"), c.Query("time_end"))
	if err != nil {
		log.Printf("upstream fetch failed for %s: %v", endpoint, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API fetch failed"})
		return
	}
	c.Data(http.StatusOK, "application/json", col.Raw())
}

// Export runs the full merge-and-normalize pipeline for the requested window
// and returns one flat row per SKU. The four report collections are fetched
// concurrently; a failure of any one fails the whole request. There is no
// partial-success mode here: shape mismatches inside a collection degrade to
// empty, transport failures do not.
func (rc *ReportController) Export(c *gin.Context) {
	timeStart := c.Query("time_start")
	timeEnd := c.Query("time_end")
	shippingMethod := c.Query("shipping_method")

	var orders, ebay, sg, paid upright.Collection

	g, ctx := errgroup.WithContext(c.Request.Context())
	fetch := func(endpoint string, dst *upright.Collection) func() error {
		return func() error {
			col, err := rc.Client.FetchWindow(ctx, endpoint, timeStart, timeEnd)
			if err != nil {
				return err
			}
			*dst = col
			return nil
		}
	}
	g.Go(fetch(upright.EndpointOrderItems, &orders))
	g.Go(fetch(upright.EndpointEbayListings, &ebay))
	g.Go(fetch(upright.EndpointShopgoodwillListings, &sg))
	g.Go(fetch(upright.EndpointPaidOrders, &paid))
	if err := g.Wait(); err != nil {
		log.Printf("export fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		return
	}

	paidRecords, ok := paid.Records()
	if !ok {
		log.Printf("expected an array for paid_orders, got: %.200s", paid.Raw())
	}
	buyers := export.BuildBuyerIndex(paidRecords)

	buckets := export.Merge(orders, ebay, sg, shippingMethod)

	c.JSON(http.StatusOK, export.Normalize(buckets, buyers))
}
