package export

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Row is one flat export record per SKU. The three source sequences embed as
// JSON text so downstream spreadsheet consumers get the nested detail without
// extra tabular columns.
type Row struct {
	ProductSKU        string `json:"product_sku"`
	OrderItemsCount   int    `json:"order_items_count"`
	EbayCount         int    `json:"ebay_count"`
	ShopgoodwillCount int    `json:"shopgoodwill_count"`
	ShippingMethod    string `json:"shipping_method"`
	InventoryLocation string `json:"inventory_location"`
	ProductTitle      string `json:"product_title"`
	ChannelBuyerID    string `json:"channel_buyer_id"`
	ShippingContact   string `json:"shipping_contact"`
	ShippingCity      string `json:"shipping_city"`
	OrderItemsJSON    string `json:"order_items_json"`
	OrderPaidAt       string `json:"order_paid_at"`
	EbayJSON          string `json:"ebay_json"`
	ShopgoodwillJSON  string `json:"shopgoodwill_json"`
}

// Normalize derives one Row per bucket, in bucket order. The first order item
// of a bucket is its representative order; a bucket without order items uses
// a zero record, so every order-derived field defaults to empty. Shipping
// contact and city come from the buyer index when the lookup yields a
// non-empty value, falling back per field to direct resolution on the
// representative order.
func Normalize(buckets []*Bucket, buyers BuyerIndex) []Row {
	rows := make([]Row, 0, len(buckets))
	for _, b := range buckets {
		var first gjson.Result
		if len(b.OrderItems) > 0 {
			first = b.OrderItems[0]
		}

		buyerID := first.Get("channel_buyer_id").String()
		contact := buyers[buyerID].ShippingContact
		city := buyers[buyerID].ShippingCity
		if contact == "" {
			contact = ShippingContact(first)
		}
		if city == "" {
			city = ShippingCity(first)
		}

		rows = append(rows, Row{
			ProductSKU:        b.SKU,
			OrderItemsCount:   len(b.OrderItems),
			EbayCount:         len(b.Ebay),
			ShopgoodwillCount: len(b.Shopgoodwill),
			ShippingMethod:    first.Get("order_shipping_method").String(),
			InventoryLocation: first.Get("inventory_location").String(),
			ProductTitle:      first.Get("product_title").String(),
			ChannelBuyerID:    buyerID,
			ShippingContact:   contact,
			ShippingCity:      city,
			OrderItemsJSON:    rawArray(b.OrderItems),
			OrderPaidAt:       first.Get("order_paid_at").String(),
			EbayJSON:          rawArray(b.Ebay),
			ShopgoodwillJSON:  rawArray(b.Shopgoodwill),
		})
	}
	return rows
}

// rawArray rebuilds a JSON array from the records' verbatim source text.
func rawArray(recs []gjson.Result) string {
	if len(recs) == 0 {
		return "[]"
	}
	parts := make([]string, len(recs))
	for i, rec := range recs {
		parts[i] = rec.Raw
	}
	return "[" + strings.Join(parts, ",") + "]"
}
