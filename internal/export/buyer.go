package export

import "github.com/tidwall/gjson"

// BuyerContact is the resolved shipping contact for one buyer, sourced from
// the paid-orders collection.
type BuyerContact struct {
	ShippingContact string
	ShippingCity    string
}

// BuyerIndex maps channel_buyer_id to its resolved contact.
type BuyerIndex map[string]BuyerContact

// BuildBuyerIndex resolves a contact for every paid-order record that carries
// a channel_buyer_id. Records without one are skipped; a later record for the
// same buyer overwrites an earlier one.
func BuildBuyerIndex(paidOrders []gjson.Result) BuyerIndex {
	index := BuyerIndex{}
	for _, rec := range paidOrders {
		buyerID := rec.Get("channel_buyer_id").String()
		if buyerID == "" {
			continue
		}
		index[buyerID] = BuyerContact{
			ShippingContact: ShippingContact(rec),
			ShippingCity:    ShippingCity(rec),
		}
	}
	return index
}
