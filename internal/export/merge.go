package export

import (
	"log"

	"github.com/tidwall/gjson"

	"upright/internal/pkg/upright"
)

// UnknownSKU groups records that carry no product_sku.
const UnknownSKU = "UNKNOWN"

// Bucket is the per-SKU working set of records collected from the three
// source collections. Each sequence preserves upstream order.
type Bucket struct {
	SKU          string
	OrderItems   []gjson.Result
	Ebay         []gjson.Result
	Shopgoodwill []gjson.Result
}

type bucketSet struct {
	bySKU   map[string]*Bucket
	ordered []*Bucket
}

func (s *bucketSet) bucket(rec gjson.Result) *Bucket {
	sku := rec.Get("product_sku").String()
	if sku == "" {
		sku = UnknownSKU
	}
	b, ok := s.bySKU[sku]
	if !ok {
		b = &Bucket{SKU: sku}
		s.bySKU[sku] = b
		s.ordered = append(s.ordered, b)
	}
	return b
}

// Merge groups the three source collections into per-SKU buckets. A
// collection that is not in array form degrades to empty with a logged
// warning; a single bad source must not abort the export. shippingMethod, if
// non-empty, filters the order-items collection only: records whose
// order_shipping_method differs are dropped before grouping. Buckets come
// back in first-seen SKU order across orders, then ebay, then shopgoodwill.
func Merge(orders, ebay, sg upright.Collection, shippingMethod string) []*Bucket {
	set := &bucketSet{bySKU: map[string]*Bucket{}}

	for _, rec := range records(orders, "order_items") {
		if shippingMethod != "" && rec.Get("order_shipping_method").String() != shippingMethod {
			continue
		}
		b := set.bucket(rec)
		b.OrderItems = append(b.OrderItems, rec)
	}
	for _, rec := range records(ebay, "ebay") {
		b := set.bucket(rec)
		b.Ebay = append(b.Ebay, rec)
	}
	for _, rec := range records(sg, "shopgoodwill") {
		b := set.bucket(rec)
		b.Shopgoodwill = append(b.Shopgoodwill, rec)
	}

	return set.ordered
}

func records(col upright.Collection, name string) []gjson.Result {
	recs, ok := col.Records()
	if !ok {
		log.Printf("expected an array for %s, got: %.200s", name, col.Raw())
		return nil
	}
	return recs
}
