package export

import "github.com/tidwall/gjson"

// Upstream payload shape has drifted across API revisions, so shipping
// fields are resolved by probing an ordered list of candidate paths instead
// of decoding a fixed schema. First field that is present and not JSON null
// wins; an exhausted list resolves to "".
var (
	contactPaths = []string{
		"shipping_contact", // legacy flat field
		"shipping.contact",
		"shipping.name",
		"recipient_name",
		"buyer.name",
		"customer_name",
		"shipping_name",
	}

	cityPaths = []string{
		"shipping_city",
		"shipping.city",
	}
)

// ShippingContact resolves the best-effort shipping contact name of a record.
func ShippingContact(rec gjson.Result) string {
	return firstPresent(rec, contactPaths)
}

// ShippingCity resolves the best-effort shipping city of a record.
func ShippingCity(rec gjson.Result) string {
	return firstPresent(rec, cityPaths)
}

func firstPresent(rec gjson.Result, paths []string) string {
	for _, path := range paths {
		if v := rec.Get(path); v.Exists() && v.Type != gjson.Null {
			return v.String()
		}
	}
	return ""
}
