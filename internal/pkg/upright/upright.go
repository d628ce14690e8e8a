package upright

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
)

// Report endpoints of the Upright Labs reporting API.
const (
	EndpointOrderItems           = "/order_items"
	EndpointEbayListings         = "/listings/ebay"
	EndpointShopgoodwillListings = "/listings/shopgoodwill"
	EndpointPaidOrders           = "/paid_orders"
)

type Client struct {
	key     string
	baseURL string
	client  *http.Client
}

func New(apiKey, baseURL string) *Client {
	return &Client{
		key:     apiKey,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// UseDefaultClient routes requests through http.DefaultClient so that tests
// can install a mock transport.
func (c *Client) UseDefaultClient() {
	c.client = http.DefaultClient
}

// Collection is one raw upstream response body. The reporting API returns
// either a bare JSON array or a {"data": [...]} envelope depending on the
// endpoint and API revision.
type Collection []byte

func (c Collection) Raw() []byte {
	return c
}

// Records returns the item sequence of the collection. ok is false when the
// body is neither an array nor an envelope with a "data" array; callers treat
// that as an empty collection.
func (c Collection) Records() ([]gjson.Result, bool) {
	v := gjson.ParseBytes(c)
	if v.IsArray() {
		return v.Array(), true
	}
	if data := v.Get("data"); data.IsArray() {
		return data.Array(), true
	}
	return nil, false
}

// FetchWindow retrieves one report collection for the given time window.
// time_start and time_end are passed through to the API unmodified. The HTTP
// status is not interpreted: an upstream JSON error object flows through and
// is handled by the shape checks downstream. Only a transport failure or a
// non-JSON body is an error.
func (c *Client) FetchWindow(ctx context.Context, endpoint, timeStart, timeEnd string) (Collection, error) {
	u, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("time_start", timeStart)
	q.Set("time_end", timeEnd)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Authorization", c.key)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upright %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("upright %s: %w", endpoint, err)
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("upright %s: non-JSON response (status %d)", endpoint, resp.StatusCode)
	}

	return Collection(body), nil
}
