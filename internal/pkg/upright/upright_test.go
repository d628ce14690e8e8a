package upright_test

import (
	"context"

	"upright/internal/pkg/upright"
	"upright/internal/testhelpers"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Client", func() {
	var client *upright.Client
	var apiKey = "test-api-key"

	BeforeEach(func() {
		testhelpers.Activate()

		client = upright.New(apiKey, "https://app.uprightlabs.com/api/reports")
		client.UseDefaultClient()
	})

	AfterEach(func() {
		testhelpers.Deactivate()
	})

	Describe("FetchWindow", func() {
		It("requests the endpoint with the window and credential header", func() {
			testhelpers.New("https://app.uprightlabs.com").
				Get("/api/reports/order_items?time_start=2024-01-01&time_end=2024-01-31").
				MatchHeader("X-Authorization", apiKey).
				Reply(200).
				BodyString(`[{"product_sku":"S1"}]`)

			col, err := client.FetchWindow(context.Background(), upright.EndpointOrderItems, "2024-01-01", "2024-01-31")
			Expect(err).NotTo(HaveOccurred())
			Expect(testhelpers.IsDone()).To(BeTrue())

			recs, ok := col.Records()
			Expect(ok).To(BeTrue())
			Expect(recs).To(HaveLen(1))
			Expect(recs[0].Get("product_sku").String()).To(Equal("S1"))
		})

		It("fails on a non-JSON response body", func() {
			testhelpers.New("https://app.uprightlabs.com").
				Get("/api/reports/listings/ebay?time_start=a&time_end=b").
				Reply(502).
				BodyString(`<html>Bad Gateway</html>`)

			_, err := client.FetchWindow(context.Background(), upright.EndpointEbayListings, "a", "b")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("non-JSON response"))
		})

		It("fails on a transport error", func() {
			// no expectation registered, so the mock transport errors out
			_, err := client.FetchWindow(context.Background(), upright.EndpointPaidOrders, "a", "b")
			Expect(err).To(HaveOccurred())
		})

		It("passes a JSON error object through for downstream shape checks", func() {
			testhelpers.New("https://app.uprightlabs.com").
				Get("/api/reports/paid_orders?time_start=a&time_end=b").
				Reply(500).
				BodyString(`{"error":"internal"}`)

			col, err := client.FetchWindow(context.Background(), upright.EndpointPaidOrders, "a", "b")
			Expect(err).NotTo(HaveOccurred())

			_, ok := col.Records()
			Expect(ok).To(BeFalse())
		})
	})

	Describe("Collection", func() {
		It("reads records from a bare array", func() {
			recs, ok := upright.Collection(`[{"a":1},{"a":2}]`).Records()
			Expect(ok).To(BeTrue())
			Expect(recs).To(HaveLen(2))
		})

		It("reads records from a data envelope", func() {
			recs, ok := upright.Collection(`{"data":[{"a":1}],"page":1}`).Records()
			Expect(ok).To(BeTrue())
			Expect(recs).To(HaveLen(1))
		})

		It("reports ok=false for any other shape", func() {
			_, ok := upright.Collection(`{"error":"nope"}`).Records()
			Expect(ok).To(BeFalse())

			_, ok = upright.Collection(`{"data":"not-an-array"}`).Records()
			Expect(ok).To(BeFalse())

			_, ok = upright.Collection(`42`).Records()
			Expect(ok).To(BeFalse())
		})

		It("treats an empty array as an empty sequence, not a mismatch", func() {
			recs, ok := upright.Collection(`[]`).Records()
			Expect(ok).To(BeTrue())
			Expect(recs).To(BeEmpty())
		})
	})
})
