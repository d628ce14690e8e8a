package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CheckboxController", func() {
	var router *gin.Engine

	BeforeEach(func() {
		router = newRouter()
	})

	getState := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/checkbox-state", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		return resp
	}

	postState := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/checkbox-state", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		return resp
	}

	It("returns an empty mapping before any toggle is saved", func() {
		resp := getState()

		Expect(resp.Code).To(Equal(http.StatusOK))
		Expect(resp.Body.String()).To(MatchJSON(`{}`))
	})

	It("round-trips a toggle", func() {
		resp := postState(`{"sku":"A","checked":true}`)
		Expect(resp.Code).To(Equal(http.StatusOK))
		Expect(resp.Body.String()).To(MatchJSON(`{"success":true}`))

		Expect(getState().Body.String()).To(MatchJSON(`{"A":true}`))
	})

	It("flips one key without affecting others", func() {
		postState(`{"sku":"A","checked":true}`)
		postState(`{"sku":"B","checked":true}`)

		resp := postState(`{"sku":"A","checked":false}`)
		Expect(resp.Code).To(Equal(http.StatusOK))

		Expect(getState().Body.String()).To(MatchJSON(`{"A":false,"B":true}`))
	})

	It("rejects a malformed body", func() {
		resp := postState(`{not json`)

		Expect(resp.Code).To(Equal(http.StatusBadRequest))
		Expect(resp.Body.String()).To(MatchJSON(`{"success":false}`))
	})
})
