package testhelpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

// Expectation is one stubbed upstream request/response pair. Build it with
// New(...).Get(...).Reply(...), optionally constraining request headers with
// MatchHeader.
type Expectation struct {
	Method     string
	URL        *url.URL
	ReqHeaders http.Header

	StatusCode  int
	RespBody    []byte
	RespHeaders http.Header

	matched        bool
	mismatchReason string
}

type MockTransport struct {
	expectations []*Expectation
	mutex        sync.Mutex
}

func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

var (
	DefaultTransport                           = NewMockTransport()
	originalDefaultTransport http.RoundTripper = http.DefaultTransport
)

// New registers an expectation against the given base URL on the default
// mock transport.
func New(baseURL string) *Expectation {
	u, err := url.Parse(baseURL)
	if err != nil {
		panic(fmt.Sprintf("httpmock: invalid base URL: %v", err))
	}
	if u.Scheme == "" || u.Host == "" {
		panic(fmt.Sprintf("httpmock: base URL must include scheme and host, got %q", baseURL))
	}

	exp := &Expectation{
		URL:         u,
		ReqHeaders:  make(http.Header),
		RespHeaders: make(http.Header),
	}
	DefaultTransport.Add(exp)
	return exp
}

func (e *Expectation) Get(path string) *Expectation {
	e.Method = http.MethodGet

	u, err := url.Parse(path)
	if err != nil {
		panic(fmt.Sprintf("httpmock: invalid path: %v", err))
	}
	e.URL.Path = u.Path
	e.URL.RawQuery = u.RawQuery
	return e
}

func (e *Expectation) Post(path string) *Expectation {
	e.Method = http.MethodPost
	e.URL.Path = path
	return e
}

// MatchHeader requires the request to carry the given header value.
func (e *Expectation) MatchHeader(key, value string) *Expectation {
	e.ReqHeaders.Set(key, value)
	return e
}

func (e *Expectation) Reply(statusCode int) *Expectation {
	e.StatusCode = statusCode
	return e
}

func (e *Expectation) BodyString(body string) *Expectation {
	e.RespBody = []byte(body)
	return e
}

func (e *Expectation) JSON(v interface{}) *Expectation {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("httpmock: failed to marshal JSON: %v", err))
	}
	e.RespBody = data
	e.RespHeaders.Set("Content-Type", "application/json")
	return e
}

// Header sets a response header.
func (e *Expectation) Header(key, value string) *Expectation {
	e.RespHeaders.Set(key, value)
	return e
}

func (t *MockTransport) Add(exp *Expectation) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.expectations = append(t.expectations, exp)
}

func (t *MockTransport) Reset() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.expectations = nil
}

// IsDone reports whether every registered expectation has been consumed.
func IsDone() bool {
	DefaultTransport.mutex.Lock()
	defer DefaultTransport.mutex.Unlock()
	for _, exp := range DefaultTransport.expectations {
		if !exp.matched {
			return false
		}
	}
	return true
}

// Activate installs the mock transport on http.DefaultClient.
func Activate() {
	if http.DefaultClient.Transport == DefaultTransport {
		return
	}

	if http.DefaultClient.Transport != nil {
		originalDefaultTransport = http.DefaultClient.Transport
	} else {
		originalDefaultTransport = http.DefaultTransport
	}

	http.DefaultClient.Transport = DefaultTransport
}

// Deactivate restores the original transport and resets all expectations.
func Deactivate() {
	http.DefaultClient.Transport = originalDefaultTransport
	DefaultTransport.Reset()
}

func (t *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	for _, exp := range t.expectations {
		if !exp.matched && t.matches(exp, req) {
			exp.matched = true
			return t.buildResponse(exp, req), nil
		}
	}

	var reasons []string
	for _, exp := range t.expectations {
		if exp.mismatchReason != "" {
			reasons = append(reasons, exp.mismatchReason)
		}
	}
	extra := ""
	if len(reasons) > 0 {
		extra = " (" + strings.Join(reasons, "; ") + ")"
	}

	return nil, fmt.Errorf("httpmock: no match found for request %s %s%s", req.Method, req.URL, extra)
}

func (t *MockTransport) matches(exp *Expectation, req *http.Request) bool {
	exp.mismatchReason = ""

	if exp.Method != "" && exp.Method != req.Method {
		exp.mismatchReason = fmt.Sprintf("method mismatch: expected %s got %s", exp.Method, req.Method)
		return false
	}
	if exp.URL.Scheme != req.URL.Scheme || exp.URL.Host != req.URL.Host {
		exp.mismatchReason = fmt.Sprintf("host mismatch: expected %s://%s got %s://%s",
			exp.URL.Scheme, exp.URL.Host, req.URL.Scheme, req.URL.Host)
		return false
	}
	if exp.URL.Path != req.URL.Path {
		exp.mismatchReason = fmt.Sprintf("path mismatch: expected %s got %s", exp.URL.Path, req.URL.Path)
		return false
	}

	for key := range exp.ReqHeaders {
		want := exp.ReqHeaders.Get(key)
		if got := req.Header.Get(key); got != want {
			exp.mismatchReason = fmt.Sprintf("header mismatch for %s: expected %q got %q", key, want, got)
			return false
		}
	}

	expectedQuery := exp.URL.Query()
	actualQuery := req.URL.Query()
	for key, values := range expectedQuery {
		actualValues, ok := actualQuery[key]
		if !ok {
			exp.mismatchReason = fmt.Sprintf("missing query key %s", key)
			return false
		}
		if len(actualValues) != len(values) {
			exp.mismatchReason = fmt.Sprintf("query value count mismatch for %s: expected %v got %v", key, values, actualValues)
			return false
		}
		for i, value := range values {
			if actualValues[i] != value {
				exp.mismatchReason = fmt.Sprintf("query mismatch for %s: expected %s got %s", key, value, actualValues[i])
				return false
			}
		}
	}

	return true
}

func (t *MockTransport) buildResponse(exp *Expectation, req *http.Request) *http.Response {
	statusCode := exp.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}

	return &http.Response{
		StatusCode:    statusCode,
		Body:          io.NopCloser(bytes.NewReader(exp.RespBody)),
		Header:        exp.RespHeaders,
		Request:       req,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		ContentLength: int64(len(exp.RespBody)),
	}
}
