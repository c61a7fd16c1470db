// Package mocks 업스트림 호출을 대체하는 테스트용 Fetcher 구현을 제공합니다.
package mocks

import (
	"bytes"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/darkkaiser/manga-gateway/internal/gateway/fetcher"
	"github.com/stretchr/testify/mock"
)

var (
	_ fetcher.Fetcher = (*MockFetcher)(nil)
	_ fetcher.Fetcher = (*MockHTTPFetcher)(nil)
)

// MockFetcher testify/mock 기반 Fetcher
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

// NewMockResponse 본문과 상태 코드로 응답을 생성합니다.
func NewMockResponse(body string, statusCode int) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Status:     http.StatusText(statusCode),
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

type mockResponse struct {
	body       []byte
	statusCode int
	header     http.Header
}

// RequestRecord MockHTTPFetcher가 받은 요청 기록
type RequestRecord struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// MockHTTPFetcher URL별로 미리 지정한 응답을 돌려주고 호출 기록을 남깁니다.
// 등록되지 않은 URL은 404를 반환합니다.
type MockHTTPFetcher struct {
	mu        sync.Mutex
	responses map[string]mockResponse
	errors    map[string]error
	delays    map[string]time.Duration
	requests  []RequestRecord
}

func NewMockHTTPFetcher() *MockHTTPFetcher {
	return &MockHTTPFetcher{
		responses: make(map[string]mockResponse),
		errors:    make(map[string]error),
		delays:    make(map[string]time.Duration),
	}
}

func (m *MockHTTPFetcher) SetResponse(url string, body []byte) {
	m.SetResponseWithStatus(url, body, http.StatusOK)
}

func (m *MockHTTPFetcher) SetResponseWithStatus(url string, body []byte, statusCode int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	resp := m.responses[url]
	resp.body = body
	resp.statusCode = statusCode
	if resp.header == nil {
		resp.header = make(http.Header)
	}
	m.responses[url] = resp
}

// AddHeader 응답 헤더를 추가합니다. Set-Cookie처럼 여러 값을 갖는 헤더에 사용합니다.
func (m *MockHTTPFetcher) AddHeader(url, key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	resp, ok := m.responses[url]
	if !ok {
		resp = mockResponse{statusCode: http.StatusOK}
	}
	if resp.header == nil {
		resp.header = make(http.Header)
	}
	resp.header.Add(key, value)
	m.responses[url] = resp
}

func (m *MockHTTPFetcher) SetError(url string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errors[url] = err
}

func (m *MockHTTPFetcher) SetDelay(url string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.delays[url] = d
}

func (m *MockHTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}

	url := req.URL.String()

	var body []byte
	if req.Body != nil {
		var err error
		if body, err = io.ReadAll(req.Body); err != nil {
			return nil, err
		}
		req.Body = io.NopCloser(bytes.NewReader(body))
	}

	m.mu.Lock()
	m.requests = append(m.requests, RequestRecord{Method: req.Method, URL: url, Header: req.Header.Clone(), Body: body})
	errVal := m.errors[url]
	respVal, hasResponse := m.responses[url]
	delay, hasDelay := m.delays[url]
	m.mu.Unlock()

	if hasDelay {
		select {
		case <-time.After(delay):
		case <-req.Context().Done():
			return nil, req.Context().Err()
		}
	}

	if errVal != nil {
		return nil, errVal
	}

	if !hasResponse {
		return NewMockResponse("", http.StatusNotFound), nil
	}

	header := make(http.Header)
	if respVal.header != nil {
		header = respVal.header.Clone()
	}
	return &http.Response{
		StatusCode: respVal.statusCode,
		Status:     http.StatusText(respVal.statusCode),
		Body:       io.NopCloser(bytes.NewReader(respVal.body)),
		Header:     header,
	}, nil
}

func (m *MockHTTPFetcher) GetRequests() []RequestRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	records := make([]RequestRecord, len(m.requests))
	copy(records, m.requests)
	return records
}

// GetCallCount url로 보낸 요청 횟수
func (m *MockHTTPFetcher) GetCallCount(url string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, r := range m.requests {
		if r.URL == url {
			count++
		}
	}
	return count
}

// TotalCalls 전체 요청 횟수
func (m *MockHTTPFetcher) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.requests)
}
