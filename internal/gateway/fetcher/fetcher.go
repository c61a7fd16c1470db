// Package fetcher 업스트림 사이트에 대한 아웃바운드 HTTP 호출을 담당합니다.
//
// Fetcher 인터페이스를 중심으로 데코레이터(로깅, 속도 제한, 응답 크기 제한)를 조합하며,
// Fetch 함수가 한 번의 논리적 호출을 수행하고 실패를 에러 분류 체계로 변환합니다.
// 이 패키지는 재시도를 수행하지 않습니다. 재시도 여부는 호출자가 결정합니다.
package fetcher

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
	"golang.org/x/net/html/charset"
)

const component = "gateway.fetcher"

// Fetcher HTTP 요청을 수행하는 최소 인터페이스입니다. *http.Client와 호환됩니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// Request 업스트림에 보낼 한 건의 요청
type Request struct {
	// Method 비어 있으면 Form 유무에 따라 GET 또는 POST
	Method string
	URL    string

	// Form application/x-www-form-urlencoded 본문
	Form url.Values

	// Header 세션 헤더 묶음 위에 덧붙일 추가 헤더 (Range 등)
	Header http.Header

	// Session nil이면 인증 없이 요청합니다.
	Session *Session

	// Referer 비어 있으면 세션의 기본 Referer(업스트림 Origin)를 사용합니다.
	Referer string
}

// Document 업스트림 응답 한 건
type Document struct {
	URL         string
	Status      int
	ContentType string
	Body        []byte

	// SetCookies 업스트림이 내려준 Set-Cookie 헤더 원문 (호출자에게 그대로 전달)
	SetCookies []string
	FetchedAt  time.Time
}

// nowFunc 테스트에서 고정 시각을 주입할 수 있도록 변수로 선언합니다.
var nowFunc = time.Now

// Fetch 한 번의 HTTP 호출을 수행하고 응답 본문을 UTF-8로 디코딩하여 반환합니다.
//
// 실패 분류:
//   - 네트워크 오류, 타임아웃: Unavailable
//   - 2xx 이외의 상태 코드: 상태 코드별 ErrorType (원인에 *StatusError 포함)
//   - 2xx이지만 본문이 비어 있음: EmptyResponse
func Fetch(ctx context.Context, f Fetcher, r Request) (*Document, error) {
	req, err := newHTTPRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	fetchedAt := nowFunc()

	resp, err := f.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, classifyTransportError(err, req.URL)
	}
	defer resp.Body.Close()

	doc := &Document{
		URL:         req.URL.String(),
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		SetCookies:  resp.Header.Values("Set-Cookie"),
		FetchedAt:   fetchedAt,
	}

	if err := checkStatus(resp, req.URL); err != nil {
		drainAndCloseBody(resp.Body)
		return nil, err
	}

	body, err := readBody(ctx, resp)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, apperrors.New(apperrors.EmptyResponse, "업스트림이 빈 응답을 반환했습니다: "+redactURL(req.URL))
	}
	doc.Body = body

	return doc, nil
}

func newHTTPRequest(ctx context.Context, r Request) (*http.Request, error) {
	method := r.Method
	if method == "" {
		method = http.MethodGet
		if r.Form != nil {
			method = http.MethodPost
		}
	}

	var body io.Reader
	if r.Form != nil {
		body = strings.NewReader(r.Form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, r.URL, body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "업스트림 요청을 생성할 수 없습니다")
	}
	if r.Form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
		req.Header.Set("X-Requested-With", "XMLHttpRequest")
	}

	r.Session.apply(req, r.Referer)

	for key, values := range r.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	return req, nil
}

func classifyTransportError(err error, u *url.URL) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	msg := "업스트림에 연결할 수 없습니다: " + redactURL(u)
	if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
		msg = "업스트림 응답 대기 시간이 초과되었습니다: " + redactURL(u)
	}
	return apperrors.Wrap(err, apperrors.Unavailable, msg)
}

func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}

// readBody 응답 본문을 읽고, text/* 응답은 선언된 문자셋에서 UTF-8로 변환합니다.
func readBody(ctx context.Context, resp *http.Response) ([]byte, error) {
	data, err := io.ReadAll(&contextAwareReader{ctx: ctx, r: resp.Body})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, apperrors.Unavailable, "업스트림 응답 본문을 읽는 중 연결이 끊어졌습니다")
	}

	contentType := resp.Header.Get("Content-Type")
	if !isTextContent(contentType) {
		return data, nil
	}

	utf8Reader, err := charset.NewReader(bytes.NewReader(data), contentType)
	if err != nil {
		return data, nil
	}
	decoded, err := io.ReadAll(utf8Reader)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ParsingFailed, "업스트림 응답의 문자 인코딩 변환에 실패했습니다")
	}

	return decoded, nil
}

func isTextContent(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "text/")
}

type contextAwareReader struct {
	ctx context.Context
	r   io.Reader
}

func (r *contextAwareReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}
