package fetcher

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
	"golang.org/x/net/publicsuffix"
)

const (
	defaultAccept         = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8"
	defaultAcceptLanguage = "en-US,en;q=0.9"
)

// Forwarder 호출자의 세션 토큰을 업스트림 관련 호스트 전체에 전달하는 요청 단위 세션을 만듭니다.
type Forwarder struct {
	origin     string
	hosts      []string
	cookieName string
	userAgent  string
}

// NewForwarder origin은 Referer/Origin 헤더로 사용되는 업스트림 주소입니다.
func NewForwarder(origin string, hosts []string, cookieName, userAgent string) *Forwarder {
	return &Forwarder{
		origin:     strings.TrimRight(origin, "/"),
		hosts:      hosts,
		cookieName: cookieName,
		userAgent:  userAgent,
	}
}

// Session 요청 하나에만 사용되는 쿠키 저장소와 브라우저 헤더 묶음입니다.
// 호출이 끝나면 버려지며, 게이트웨이는 자격 증명을 보관하지 않습니다.
type Session struct {
	jar           http.CookieJar
	header        http.Header
	authenticated bool
}

// Session 토큰이 비어 있으면 쿠키 없이 헤더만 갖는 익명 세션을 반환합니다.
func (f *Forwarder) Session(token string) (*Session, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "쿠키 저장소를 생성할 수 없습니다")
	}

	s := &Session{jar: jar, header: f.headers()}

	token = strings.TrimSpace(token)
	if token == "" {
		return s, nil
	}

	for _, host := range f.hosts {
		u := &url.URL{Scheme: "https", Host: host, Path: "/"}
		jar.SetCookies(u, []*http.Cookie{{Name: f.cookieName, Value: token, Path: "/"}})
	}
	s.authenticated = true

	return s, nil
}

func (f *Forwarder) headers() http.Header {
	h := make(http.Header)
	h.Set("User-Agent", f.userAgent)
	h.Set("Accept", defaultAccept)
	h.Set("Accept-Language", defaultAcceptLanguage)
	if f.origin != "" {
		h.Set("Referer", f.origin+"/")
		h.Set("Origin", f.origin)
	}
	return h
}

// Authenticated 세션 토큰이 첨부된 세션인지 여부
func (s *Session) Authenticated() bool {
	return s != nil && s.authenticated
}

// Cookies 주어진 URL로 보낼 쿠키 목록
func (s *Session) Cookies(u *url.URL) []*http.Cookie {
	if s == nil || s.jar == nil {
		return nil
	}

	// 쿠키 저장소는 https 스킴으로 저장된 쿠키도 http 요청에 돌려줍니다(Secure 미설정).
	return s.jar.Cookies(u)
}

func (s *Session) apply(req *http.Request, referer string) {
	if s == nil {
		return
	}

	for key, values := range s.header {
		req.Header[key] = append([]string(nil), values...)
	}
	if referer != "" {
		req.Header.Set("Referer", referer)
	}
	for _, c := range s.Cookies(req.URL) {
		req.AddCookie(c)
	}
}
