package log

import (
	"errors"
	"io"
	"sync/atomic"
)

// closer Setup이 생성한 로그 파일들과 hook의 해제를 한 번에 수행합니다.
// Close는 여러 번 호출해도 안전하며, 일부 파일 닫기에 실패해도 나머지를 모두 닫습니다.
type closer struct {
	closers []io.Closer
	hook    *hook

	closed atomic.Bool
}

// track 닫아야 할 리소스를 등록하고 그대로 반환합니다.
func (c *closer) track(w io.WriteCloser) io.Writer {
	c.closers = append(c.closers, w)
	return w
}

func (c *closer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	// 닫힌 파일로 쓰기가 들어오지 않도록 hook을 먼저 비활성화합니다.
	if c.hook != nil {
		_ = c.hook.Close()
	}

	var errs error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errs
}
