package cache

import (
	"testing"
	"time"

	apperrors "github.com/darkkaiser/manga-gateway/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJanitor(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Set("expired", 1, time.Nanosecond)
	s.Set("alive", 2, time.Hour)

	j := NewJanitor(s, "@every 1s")
	require.NoError(t, j.Start())
	require.NoError(t, j.Start(), "중복 시작은 무시")

	assert.Eventually(t, func() bool { return s.Len() == 1 }, 3*time.Second, 50*time.Millisecond)

	j.Stop()
	j.Stop()

	_, _, ok := s.Get("alive")
	assert.True(t, ok)
}

func TestJanitor_InvalidSpec(t *testing.T) {
	t.Parallel()

	j := NewJanitor(NewStore(), "* * * * *")
	err := j.Start()
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))

	j.Stop()
}

func TestNewJanitor_NilStore(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewJanitor(nil, "@every 1m") })
}
