package http_test

import (
	"testing"
	"time"

	reactdicthttp "github.com/fwojciec/reactdict/http"
	"github.com/stretchr/testify/assert"
)

func TestClientLimiter_Allow(t *testing.T) {
	t.Parallel()

	t.Run("allows burst then blocks", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		l := reactdicthttp.NewClientLimiter(1, 2)
		l.SetNow(func() time.Time { return now })

		assert.True(t, l.Allow("10.0.0.1"))
		assert.True(t, l.Allow("10.0.0.1"))
		assert.False(t, l.Allow("10.0.0.1"))
	})

	t.Run("refills over time", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		l := reactdicthttp.NewClientLimiter(1, 1)
		l.SetNow(func() time.Time { return now })

		assert.True(t, l.Allow("10.0.0.1"))
		assert.False(t, l.Allow("10.0.0.1"))
		now = now.Add(time.Second)
		assert.True(t, l.Allow("10.0.0.1"))
	})

	t.Run("limits each client separately", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		l := reactdicthttp.NewClientLimiter(1, 1)
		l.SetNow(func() time.Time { return now })

		assert.True(t, l.Allow("10.0.0.1"))
		assert.True(t, l.Allow("10.0.0.2"))
		assert.False(t, l.Allow("10.0.0.1"))
	})

	t.Run("forgets idle clients", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		l := reactdicthttp.NewClientLimiter(1, 1)
		l.SetNow(func() time.Time { return now })

		l.Allow("10.0.0.1")
		now = now.Add(time.Hour)
		l.Allow("10.0.0.2")

		assert.Equal(t, 1, l.Len())
	})
}
