package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNights(t *testing.T) {
	assert.Equal(t, 1, Nights(date("2026-09-01"), date("2026-09-02")))
	assert.Equal(t, 3, Nights(date("2026-09-01"), date("2026-09-04")))

	// Spans under a day still bill one night.
	in := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	out := time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, Nights(in, out))

	// Partial extra day rounds up.
	out = time.Date(2026, 9, 3, 2, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, Nights(in, out))
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, int64(750), TotalPrice(250, date("2026-09-01"), date("2026-09-04")))
	assert.Equal(t, int64(250), TotalPrice(250, date("2026-09-01"), date("2026-09-02")))
}
