package rate

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
)

func Test_Limiter_TryAct_only_first_within_interval(t *testing.T) {
	limiter, _ := makeMockLimiter(5 * time.Second)

	total := 0
	skipped := 0
	for i := 3; i < 10; i++ {
		i := i
		if !limiter.TryAct(func() { total += i }) {
			skipped++
		}
	}

	assert.Equal(t, 3, total)
	assert.Equal(t, 6, skipped)
}

func Test_Limiter_TryAct_permits_after_interval(t *testing.T) {
	limiter, mock := makeMockLimiter(5 * time.Second)

	ran := 0
	limiter.Act(func() { ran++ })
	limiter.Act(func() { ran++ })
	assert.Equal(t, 1, ran)

	mock.Add(5 * time.Second)
	limiter.Act(func() { ran++ })
	limiter.Act(func() { ran++ })
	assert.Equal(t, 2, ran)

	mock.Add(4 * time.Second)
	limiter.Act(func() { ran++ })
	assert.Equal(t, 2, ran)

	mock.Add(time.Second)
	limiter.Act(func() { ran++ })
	assert.Equal(t, 3, ran)
}

func Test_Limiter_TryAct_returns_value(t *testing.T) {
	limiter, _ := makeMockLimiter(5 * time.Second)

	v, ok := TryAct(limiter, func() int { return 100 })
	assert.True(t, ok)
	assert.Equal(t, 100, v)

	v, ok = TryAct(limiter, func() int { return 100 })
	assert.False(t, ok)
	assert.Equal(t, 0, v)
}

func Test_Limiter_zero_interval_always_permits(t *testing.T) {
	limiter := NewLimiter(0)

	for i := 0; i < 10; i++ {
		assert.True(t, limiter.TryAct(func() {}))
	}

	start := time.Now()
	for i := 0; i < 10; i++ {
		limiter.SleepAct(func() {})
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func Test_Limiter_SleepAct_first_call_immediate(t *testing.T) {
	limiter := NewLimiter(time.Hour)

	start := time.Now()
	v := SleepAct(limiter, func() string { return "ran" })

	assert.Equal(t, "ran", v)
	assert.Less(t, time.Since(start), time.Second)
}

func Test_Limiter_SleepAct_spacing(t *testing.T) {
	limiter := NewLimiter(10 * time.Millisecond)

	start := time.Now()
	for i := 0; i < 10; i++ {
		limiter.SleepAct(func() {})
	}

	// first call is free, the other 9 each wait out a 10ms gap
	assert.Greater(t, time.Since(start), 90*time.Millisecond)
}

func Test_Limiter_SleepAct_catches_up_after_slow_action(t *testing.T) {
	limiter := NewLimiter(50 * time.Millisecond)
	limiter.SleepAct(func() {})

	// a consumer slower than the rate limit leaves `last` behind real
	// time; the following actions run back to back until it catches up
	time.Sleep(170 * time.Millisecond)

	start := time.Now()
	for i := 0; i < 3; i++ {
		limiter.SleepAct(func() {})
	}
	assert.Less(t, time.Since(start), 40*time.Millisecond)
}

func makeMockLimiter(interval time.Duration) (*Limiter, *clock.Mock) {
	mock := clock.NewMock()
	return NewLimiter(interval, WithClock(mock)), mock
}
