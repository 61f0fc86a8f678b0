package searchbox

import "time"

// Scheduler schedules a single callback after a delay and hands back a cancel
// function. The box cancels the prior token on every new keystroke, which is
// what turns the raw keystroke stream into one committed query per pause.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
}

// TimerScheduler runs callbacks on real timers.
type TimerScheduler struct{}

// Schedule fires fn after d on a timer goroutine.
func (TimerScheduler) Schedule(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
