package orchestrator

// ProgressSink observes a run. Progress is called synchronously between
// translation steps; percent restarts from 0 for every provider and reaches
// 100 once that provider is done.
type ProgressSink interface {
	Progress(percent int, label string)
}

// ProgressFunc adapts a function to ProgressSink.
type ProgressFunc func(percent int, label string)

func (f ProgressFunc) Progress(percent int, label string) {
	f(percent, label)
}

// Discard ignores progress updates.
var Discard ProgressSink = ProgressFunc(func(int, string) {})
