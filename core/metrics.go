package core

import "context"

// NopMetricsRecorder drops every measurement. It is the default recorder so
// resolving assets never requires a metrics backend to be wired.
type NopMetricsRecorder struct{}

func (NopMetricsRecorder) IncCounter(context.Context, string, int64, map[string]string) {}

func (NopMetricsRecorder) ObserveHistogram(context.Context, string, float64, map[string]string) {}
