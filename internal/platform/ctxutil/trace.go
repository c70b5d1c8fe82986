package ctxutil

import "context"

type traceDataKey struct{}

// TraceData identifies one API call. Route is the matched route template
// (e.g. /question/:id/), or the raw path when nothing matched.
type TraceData struct {
	TraceID   string
	RequestID string
	Route     string
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, td)
}

func GetTraceData(ctx context.Context) *TraceData {
	td, _ := ctx.Value(traceDataKey{}).(*TraceData)
	return td
}

// LogFields flattens td into logger key/value pairs.
func (td *TraceData) LogFields() []interface{} {
	if td == nil {
		return nil
	}
	return []interface{}{"trace_id", td.TraceID, "request_id", td.RequestID, "route", td.Route}
}
