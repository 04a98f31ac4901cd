package newrelic

import (
	"context"
	"net/http"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// InstrumentHTTPRequest wraps an outgoing HTTP call in an external segment
// when the context carries a transaction.
func InstrumentHTTPRequest(ctx context.Context, req *http.Request, doFunc func() (*http.Response, error)) (*http.Response, error) {
	txn := newrelic.FromContext(ctx)
	if txn == nil {
		return doFunc()
	}

	segment := newrelic.StartExternalSegment(txn, req)
	defer segment.End()

	resp, err := doFunc()
	if resp != nil {
		segment.Response = resp
	}
	return resp, err
}

// StartSegment starts a named segment, returning nil without a transaction
func StartSegment(ctx context.Context, name string) *newrelic.Segment {
	txn := newrelic.FromContext(ctx)
	if txn == nil {
		return nil
	}
	return txn.StartSegment(name)
}
