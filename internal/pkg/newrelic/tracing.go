package newrelic

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// FromEchoContext extracts the transaction started by nrecho
func FromEchoContext(c echo.Context) *newrelic.Transaction {
	return nrecho.FromContext(c)
}

// FromContext extracts the transaction carried by ctx
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// SetTransactionName sets the name of the transaction
func SetTransactionName(txn *newrelic.Transaction, name string) {
	if txn != nil {
		txn.SetName(name)
	}
}

// AddTransactionAttribute adds a custom attribute to the transaction
func AddTransactionAttribute(txn *newrelic.Transaction, key string, value interface{}) {
	if txn != nil {
		txn.AddAttribute(key, value)
	}
}

// NoticeTransactionError reports an error to New Relic
func NoticeTransactionError(txn *newrelic.Transaction, err error) {
	if txn != nil && err != nil {
		txn.NoticeError(err)
	}
}

// WithSegment runs fn inside a segment of the transaction carried by ctx
func WithSegment(ctx context.Context, name string, fn func() error) error {
	if txn := FromContext(ctx); txn != nil {
		defer txn.StartSegment(name).End()
	}
	return fn()
}

// WithDatastoreSegment runs fn inside a Postgres datastore segment
func WithDatastoreSegment(ctx context.Context, collection, operation string, fn func() error) error {
	txn := FromContext(ctx)
	if txn == nil {
		return fn()
	}
	seg := newrelic.DatastoreSegment{
		StartTime:  txn.StartSegmentNow(),
		Product:    newrelic.DatastorePostgres,
		Collection: collection,
		Operation:  operation,
	}
	defer seg.End()
	return fn()
}

// StartBackgroundTransaction starts a transaction for work that is not an
// HTTP request, such as a bus subscription, and returns a context carrying it.
func StartBackgroundTransaction(ctx context.Context, app *newrelic.Application, name string) (context.Context, func()) {
	if app == nil {
		return ctx, func() {}
	}
	txn := app.StartTransaction(name)
	return newrelic.NewContext(ctx, txn), txn.End
}
