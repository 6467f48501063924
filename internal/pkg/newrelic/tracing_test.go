package newrelic

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/piresc/convoy/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestInitNewRelic_Disabled(t *testing.T) {
	cfg := &models.Config{}
	cfg.NewRelic.Enabled = false

	assert.Nil(t, InitNewRelic(cfg))
}

func TestHelpers_NilTransaction(t *testing.T) {
	assert.NotPanics(t, func() {
		SetTransactionName(nil, "x")
		AddTransactionAttribute(nil, "k", "v")
		NoticeTransactionError(nil, errors.New("boom"))
	})
}

func TestWithSegment_NoTransaction(t *testing.T) {
	called := false
	err := WithSegment(context.Background(), "seg", func() error {
		called = true
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, called)
}

func TestWithDatastoreSegment_PropagatesError(t *testing.T) {
	want := errors.New("db down")
	err := WithDatastoreSegment(context.Background(), "missions", "SELECT", func() error { return want })

	assert.ErrorIs(t, err, want)
}

func TestStartBackgroundTransaction_NilApp(t *testing.T) {
	ctx, end := StartBackgroundTransaction(context.Background(), nil, "bus")
	defer end()

	assert.Nil(t, FromContext(ctx))
}

func TestInstrumentHTTPRequest_NoTransaction(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "http://example.invalid", nil)
	resp, err := InstrumentHTTPRequest(context.Background(), req, func() (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusTeapot}, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
}
