package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/require"
)

func TestCaptureError_SafeWithoutInit(t *testing.T) {
	require.NotPanics(t, func() {
		CaptureError(context.Background(), errors.New("index build failed"))
	})
}

func TestCaptureMessage_SafeWithoutInit(t *testing.T) {
	require.NotPanics(t, func() {
		CaptureMessage(context.Background(), "HTTP 500: Internal Server Error")
	})
}

func TestCaptureMessage_UsesHubFromContext(t *testing.T) {
	hub := sentry.NewHub(nil, sentry.NewScope())
	ctx := sentry.SetHubOnContext(context.Background(), hub)

	require.NotPanics(t, func() {
		CaptureMessage(ctx, "HTTP 503: Service Unavailable")
	})
}

func TestInit_EmptyDSNIsNoop(t *testing.T) {
	shutdown, err := Init(Config{})
	require.NoError(t, err)
	require.NotPanics(t, shutdown)
}
