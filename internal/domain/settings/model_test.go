package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatermarkRoundTrip(t *testing.T) {
	at := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	s := &Setting{Key: KeyInvoicingWatermark, Value: WatermarkValue(at)}

	got, err := s.Watermark()
	require.NoError(t, err)
	assert.True(t, got.Equal(at))
}

func TestWatermarkMissingValue(t *testing.T) {
	s := &Setting{Key: KeyInvoicingWatermark, Value: map[string]any{}}

	_, err := s.Watermark()
	require.Error(t, err)
}

func TestWatermarkCorruptValue(t *testing.T) {
	s := &Setting{
		Key:   KeyInvoicingWatermark,
		Value: map[string]any{"last_successful_run": "yesterday"},
	}

	_, err := s.Watermark()
	require.Error(t, err)
}
