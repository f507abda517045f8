// Package settings stores small operational key-value settings, such as the
// invoicing run watermark.
package settings

import (
	"time"

	ierr "github.com/speero/partsbilling/internal/errors"
)

// Keys of settings owned by the billing run.
const (
	// KeyInvoicingWatermark holds the start time of the last billing run
	// that completed without infrastructure failure.
	KeyInvoicingWatermark = "invoicing.watermark"
)

const watermarkValueField = "last_successful_run"

// Setting is a single named configuration value.
type Setting struct {
	ID    string         `json:"id"`
	Key   string         `json:"key"`
	Value map[string]any `json:"value"`
}

// WatermarkValue builds the value map for the invoicing watermark setting.
func WatermarkValue(t time.Time) map[string]any {
	return map[string]any{watermarkValueField: t.UTC().Format(time.RFC3339Nano)}
}

// Watermark extracts the run watermark from the setting value.
func (s *Setting) Watermark() (time.Time, error) {
	raw, ok := s.Value[watermarkValueField].(string)
	if !ok {
		return time.Time{}, ierr.NewErrorf("setting %s has no %s value", s.Key, watermarkValueField).
			Mark(ierr.ErrInternal)
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, ierr.WithError(err).
			WithHintf("Corrupt watermark value %q", raw).
			Mark(ierr.ErrInternal)
	}
	return t, nil
}
