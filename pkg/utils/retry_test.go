package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	fatal := errors.New("fatal")
	temporary := errors.New("temporary")
	cfg := RetryConfig{MaxAttempts: 4, InitialDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}

	testCases := []struct {
		name         string
		failures     []error
		stop         []error
		wantErr      error
		wantAttempts int
	}{
		{name: "first attempt succeeds", wantAttempts: 1},
		{name: "succeeds after failures", failures: []error{temporary, temporary}, wantAttempts: 3},
		{name: "gives up", failures: []error{temporary, temporary, temporary, temporary, temporary}, wantErr: temporary, wantAttempts: 4},
		{name: "stop error is not retried", failures: []error{fatal}, stop: []error{fatal}, wantErr: fatal, wantAttempts: 1},
		{name: "wrapped stop error", failures: []error{errors.Join(temporary, fatal)}, stop: []error{fatal}, wantErr: fatal, wantAttempts: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			attempts := 0
			err := Retry(cfg, func() error {
				attempts++
				if attempts <= len(tc.failures) {
					return tc.failures[attempts-1]
				}
				return nil
			}, tc.stop...)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantAttempts, attempts)
		})
	}
}
