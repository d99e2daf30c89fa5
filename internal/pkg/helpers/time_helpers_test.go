package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("30m", time.Hour); got != 30*time.Minute {
		t.Errorf("ParseDuration(\"30m\") = %v, want 30m", got)
	}
	if got := ParseDuration("", time.Hour); got != time.Hour {
		t.Errorf("ParseDuration(\"\") = %v, want fallback 1h", got)
	}
	if got := ParseDuration("garbage", 5*time.Minute); got != 5*time.Minute {
		t.Errorf("ParseDuration(\"garbage\") = %v, want fallback 5m", got)
	}
}
