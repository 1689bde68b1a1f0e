package timeouts

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	Reset()

	if got := Ping(); got != DefaultPing {
		t.Errorf("Ping() = %v, want %v", got, DefaultPing)
	}
	if got := Short(); got != DefaultShort {
		t.Errorf("Short() = %v, want %v", got, DefaultShort)
	}
	if got := Medium(); got != DefaultMedium {
		t.Errorf("Medium() = %v, want %v", got, DefaultMedium)
	}
	if got := Long(); got != DefaultLong {
		t.Errorf("Long() = %v, want %v", got, DefaultLong)
	}
}

func TestConfigure_OverridesNonZero(t *testing.T) {
	Reset()
	defer Reset()

	Configure(Config{Short: 9 * time.Second})

	if got := Short(); got != 9*time.Second {
		t.Errorf("Short() = %v, want %v", got, 9*time.Second)
	}
	// Unset values keep defaults.
	if got := Medium(); got != DefaultMedium {
		t.Errorf("Medium() = %v, want %v", got, DefaultMedium)
	}
}

func TestConfigure_IgnoresZero(t *testing.T) {
	Reset()
	defer Reset()

	Configure(Config{Long: 45 * time.Second})
	Configure(Config{}) // all zero, nothing changes

	if got := Long(); got != 45*time.Second {
		t.Errorf("Long() = %v, want %v", got, 45*time.Second)
	}
}
