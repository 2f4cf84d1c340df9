package utils

import (
	"testing"
	"time"

	"github.com/luxemods/economy-backend/internal/config"
)

func TestUTCDateString(t *testing.T) {
	lagos := time.FixedZone("WAT", 1*60*60)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"plain UTC", time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC), "2024-03-15"},
		{"last second of the day", time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC), "2024-03-15"},
		{"local midnight is still the previous UTC day", time.Date(2024, 3, 15, 0, 30, 0, 0, lagos), "2024-03-14"},
		{"month boundary", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "2024-03-01"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := UTCDateString(tc.in); got != tc.want {
				t.Fatalf("UTCDateString(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestPreviousUTCDateString(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"mid-month", time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC), "2024-03-14"},
		{"first of month", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), "2024-02-29"},
		{"first of year", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), "2023-12-31"},
		{"non-leap February", time.Date(2023, 3, 1, 10, 0, 0, 0, time.UTC), "2023-02-28"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PreviousUTCDateString(tc.in); got != tc.want {
				t.Fatalf("PreviousUTCDateString(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNextUTCMidnight(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"midday",
			time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			"exactly midnight rolls to the next day",
			time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			"end of month",
			time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC),
			time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"end of year",
			time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC),
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NextUTCMidnight(tc.in); !got.Equal(tc.want) {
				t.Fatalf("NextUTCMidnight(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiresIn = 3600

	token, err := GenerateJWT("admin-1", "admin", cfg)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := ValidateJWT(token, cfg)
	if err != nil {
		t.Fatalf("ValidateJWT failed: %v", err)
	}
	if claims["user_id"] != "admin-1" || claims["role"] != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateJWT_RejectsWrongSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiresIn = 3600

	token, err := GenerateJWT("admin-1", "admin", cfg)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	other := &config.Config{}
	other.JWT.Secret = "different-secret"
	if _, err := ValidateJWT(token, other); err == nil {
		t.Fatal("expected validation to fail with the wrong secret")
	}
}
