package config

import (
	"testing"
	"time"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv(envProvider, "")
	if got := envOrDefault(envProvider, ProviderESPN); got != ProviderESPN {
		t.Fatalf("expected default provider when unset, got %q", got)
	}
	t.Setenv(envProvider, ProviderFixture)
	if got := envOrDefault(envProvider, ProviderESPN); got != ProviderFixture {
		t.Fatalf("expected %q, got %q", ProviderFixture, got)
	}
}

func TestProviderNameIsLowercased(t *testing.T) {
	cases := map[string]string{
		"ESPN":      ProviderESPN,
		"SportsRef": ProviderSportsRef,
		"fixture":   ProviderFixture,
		"":          ProviderESPN,
	}
	for raw, want := range cases {
		t.Setenv(envProvider, raw)
		if got := Load().Provider; got != want {
			t.Fatalf("PROVIDER=%q: expected %q, got %q", raw, want, got)
		}
	}
}

func TestRequestDelayParsing(t *testing.T) {
	cases := []struct {
		val      string
		expected time.Duration
	}{
		{"", defaultRequestDelay},
		{"2s", 2 * time.Second},
		{"750ms", 750 * time.Millisecond},
		{"0s", defaultRequestDelay},
		{"-1s", defaultRequestDelay},
		{"soon", defaultRequestDelay},
		{"3", defaultRequestDelay}, // bare numbers have no unit
	}

	for _, tc := range cases {
		t.Setenv(envRequestDelay, tc.val)
		if got := durationEnvOrDefault(envRequestDelay, defaultRequestDelay); got != tc.expected {
			t.Fatalf("expected %v for %q, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestNotifyOnStartParsing(t *testing.T) {
	t.Setenv(envNotifyOnStart, "")
	if got := boolEnvOrDefault(envNotifyOnStart, false); got {
		t.Fatalf("expected default false when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"Yes", true},
		{"1", true},
		{" true ", true},
		{"no", false},
		{"0", false},
		{"later", false},
	}

	for _, tc := range cases {
		t.Setenv(envNotifyOnStart, tc.val)
		if got := boolEnvOrDefault(envNotifyOnStart, false); got != tc.expected {
			t.Fatalf("expected %v for %q, got %v", tc.expected, tc.val, got)
		}
	}
}
