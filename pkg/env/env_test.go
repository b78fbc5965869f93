package env

import "testing"

func TestGetFallback(t *testing.T) {
	if got := Get("CARDANO_WALLET_ENV_TEST_UNSET", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	t.Setenv("CARDANO_WALLET_ENV_TEST_SET", "value")
	if got := Get("CARDANO_WALLET_ENV_TEST_SET", "fallback"); got != "value" {
		t.Fatalf("expected value, got %q", got)
	}
}

func TestGetBool(t *testing.T) {
	if got := GetBool("CARDANO_WALLET_ENV_TEST_UNSET", true); !got {
		t.Fatalf("expected fallback true")
	}
	t.Setenv("CARDANO_WALLET_ENV_TEST_BOOL", "true")
	if got := GetBool("CARDANO_WALLET_ENV_TEST_BOOL", false); !got {
		t.Fatalf("expected parsed true")
	}
	t.Setenv("CARDANO_WALLET_ENV_TEST_BOOL", "not-a-bool")
	if got := GetBool("CARDANO_WALLET_ENV_TEST_BOOL", false); got {
		t.Fatalf("expected fallback false on parse error")
	}
}
