package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapsKnownKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "invalid input", err: E(KindInvalidInput, "bad"), want: http.StatusBadRequest},
		{name: "unavailable", err: E(KindUnavailable, "down"), want: http.StatusServiceUnavailable},
		{name: "not found", err: E(KindNotFound, "missing"), want: http.StatusNotFound},
		{name: "unknown", err: E(KindUnknown, "unknown"), want: http.StatusInternalServerError},
		{name: "untyped", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "wrapped typed", err: fmt.Errorf("load: %w", E(KindUnavailable, "down")), want: http.StatusServiceUnavailable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HTTPStatus(tc.err); got != tc.want {
				t.Fatalf("HTTPStatus() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestErrorStringFallsBackToKindWhenMessageEmpty(t *testing.T) {
	t.Parallel()

	err := Error{Kind: KindNotFound}
	if got := err.Error(); got != string(KindNotFound) {
		t.Fatalf("Error() = %q, want %q", got, string(KindNotFound))
	}
}

func TestLocalizationKey(t *testing.T) {
	t.Parallel()

	if got := LocalizationKey(nil); got != "" {
		t.Fatalf("LocalizationKey(nil) = %q", got)
	}
	if got := LocalizationKey(errors.New("plain")); got != "" {
		t.Fatalf("LocalizationKey(plain) = %q", got)
	}
	if got := LocalizationKey(EK(KindUnavailable, "  web.error.message_store_unavailable ", "down")); got != "web.error.message_store_unavailable" {
		t.Fatalf("LocalizationKey() = %q", got)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := Wrap(KindUnavailable, "web.error.message_store_unavailable", "load submissions", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause")
	}
	if got := err.Error(); got != "load submissions: connection refused" {
		t.Fatalf("Error() = %q", got)
	}
	if got := HTTPStatus(err); got != http.StatusServiceUnavailable {
		t.Fatalf("HTTPStatus() = %d", got)
	}
}
