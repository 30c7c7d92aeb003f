package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeUserDoesNotExist, http.StatusNotFound},
		{CodeNotPendingStateRelation, http.StatusBadRequest},
		{CodeUserNotInvolved, http.StatusUnauthorized},
		{CodeTokenMissing, http.StatusUnauthorized},
		{CodeUsernameTaken, http.StatusConflict},
		{Code("SOMETHING_ELSE"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := tt.code.HTTPStatus(); got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.code, tt.want, got)
		}
	}
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("accept: %w", New(CodeCantAcceptOwnRequest, "user 1 sent request 4"))
	if !errors.Is(err, E(CodeCantAcceptOwnRequest)) {
		t.Fatalf("expected wrapped error to match by code")
	}
	if errors.Is(err, E(CodeNotPendingStateRelation)) {
		t.Fatalf("did not expect match on a different code")
	}
	if !HasCode(err, CodeCantAcceptOwnRequest) {
		t.Fatalf("HasCode should see through wrapping")
	}
}

func TestCodeOfAndStatusOf(t *testing.T) {
	if got := StatusOf(nil); got != http.StatusOK {
		t.Fatalf("nil should map to 200, got %d", got)
	}
	if got := CodeOf(errors.New("boom")); got != CodeInternal {
		t.Fatalf("plain errors should map to INTERNAL, got %s", got)
	}
	cause := errors.New("disk full")
	wrapped := Wrap(CodeInternal, "save relation", cause)
	if !errors.Is(wrapped, cause) {
		t.Fatalf("Wrap should keep the cause reachable")
	}
	if got := StatusOf(E(CodeTaskDoesNotExist)); got != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", got)
	}
}

func TestErrorString(t *testing.T) {
	if got := E(CodeTokenInvalid).Error(); got != "TOKEN_IS_INVALID" {
		t.Fatalf("code-only error should print its code, got %q", got)
	}
	if got := New(CodeTokenInvalid, "bad signature").Error(); got != "bad signature" {
		t.Fatalf("unexpected message %q", got)
	}
}
