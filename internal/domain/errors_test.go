package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindsMatchSentinels(t *testing.T) {
	cases := []struct {
		err  error
		want error
		kind Kind
	}{
		{Invalidf("bad %s", "input"), ErrInvalid, KindInvalid},
		{NotFoundf("pokemon %s not found", "missingno"), ErrNotFound, KindNotFound},
		{Upstreamf("upstream down"), ErrUpstream, KindUpstream},
	}
	for _, tc := range cases {
		if !errors.Is(tc.err, tc.want) {
			t.Fatalf("expected %v to match sentinel %v", tc.err, tc.want)
		}
		if got := KindOf(tc.err); got != tc.kind {
			t.Fatalf("expected kind %s, got %s", tc.kind, got)
		}
	}
}

func TestErrorIsSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("add to team: %w", NotFoundf("Pokemon %s not found", "missingno"))
	if !errors.Is(wrapped, ErrNotFound) {
		t.Fatalf("expected wrapped error to match ErrNotFound")
	}
	if errors.Is(wrapped, ErrInvalid) {
		t.Fatalf("did not expect wrapped not-found to match ErrInvalid")
	}
	if wrapped.Error() != "add to team: Pokemon missingno not found" {
		t.Fatalf("unexpected message %q", wrapped.Error())
	}
}

func TestKindOfPlainError(t *testing.T) {
	if got := KindOf(errors.New("boom")); got != "" {
		t.Fatalf("expected empty kind, got %s", got)
	}
	if got := ErrInvalid.Error(); got != "invalid" {
		t.Fatalf("expected kind as fallback message, got %q", got)
	}
}
