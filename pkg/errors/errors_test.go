package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataFor(t *testing.T) {
	cases := []struct {
		code       Code
		wantStatus int
		wantText   string
	}{
		{CodeValidation, http.StatusBadRequest, "Bad Request"},
		{CodeNotFound, http.StatusNotFound, "Not Found"},
		{CodeConflict, http.StatusConflict, "Conflict"},
		{CodeUnsupportedMedia, http.StatusUnsupportedMediaType, "Unsupported media type"},
		{CodeMethodNotAllowed, http.StatusMethodNotAllowed, "Method Not Allowed"},
		{CodeInternal, http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tc := range cases {
		meta := MetadataFor(tc.code)
		if meta.HTTPStatus != tc.wantStatus || meta.ErrorText != tc.wantText {
			t.Fatalf("%s: unexpected metadata %+v", tc.code, meta)
		}
	}

	if meta := MetadataFor(Code("BOGUS")); meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unknown code should map to internal, got %+v", meta)
	}
}

func TestOnlyInternalLogsAsError(t *testing.T) {
	for code, meta := range metadataByCode {
		if code == CodeInternal {
			if !meta.LogAsError {
				t.Fatal("internal errors must log at error level")
			}
			continue
		}
		if meta.LogAsError {
			t.Fatalf("%s should log at warning level", code)
		}
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("root cause")
	err := Wrap(CodeValidation, cause, "context")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to survive errors.Is")
	}
	if err.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", err.Code())
	}
	if err.Message() != "context" {
		t.Fatalf("unexpected message %q", err.Message())
	}
}

func TestAsUnwrapsThroughFmtErrorf(t *testing.T) {
	inner := New(CodeNotFound, "gone")
	outer := fmt.Errorf("handler: %w", inner)

	typed := As(outer)
	if typed == nil {
		t.Fatal("expected As to find the typed error")
	}
	if typed.Code() != CodeNotFound {
		t.Fatalf("unexpected code %s", typed.Code())
	}

	if As(stdErrors.New("plain")) != nil {
		t.Fatal("expected nil for untyped error")
	}
	if As(nil) != nil {
		t.Fatal("expected nil for nil error")
	}
}

func TestWithDetails(t *testing.T) {
	err := New(CodeValidation, "missing quantity").
		WithDetails(map[string]any{"reason": "missing_field", "field": "quantity"})

	details, ok := err.Details().(map[string]any)
	if !ok {
		t.Fatalf("unexpected details type %T", err.Details())
	}
	if details["field"] != "quantity" {
		t.Fatalf("unexpected details %v", details)
	}
}
