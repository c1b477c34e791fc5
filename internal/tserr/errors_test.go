package tserr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// -----------------------------------------------------------------------------
// Constructor Tests
// -----------------------------------------------------------------------------

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    Code
		message string
	}{
		{
			name:    "schema error",
			code:    ErrSchemaInvalid,
			message: "min cannot be greater than max",
		},
		{
			name:    "prompt error",
			code:    ErrPromptColumn,
			message: "missing numeric range",
		},
		{
			name:    "augmentation error",
			code:    ErrAugmentInvalid,
			message: "additional rows must be positive",
		},
		{
			name:    "sink error",
			code:    ErrSinkWrite,
			message: "failed to write dataset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message)
			if err == nil {
				t.Fatal("expected non-nil error")
			}
			if err.GetCode() != tt.code {
				t.Errorf("code = %v, want %v", err.GetCode(), tt.code)
			}
			if err.GetMessage() != tt.message {
				t.Errorf("message = %v, want %v", err.GetMessage(), tt.message)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("wrap existing error", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := Wrap(ErrSourceRead, cause, "failed to read dataset")

		if err.GetCode() != ErrSourceRead {
			t.Errorf("code = %v, want %v", err.GetCode(), ErrSourceRead)
		}
		if !errors.Is(err, cause) {
			t.Error("wrapped error should match cause via errors.Is")
		}
		if !strings.Contains(err.Error(), "underlying error") {
			t.Error("rendered error should include the cause")
		}
	})

	t.Run("wrap nil error", func(t *testing.T) {
		err := Wrap(ErrInternal, nil, "no cause")
		if err.Unwrap() != nil {
			t.Error("wrapping nil should produce nil cause")
		}
	})
}

func TestNewf(t *testing.T) {
	err := Newf(ErrPromptType, "unsupported type %q", "integer")
	if err.GetMessage() != `unsupported type "integer"` {
		t.Errorf("message = %q", err.GetMessage())
	}
}

// -----------------------------------------------------------------------------
// Context Tests
// -----------------------------------------------------------------------------

func TestWith(t *testing.T) {
	err := New(ErrSchemaInvalid, "min cannot be greater than max").
		WithColumn("age").
		With("min", 50).
		With("max", 20)

	ctx := err.GetContext()
	if ctx["column"] != "age" {
		t.Errorf("column context = %v, want age", ctx["column"])
	}
	if ctx["min"] != 50 || ctx["max"] != 20 {
		t.Errorf("min/max context = %v/%v", ctx["min"], ctx["max"])
	}
}

func TestErrorRendering(t *testing.T) {
	err := New(ErrPromptColumn, "missing numeric range").
		WithColumn("age").
		WithFragment("age int")

	rendered := err.Error()

	if !strings.HasPrefix(rendered, "[E2002] missing numeric range") {
		t.Errorf("unexpected prefix: %q", rendered)
	}
	if !strings.Contains(rendered, "column: age") {
		t.Errorf("rendered error should contain column context: %q", rendered)
	}
	if !strings.Contains(rendered, "fragment: age int") {
		t.Errorf("rendered error should contain fragment context: %q", rendered)
	}
}

func TestErrorRenderingDeterministic(t *testing.T) {
	build := func() string {
		return New(ErrSchemaInvalid, "invalid").
			With("b", 2).
			With("a", 1).
			With("c", 3).
			Error()
	}

	first := build()
	for i := 0; i < 10; i++ {
		if got := build(); got != first {
			t.Fatalf("rendering is not deterministic: %q vs %q", got, first)
		}
	}
	// Context keys render sorted
	if strings.Index(first, "a: 1") > strings.Index(first, "b: 2") {
		t.Errorf("context keys not sorted: %q", first)
	}
}

func TestWithHelp(t *testing.T) {
	err := New(ErrPromptType, "unknown type").
		WithHelp("did you mean 'int'?").
		WithHelp("supported types: int, float, category, string, date")

	helps := err.Helps()
	if len(helps) != 2 {
		t.Fatalf("helps = %d, want 2", len(helps))
	}
	if helps[0] != "did you mean 'int'?" {
		t.Errorf("first help = %q", helps[0])
	}
}

// -----------------------------------------------------------------------------
// Code Matching Tests
// -----------------------------------------------------------------------------

func TestIs(t *testing.T) {
	err := New(ErrAugmentUnfit, "column has no observed values")

	if !Is(err, ErrAugmentUnfit) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrSchemaInvalid) {
		t.Error("Is should not match a different code")
	}
	if Is(nil, ErrAugmentUnfit) {
		t.Error("Is should not match nil")
	}
}

func TestErrorsIsByCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(ErrRowCount, "row count must be positive"))

	if !errors.Is(err, New(ErrRowCount, "")) {
		t.Error("errors.Is should match through wrapping by code")
	}
	if errors.Is(err, New(ErrPromptSyntax, "")) {
		t.Error("errors.Is should not match a different code")
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"tabsynth error", New(ErrPromptSyntax, "bad prompt"), ErrPromptSyntax},
		{"wrapped", fmt.Errorf("wrap: %w", New(ErrSinkWrite, "x")), ErrSinkWrite},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetErrorCode(tt.err); got != tt.want {
				t.Errorf("GetErrorCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCategoryPredicates(t *testing.T) {
	if !IsSchema(New(ErrSchemaDuplicate, "dup")) {
		t.Error("IsSchema should match E1xxx")
	}
	if !IsPrompt(New(ErrPromptSeparator, "missing columns:")) {
		t.Error("IsPrompt should match E2xxx")
	}
	if !IsAugment(New(ErrStrategy, "unknown strategy")) {
		t.Error("IsAugment should match E3xxx")
	}
	if IsSchema(New(ErrPromptSyntax, "x")) {
		t.Error("IsSchema should not match E2xxx")
	}
}
