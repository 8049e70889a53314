package grid

import (
	"errors"
	"strings"
	"testing"
)

func TestWrapPrefixSuffix(t *testing.T) {
	got, err := Wrap("Hello world", 8, "\t", "-")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "\tHello-\n\tworld-" {
		t.Errorf("Expected %q, got %q", "\tHello-\n\tworld-", got)
	}
}

func TestWrapNoTrailingTerminator(t *testing.T) {
	got, err := Wrap("abcdefgh", 4, "", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "abc\ndef\ngh" {
		t.Errorf("Expected %q, got %q", "abc\ndef\ngh", got)
	}
}

func TestWrapBudgetTooSmall(t *testing.T) {
	_, err := Wrap("text", 4, "<<", ">")
	if !errors.Is(err, ErrBudgetTooSmall) {
		t.Errorf("Expected ErrBudgetTooSmall, got %v", err)
	}

	// budget == overhead is still too small
	_, err = Wrap("text", 3, "", "ab")
	if !errors.Is(err, ErrBudgetTooSmall) {
		t.Errorf("Expected ErrBudgetTooSmall at zero chars per line, got %v", err)
	}
}

func TestWrapSkipsOnlyLiteralSpaces(t *testing.T) {
	// Tabs are not skipped at break points, only spaces
	got, err := Wrap("ab\tcd", 4, "", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "ab\t\ncd" {
		t.Errorf("Expected tab preserved, got %q", got)
	}
}

func TestWrapEmptyText(t *testing.T) {
	got, err := Wrap("", 10, "> ", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("Expected empty output, got %q", got)
	}
}

func TestWrapAllSpaces(t *testing.T) {
	got, err := Wrap("     ", 4, "", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("Expected spaces-only input to produce no lines, got %q", got)
	}
}

func TestWrapLineBudgetProperty(t *testing.T) {
	texts := []string{
		"the quick brown fox jumps over the lazy dog",
		"a  b   c    d     e",
		"xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
	}
	for _, text := range texts {
		for budget := 4; budget <= 12; budget++ {
			prefix, suffix := ">", "<"
			charsPerLine := budget - (len(prefix) + len(suffix) + 1)
			if charsPerLine <= 0 {
				continue
			}
			got, err := Wrap(text, budget, prefix, suffix)
			if err != nil {
				t.Fatalf("Unexpected error at budget %d: %v", budget, err)
			}
			if strings.HasSuffix(got, "\n") {
				t.Errorf("Budget %d: output ends with terminator", budget)
			}
			for _, line := range strings.Split(got, "\n") {
				content := strings.TrimSuffix(strings.TrimPrefix(line, prefix), suffix)
				if len(content) > charsPerLine {
					t.Errorf("Budget %d: line content %q exceeds %d chars", budget, content, charsPerLine)
				}
			}
		}
	}
}
