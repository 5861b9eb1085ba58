package harness

import (
	"fmt"
	"strings"
)

// NoMismatch is the verdict of a verification that found nothing wrong.
const NoMismatch = "No mismatch values"

// Verify checks a response in one pass: the status, every expected value appearing in
// body and every unexpected value being absent. Values are compared by their fmt
// rendering. The verdict lists all mismatches, or NoMismatch.
func Verify(body string, status, expectedStatus int, expected, unexpected []any) string {
	var mismatches []string
	if status != expectedStatus {
		mismatches = append(mismatches, fmt.Sprintf("status code: expected %d, got %d", expectedStatus, status))
	}
	for _, value := range expected {
		if text := fmt.Sprint(value); !strings.Contains(body, text) {
			mismatches = append(mismatches, fmt.Sprintf("missing expected value %q", text))
		}
	}
	for _, value := range unexpected {
		if text := fmt.Sprint(value); strings.Contains(body, text) {
			mismatches = append(mismatches, fmt.Sprintf("found unexpected value %q", text))
		}
	}
	if len(mismatches) == 0 {
		return NoMismatch
	}
	return "Mismatch values:\n" + strings.Join(mismatches, "\n")
}
