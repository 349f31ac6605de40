package testutil

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

// RequireTestEnvironment ensures that tests are running in the test environment.
// This prevents accidental execution of tests against production or development data.
// It will fail the test immediately if GO_ENV is not set to "test".
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	env := os.Getenv("GO_ENV")
	if env != "test" {
		t.Fatalf("SAFETY CHECK FAILED: Tests must run with GO_ENV=test to prevent data loss. Current GO_ENV=%q. Set GO_ENV=test before running tests.", env)
	}
}

// RequireTestEnvironmentOrSkip is similar to RequireTestEnvironment but skips the test
// instead of failing it.
func RequireTestEnvironmentOrSkip(t *testing.T) {
	t.Helper()

	env := os.Getenv("GO_ENV")
	if env != "test" {
		t.Skipf("Skipping test: GO_ENV must be 'test' (current: %q)", env)
	}
}

// MustSetTestEnvironment sets GO_ENV to test for the duration of t.
// Use this in suite setup functions.
func MustSetTestEnvironment(t *testing.T) {
	t.Helper()

	t.Setenv("GO_ENV", "test")
	if os.Getenv("GO_ENV") != "test" {
		t.Fatal("Failed to verify GO_ENV=test")
	}
}

// PrintEnvironmentInfo prints the current test environment configuration.
func PrintEnvironmentInfo() {
	fmt.Printf("Test Environment Info:\n")
	fmt.Printf("  GO_ENV: %s\n", os.Getenv("GO_ENV"))
	fmt.Printf("  STORE_DRIVER: %s\n", os.Getenv("STORE_DRIVER"))
	fmt.Printf("  DATA_DIR: %s\n", os.Getenv("DATA_DIR"))
	fmt.Printf("  DATABASE_URL: %s\n", MaskDatabaseURL(os.Getenv("DATABASE_URL")))
}

// MaskDatabaseURL hides everything after the scheme and flags URLs that do
// not look like a test database
func MaskDatabaseURL(url string) string {
	if url == "" {
		return "(not set)"
	}
	masked := url
	if i := strings.Index(url, "://"); i >= 0 {
		masked = url[:i+3] + "..."
	} else if len(url) > 20 {
		masked = url[:20] + "..."
	}
	if strings.Contains(url, "test") {
		return masked + " [contains 'test']"
	}
	return masked + " [WARNING: may not be test DB]"
}
