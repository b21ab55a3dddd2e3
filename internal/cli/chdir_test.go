package cli

import (
	"os"
	"testing"
)

// chdir changes the working directory for the duration of the test,
// matching the behavior of testing.T.Chdir (added in Go 1.24) for
// older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
