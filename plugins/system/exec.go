package system

import (
	"os/exec"
	"strings"
)

// runLines invokes an external diagnostic utility and returns its stdout
// split into lines. A missing binary, non-zero exit, or empty output all
// yield nil; collectors treat that as "no data" and move on.
func runLines(name string, args ...string) []string {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return nil
	}
	text := strings.TrimRight(string(out), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
