//go:build windows

package system

import (
	"os"
	"runtime"
)

// uname approximates the POSIX call on Windows builds: the compiled
// architecture stands in for the machine tag and the hostname comes from
// the kernel. Only the generic collector reaches this; the normal
// Windows path reads environment variables instead.
func uname() (machine, node string, ok bool) {
	node, err := os.Hostname()
	if err != nil {
		node = ""
	}
	return runtime.GOARCH, node, true
}
