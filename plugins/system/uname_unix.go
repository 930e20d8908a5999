//go:build !windows

package system

import "golang.org/x/sys/unix"

// uname returns the machine hardware tag and node name. ok is false when
// the syscall fails; callers degrade to empty fields.
func uname() (machine, node string, ok bool) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", "", false
	}
	machine = unix.ByteSliceToString(uts.Machine[:])
	node = unix.ByteSliceToString(uts.Nodename[:])
	return machine, node, true
}
