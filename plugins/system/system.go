// Package system reports basic host facts: logical CPU count, CPU model
// string, CPU architecture tag, and hostname. One collector runs per
// process, picked by OS tag; the result is immutable and best-effort.
// Gathering never fails; fields a platform cannot determine stay empty.
package system

import (
	"encoding/json"
	"os"
	"runtime"
	"strings"
)

// Info is a snapshot of host CPU and hostname facts, captured once when
// the collector runs. Fields are read through the accessors and never
// change afterwards.
type Info struct {
	ncpu    string
	cpu     string
	cpuType string
	host    string
}

func (i *Info) Class() string {
	return "System"
}

// NCPU returns the logical CPU count as reported by the platform.
// Empty means the platform could not determine it.
func (i *Info) NCPU() string { return i.ncpu }

// CPU returns the long-form CPU description (model, and where available
// vendor and clock speed).
func (i *Info) CPU() string { return i.cpu }

// CPUType returns the short architecture tag (uname machine field or
// platform equivalent).
func (i *Info) CPUType() string { return i.cpuType }

// Host returns the machine's network host name.
func (i *Info) Host() string { return i.host }

func (i *Info) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		NCPU    string
		CPU     string
		CPUType string
		Host    string
	}{i.ncpu, i.cpu, i.cpuType, i.host})
}

type collector struct {
	name    string
	substrs []string
	collect func() *Info
}

// Ordered dispatch table: first substring match wins.
var collectors = []collector{
	{"aix", []string{"aix"}, aixInfo},
	{"bsd", []string{"darwin", "bsd"}, bsdInfo},
	{"hpux", []string{"hp-ux", "hpux"}, hpuxInfo},
	{"linux", []string{"linux"}, linuxInfo},
	{"irix", []string{"irix"}, irixInfo},
	{"solaris", []string{"solaris", "sunos", "osf"}, solarisInfo},
	{"windows", []string{"cygwin", "mswin32", "windows"}, func() *Info { return windowsInfo(os.Getenv) }},
}

func collectorFor(osTag string) collector {
	tag := strings.ToLower(osTag)
	for _, c := range collectors {
		for _, sub := range c.substrs {
			if strings.Contains(tag, sub) {
				return c
			}
		}
	}
	return collector{name: "generic", collect: genericInfo}
}

// Detect maps an OS identifier to its collector and runs it. Matching is
// a case-insensitive substring test; anything unrecognized gets the
// portable uname-based collector. It never returns nil and never
// panics, whatever utilities the host is missing.
func Detect(osTag string) *Info {
	return collectorFor(osTag).collect()
}

// Gather probes the current host. Unlike the other plugins it cannot
// fail: the worst case is an Info with empty fields.
func Gather() *Info {
	return Detect(runtime.GOOS)
}
