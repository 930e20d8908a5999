// Package dmi summarizes the SMBIOS firmware tables: platform identity,
// a processor core/thread roll-up, and hypervisor detection. Unlike the
// system probe this can genuinely fail (no firmware tables, or no
// permission to read them), so Gather returns an error and callers skip
// the section.
package dmi

import (
	"strings"

	"github.com/VictorLowther/godmi"
)

type ProcessorSummary struct {
	Sockets      int
	TotalCores   uint32
	EnabledCores uint32
	TotalThreads uint32
}

type Info struct {
	Manufacturer string
	ProductName  string
	SerialNumber string
	BIOSVendor   string
	BIOSVersion  string
	Processors   ProcessorSummary
	Hypervisor   string `json:",omitempty"`
}

func (i *Info) Class() string {
	return "DMI"
}

var virtVendors = [][2]string{
	{"KVM", "KVM"},
	{"QEMU", "QEMU"},
	{"VMware", "VMware"},
	{"VMW", "VMware"},
	{"innotek GmbH", "VirtualBox"},
	{"Oracle Corporation", "VirtualBox"},
	{"Xen", "Xen"},
	{"Bochs", "Bochs"},
	{"Parallels", "Parallels"},
	{"BHYVE", "BHYVE"},
}

// detectVirt matches known hypervisor vendor strings against the
// identity fields the firmware reports.
func detectVirt(keys []string) (string, bool) {
	for _, key := range keys {
		for _, vendor := range virtVendors {
			if strings.HasPrefix(key, vendor[0]) {
				return vendor[1], true
			}
		}
	}
	return "", false
}

func unspecified(s string) bool {
	return s == "" || s == "Not Specified"
}

func Gather() (*Info, error) {
	if err := godmi.Init(); err != nil {
		return nil, err
	}
	res := &Info{}
	virtKeys := []string{}
	// Skip BIOS records some vendors leave blank
	for _, bios := range godmi.BIOSInformations {
		if unspecified(bios.Vendor) || unspecified(bios.BIOSVersion) || unspecified(bios.ReleaseDate) {
			continue
		}
		res.BIOSVendor = bios.Vendor
		res.BIOSVersion = bios.BIOSVersion
		break
	}
	if len(godmi.SystemInformations) == 1 {
		system := godmi.SystemInformations[0]
		res.Manufacturer = system.Manufacturer
		res.ProductName = system.ProductName
		res.SerialNumber = system.SerialNumber
		virtKeys = append(virtKeys, system.ProductName, system.Manufacturer)
	}
	for _, board := range godmi.BaseboardInformations {
		virtKeys = append(virtKeys, board.Manufacturer)
	}
	virtKeys = append(virtKeys, res.BIOSVendor)
	for _, proc := range godmi.ProcessorInformations {
		res.Processors.Sockets++
		res.Processors.TotalCores += uint32(proc.CoreCount)
		res.Processors.EnabledCores += uint32(proc.CoreEnabled)
		res.Processors.TotalThreads += uint32(proc.ThreadCount)
	}
	res.Hypervisor, _ = detectVirt(virtKeys)
	return res, nil
}
