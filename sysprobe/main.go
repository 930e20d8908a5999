package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/rackn/sysprobe/plugins/dmi"
	"github.com/rackn/sysprobe/plugins/system"
)

type info interface {
	Class() string
}

var withDMI = flag.Bool("dmi", false, "Also report the SMBIOS firmware summary")

func main() {
	flag.Parse()
	infos := map[string]info{}
	sysInfo := system.Gather()
	infos[sysInfo.Class()] = sysInfo
	if *withDMI {
		dmiInfo, err := dmi.Gather()
		if err != nil {
			slog.Warn("no DMI information available", "err", err)
		} else {
			infos[dmiInfo.Class()] = dmiInfo
		}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(infos)
}
