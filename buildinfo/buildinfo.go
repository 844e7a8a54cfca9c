// Package buildinfo reports which build of a tool produced a given output.
// Reconciliation results end up cited in analyses, so each CLI stamps its
// stderr log with the commit it was built from.
package buildinfo

import (
	"fmt"
	"os"
	"runtime/debug"
)

type Info struct {
	Package   string
	GoVersion string
	Commit    string
	BuiltAt   string
	Dirty     bool
}

func (i Info) String() string {
	dirty := ""
	if i.Dirty {
		dirty = " (working tree was dirty)"
	}

	return fmt.Sprintf("%s built with %s from commit %s at %s%s", i.Package, i.GoVersion, i.Commit, i.BuiltAt, dirty)
}

func Get() Info {
	out := Info{}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.GoVersion = bi.GoVersion
	out.Package = bi.Path
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.BuiltAt = s.Value
		case "vcs.modified":
			out.Dirty = s.Value == "true"
		}
	}

	return out
}

// Stamp writes the build description to stderr.
func Stamp() {
	fmt.Fprintln(os.Stderr, Get())
}
