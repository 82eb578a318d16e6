package version

import (
	"runtime/debug"
	"sync"
)

const devel = "devel"

// version is set via -ldflags "-X .../version.version=v1.2.3".
var version = devel

var resolve = sync.OnceValue(func() string {
	if version != devel {
		return version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return devel
	}
	return fromBuildInfo(info)
})

func Get() string {
	return resolve()
}

func fromBuildInfo(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != "("+devel+")" {
		return v
	}

	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return devel
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	if dirty {
		revision += "-dirty"
	}
	return devel + "+" + revision
}
