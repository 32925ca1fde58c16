package handoff

import (
	"archive/zip"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/philtim/zoneclock/zones"
)

// zoneSources are the places the tz database is usually installed
var zoneSources = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/usr/lib/locale/TZ",
	"/etc/zoneinfo",
}

// zoneIndex maps route segments to canonical zone names
type zoneIndex map[string]string

func (idx zoneIndex) lookup(segment string) (string, bool) {
	name, ok := idx[segment]
	return name, ok
}

// systemZones indexes the zone names of the first readable tz database
var systemZones = sync.OnceValue(func() zoneIndex {
	sources := zoneSources
	if env := os.Getenv("ZONEINFO"); env != "" {
		sources = append([]string{env}, sources...)
	}
	for _, src := range sources {
		if idx := indexSource(src); len(idx) > 0 {
			return idx
		}
	}
	return zoneIndex{}
})

func indexSource(src string) zoneIndex {
	info, err := os.Stat(src)
	if err != nil {
		return nil
	}
	if info.IsDir() {
		return indexZones(os.DirFS(src))
	}
	r, err := zip.OpenReader(src)
	if err != nil {
		return nil
	}
	defer r.Close()
	return indexZones(r)
}

// indexZones walks a tz database tree. Only "Region/City" names are kept,
// which leaves out the posix and right copies as well as the data files.
func indexZones(fsys fs.FS) zoneIndex {
	idx := zoneIndex{}
	fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error { //nolint:errcheck
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if name == "posix" || name == "right" {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.Contains(name, "/") {
			return nil
		}
		if first := name[0]; first < 'A' || first > 'Z' {
			return nil
		}
		idx[zones.Segment(name)] = name
		return nil
	})
	return idx
}
