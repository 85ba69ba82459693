package service

import (
	"archive/zip"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// zoneDirs are the zoneinfo locations time.LoadLocation searches on Unix
var zoneDirs = []string{
	"/usr/share/zoneinfo/",
	"/usr/share/lib/zoneinfo/",
	"/usr/lib/locale/TZ/",
	"/etc/zoneinfo/",
}

var (
	zoneIndexOnce sync.Once
	zoneIndex     map[string]string
)

// canonicalZoneName maps a zone name in any letter case to its canonical
// spelling, e.g. "europe/moscow" to "Europe/Moscow".
func canonicalZoneName(name string) (string, bool) {
	zoneIndexOnce.Do(func() {
		zoneIndex = buildZoneIndex()
	})
	canonical, ok := zoneIndex[strings.ToLower(name)]
	return canonical, ok
}

func buildZoneIndex() map[string]string {
	index := make(map[string]string)

	if zoneinfo := os.Getenv("ZONEINFO"); zoneinfo != "" {
		if strings.HasSuffix(zoneinfo, ".zip") {
			indexZip(index, zoneinfo)
		} else {
			indexDir(index, zoneinfo)
		}
	}
	for _, dir := range zoneDirs {
		indexDir(index, dir)
	}
	indexZip(index, filepath.Join(runtime.GOROOT(), "lib", "time", "zoneinfo.zip"))

	return index
}

func indexDir(index map[string]string, dir string) {
	// Unreadable entries are skipped, a partial index is still useful
	_ = fs.WalkDir(os.DirFS(dir), ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		addZone(index, name)
		return nil
	})
}

func indexZip(index map[string]string, file string) {
	r, err := zip.OpenReader(file)
	if err != nil {
		return
	}
	defer r.Close()

	for _, f := range r.File {
		if !f.FileInfo().IsDir() {
			addZone(index, f.Name)
		}
	}
}

func addZone(index map[string]string, name string) {
	// zone.tab, tzdata.zi and the like are metadata, not zones
	if strings.Contains(path.Base(name), ".") || name == "localtime" {
		return
	}
	key := strings.ToLower(name)
	if _, ok := index[key]; !ok {
		index[key] = name
	}
}
