package toolkit

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Directories searched for the system tzdata, in order. The first one that
// yields at least one zone wins.
var tzDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/usr/lib/locale/TZ",
	"/etc/zoneinfo",
}

var tzMagic = []byte("TZif")

// ZoneRegistry is the set of valid IANA zone names. It is populated once on
// first use and read-only afterwards, so concurrent lookups need no locking
// beyond the initial load.
type ZoneRegistry struct {
	once  sync.Once
	names []string
	set   map[string]struct{}
}

var defaultZones = &ZoneRegistry{}

// DefaultZones returns the process-wide registry backed by the system
// timezone database.
func DefaultZones() *ZoneRegistry {
	return defaultZones
}

// NewZoneRegistry returns a registry restricted to the given names.
func NewZoneRegistry(names ...string) *ZoneRegistry {
	r := &ZoneRegistry{}
	r.once.Do(func() {
		r.set = make(map[string]struct{}, len(names))
		for _, name := range names {
			r.set[name] = struct{}{}
		}
		r.names = make([]string, 0, len(r.set))
		for name := range r.set {
			r.names = append(r.names, name)
		}
		sort.Strings(r.names)
	})
	return r
}

func (r *ZoneRegistry) load() {
	r.once.Do(func() {
		r.set = map[string]struct{}{}
		for _, dir := range tzDirs {
			info, err := os.Stat(dir)
			if err != nil || !info.IsDir() {
				continue
			}
			r.scan(dir)
			if len(r.set) > 0 {
				break
			}
		}
		r.names = make([]string, 0, len(r.set))
		for name := range r.set {
			r.names = append(r.names, name)
		}
		sort.Strings(r.names)
	})
}

func (r *ZoneRegistry) scan(dir string) {
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}

		name, err := filepath.Rel(dir, path)
		if err != nil {
			return nil
		}
		name = filepath.ToSlash(name)

		if d.IsDir() {
			// posix/ and right/ duplicate the canonical tree
			if name == "posix" || name == "right" {
				return filepath.SkipDir
			}
			return nil
		}

		if name == "posixrules" {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return nil
		}
		defer f.Close()

		magic := make([]byte, len(tzMagic))
		if _, err := f.Read(magic); err != nil || !bytes.Equal(magic, tzMagic) {
			return nil
		}

		r.set[name] = struct{}{}
		return nil
	})
}

// Names returns every zone name in sorted order.
func (r *ZoneRegistry) Names() []string {
	r.load()
	return r.names
}

// Filter returns the sorted zone names containing the given substring,
// case-insensitively. An empty filter returns everything.
func (r *ZoneRegistry) Filter(filter string) []string {
	r.load()

	if len(filter) == 0 {
		zones := make([]string, len(r.names))
		copy(zones, r.names)
		return zones
	}

	lower := strings.ToLower(filter)
	zones := []string{}
	for _, name := range r.names {
		if strings.Contains(strings.ToLower(name), lower) {
			zones = append(zones, name)
		}
	}
	return zones
}

// Valid reports whether name is a known zone. When the host has no scannable
// tzdata directory the registry is empty and validation falls back to
// time.LoadLocation, which resolves against the embedded database when the
// binary imports time/tzdata.
func (r *ZoneRegistry) Valid(name string) bool {
	r.load()

	if len(name) == 0 {
		return false
	}

	if len(r.set) > 0 {
		_, ok := r.set[name]
		return ok
	}

	if name == "Local" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}

// Sample returns up to n zone names from the front of the sorted set.
func (r *ZoneRegistry) Sample(n int) []string {
	r.load()

	if n > len(r.names) {
		n = len(r.names)
	}
	sample := make([]string, n)
	copy(sample, r.names[:n])
	return sample
}

// Location resolves a zone name against the timezone database.
func (r *ZoneRegistry) Location(name string) (*time.Location, error) {
	return time.LoadLocation(name)
}
