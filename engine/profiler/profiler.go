//go:build profile

package profiler

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Scope aggregates every run of one named scope.
type Scope struct {
	Name  string        `toml:"name"`
	Count int           `toml:"count"`
	Total time.Duration `toml:"total"`
	Max   time.Duration `toml:"max"`
	Avg   time.Duration `toml:"mean"`
}

func (s Scope) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

var (
	ready  atomic.Bool
	mu     sync.Mutex
	scopes map[string]*Scope
)

// Init must be called once before scopes are recorded. capacity hints the
// number of distinct scope names.
func Init(capacity int) {
	mu.Lock()
	defer mu.Unlock()
	scopes = make(map[string]*Scope, capacity)
	ready.Store(true)
}

// Start begins a scope and returns the func that ends it.
func Start(name string) func() {
	if !ready.Load() {
		return func() {}
	}
	begin := time.Now()
	return func() {
		d := time.Since(begin)
		mu.Lock()
		defer mu.Unlock()
		s, ok := scopes[name]
		if !ok {
			s = &Scope{Name: name}
			scopes[name] = s
		}
		s.Count++
		s.Total += d
		s.Max = max(s.Max, d)
	}
}

// Report returns the scopes sorted by total time, longest first, with Avg filled.
func Report() []Scope {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Scope, 0, len(scopes))
	for _, s := range scopes {
		sc := *s
		sc.Avg = sc.Mean()
		out = append(out, sc)
	}
	slices.SortFunc(out, func(a, b Scope) int { return cmp.Compare(b.Total, a.Total) })
	return out
}

type report struct {
	Captured time.Time `toml:"captured"`
	Scopes   []Scope   `toml:"scope"`
}

// Dump writes the report as TOML to path, or to the temp dir when path is
// empty, and returns the file written.
func Dump(path string) (string, error) {
	rep := report{Captured: time.Now(), Scopes: Report()}
	if len(rep.Scopes) == 0 {
		return "", fmt.Errorf("profiler: no scopes recorded")
	}
	if path == "" {
		path = filepath.Join(os.TempDir(), "scenebox.profile.toml")
	}
	b, err := toml.Marshal(rep)
	if err != nil {
		return "", err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return "", err
	}
	return path, os.Rename(tmp, path)
}
