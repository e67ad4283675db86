package cli

import "github.com/nullstride/cube3/internal/search"

// loadTable resolves the --cache flag to a pruning table: an explicit path
// loads or generates at that path, an empty path uses the OS cache
// directory, and a path that can't be determined falls back to an
// in-memory generation for this run only.
func loadTable(cachePath string) *search.PruneTable {
	if cachePath == "" {
		path, err := search.DefaultCachePath()
		if err != nil {
			return search.Generate()
		}
		cachePath = path
	}
	return search.LoadOrGenerate(cachePath)
}
