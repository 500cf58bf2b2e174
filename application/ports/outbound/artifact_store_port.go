package outbound

// ArtifactStorePort owns the on-disk lifecycle of a pipeline run: a
// uniquely-named scratch directory per run, promotion of the finished
// artifact into the serving area, and download resolution.
type ArtifactStorePort interface {
	// CreateScratchDir returns a fresh working directory that no other
	// run shares.
	CreateScratchDir(runID string) (string, error)

	// RemoveScratchDir deletes a run's working directory and everything
	// in it. Best effort; failures are logged, not returned.
	RemoveScratchDir(dir string)

	// Promote moves a finished artifact out of scratch into the output
	// area and returns its absolute path.
	Promote(scratchPath string, fileName string) (string, error)

	// Resolve maps an artifact file name to an absolute path, failing
	// with ArtifactNotFound when no such artifact exists.
	Resolve(fileName string) (string, error)
}
