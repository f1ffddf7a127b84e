package domain

// ResultsLoader reads and parses a results document from a file path.
// Implementations return *LoadError or *FormatError.
type ResultsLoader interface {
	Load(path string) (*ResultsDocument, error)
}

// ConfigLoader reads presentation settings from a config file path.
type ConfigLoader interface {
	Load(path string) (Config, error)
}

// GitInfo resolves the commit checked out at a path.
type GitInfo interface {
	CommitHash(path string) (string, error)
}
