package storage

import "strings"

// Config holds connection settings for the archive bucket.
type Config struct {
	Type      string // "minio", "s3", "r2"; empty auto-detects from endpoint
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	Region    string
}

// New creates an ObjectStorage instance based on the configuration.
// Parameters:
//   - cfg: storage configuration including endpoint, credentials, and bucket.
// Returns:
//   - ObjectStorage: initialized storage client implementation.
//   - error: non-nil if the storage client cannot be created.
func New(cfg *Config) (ObjectStorage, error) {
	if cfg.Type == "" {
		cfg.Type = detectType(cfg.Endpoint)
	}
	if cfg.Type == "minio" {
		return NewMinIOStorage(cfg)
	}
	return NewS3Storage(cfg)
}

// detectType guesses the backend from the endpoint host.
func detectType(endpoint string) string {
	endpoint = strings.ToLower(endpoint)
	switch {
	case strings.Contains(endpoint, "r2.cloudflarestorage.com"):
		return "r2"
	case strings.Contains(endpoint, "amazonaws.com"):
		return "s3"
	default:
		return "minio"
	}
}
