package cmd

import "fmt"

// Storage backend names accepted in Config.StorageBackend.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

type Config struct {
	HTTPPort       string
	StorageBackend string
	DataDir        string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
}

// DSN builds the lib/pq connection string for the postgres backend.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// Validate rejects unknown storage backends early, before any repository
// is built.
func (c Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory, BackendFile, BackendPostgres:
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
}
