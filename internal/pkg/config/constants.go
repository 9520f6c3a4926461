package config

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// Log level constants
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// S3StorageProvider is any S3 compatible object store (AWS, R2, MinIO, Spaces).
const S3StorageProvider = "s3"

// SMS driver constants
const (
	SMSDriverHTTP = "http"
	SMSDriverLog  = "log"
)
