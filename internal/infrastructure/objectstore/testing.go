package objectstore

// TestBucket is the bucket used by connector tests
const TestBucket = "campaign-test"

// TestEndpoint is a local MinIO endpoint for integration tests
const TestEndpoint = "http://127.0.0.1:9000"

// TestAccessKey and TestSecretKey are MinIO's default development credentials
const (
	TestAccessKey = "minioadmin"
	TestSecretKey = "minioadmin"
)
