// Package blob stores rendered reports in S3 or an S3-compatible object store.
package blob

// Config configures the report bucket.
//
// Credentials come from AccessKeyID/SecretAccessKey when both are set, otherwise from the
// AWS default chain. For MinIO and similar stores set Endpoint and ForcePathStyle.
type Config struct {
	Bucket          string `yaml:"bucket" env:"BLOB_BUCKET"`
	Region          string `yaml:"region" env:"BLOB_REGION"`
	Endpoint        string `yaml:"endpoint" env:"BLOB_ENDPOINT"`
	AccessKeyID     string `yaml:"access_key_id" env:"BLOB_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"BLOB_SECRET_ACCESS_KEY"`
	ForcePathStyle  bool   `yaml:"force_path_style" env:"BLOB_FORCE_PATH_STYLE"`
	// PublicBaseURL replaces the derived object URL prefix, e.g. a CDN in front of the bucket.
	PublicBaseURL string `yaml:"public_base_url" env:"BLOB_PUBLIC_BASE_URL"`
}

const DefaultAWSRegion = "us-east-1"

// Enabled reports whether a bucket is configured at all.
func (c *Config) Enabled() bool {
	return c.Bucket != ""
}

func (c *Config) Validate() error {
	if c.Bucket == "" {
		return &ConfigError{Field: "Bucket", Message: "bucket name is required"}
	}
	if (c.AccessKeyID != "") != (c.SecretAccessKey != "") {
		return &ConfigError{
			Field:   "AccessKeyID/SecretAccessKey",
			Message: "both access key ID and secret access key must be provided together",
		}
	}
	return nil
}

type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "blob config: " + e.Field + ": " + e.Message
}
