package config

type StorageProvider string

const (
	StorageLocal StorageProvider = "local"
	StorageS3    StorageProvider = "s3"
	StorageGCS   StorageProvider = "gcs"
)

type StorageConfig struct {
	Provider StorageProvider    `env:"PROVIDER" envDefault:"local"`
	Local    LocalStorageConfig `envPrefix:"LOCAL_"`
	AWS      AWSStorageConfig   `envPrefix:"AWS_"`
	GCP      GCPStorageConfig   `envPrefix:"GCP_"`
}

type LocalStorageConfig struct {
	BasePath string `env:"PATH" envDefault:"./uploads"`
	BaseURL  string `env:"URL" envDefault:"http://localhost:8080/uploads"`
}

type AWSStorageConfig struct {
	Region    string `env:"REGION" envDefault:"us-east-1"`
	Bucket    string `env:"BUCKET"`
	CDNDomain string `env:"CDN_DOMAIN"`
}

type GCPStorageConfig struct {
	Bucket          string `env:"BUCKET"`
	CredentialsFile string `env:"CREDENTIALS_FILE"`
	CDNDomain       string `env:"CDN_DOMAIN"`
}

// UploadConfig bounds the bill images the client sends.
type UploadConfig struct {
	MaxWidth    uint  `env:"MAX_WIDTH" envDefault:"1280"`
	MaxHeight   uint  `env:"MAX_HEIGHT" envDefault:"1280"`
	JPEGQuality int   `env:"JPEG_QUALITY" envDefault:"80"`
	MaxBytes    int64 `env:"MAX_BYTES" envDefault:"5242880"`
}
