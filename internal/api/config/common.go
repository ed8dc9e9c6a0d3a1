package config

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"database"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	MinIO   MinIOConfig   `mapstructure:"minio"`
	Ranking RankingConfig `mapstructure:"ranking"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type MongoConfig struct {
	URL        string `mapstructure:"url"`
	Database   string `mapstructure:"database"`
	Collection string `mapstructure:"collection"`
}

type MinIOConfig struct {
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	Bucket        string `mapstructure:"bucket"`
	UseSSL        bool   `mapstructure:"use_ssl"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// RankingConfig controls the popularity ranking engine.
type RankingConfig struct {
	// SnapshotStore selects the snapshot backend: file, redis or mongo.
	SnapshotStore string `mapstructure:"snapshot_store"`
	// SnapshotDir is the base directory for the file backend.
	SnapshotDir string `mapstructure:"snapshot_dir"`
	// RefreshSpec is the cron spec for the reconcile job.
	RefreshSpec string `mapstructure:"refresh_spec"`
	// TopN is the leaderboard size served by the top endpoint.
	TopN int `mapstructure:"top_n"`
}
