package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Storage  StorageConfig
	Engines  EngineConfig
	Pipeline PipelineConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// StorageConfig holds the filesystem layout the pipeline works against.
type StorageConfig struct {
	// StagingDir is where the upload server parks finished uploads
	// (file plus .info sidecar) until the pipeline consumes them.
	StagingDir string
	// StaticDir is the durable root for processed data products.
	StaticDir string
}

// EngineConfig names the external conversion binaries.
type EngineConfig struct {
	GDALInfo      string
	GDALTranslate string
	GDALWarp      string
	PDAL          string
	Untwine       string
	OGR2OGR       string
}

// PipelineConfig holds processing knobs.
type PipelineConfig struct {
	Workers            int
	QueueSize          int
	ProcessTimeout     time.Duration
	VectorFeatureLimit int
	// RejectMixedGeometries aborts vector ingestion when feature geometry
	// types are inconsistent; the default logs and continues.
	RejectMixedGeometries bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Storage: StorageConfig{
			StagingDir: getEnv("STAGING_DIR", "/var/lib/geoingest/staging"),
			StaticDir:  getEnv("STATIC_DIR", "/var/lib/geoingest/static"),
		},
		Engines: EngineConfig{
			GDALInfo:      getEnv("GDALINFO_BIN", "gdalinfo"),
			GDALTranslate: getEnv("GDAL_TRANSLATE_BIN", "gdal_translate"),
			GDALWarp:      getEnv("GDALWARP_BIN", "gdalwarp"),
			PDAL:          getEnv("PDAL_BIN", "pdal"),
			Untwine:       getEnv("UNTWINE_BIN", "untwine"),
			OGR2OGR:       getEnv("OGR2OGR_BIN", "ogr2ogr"),
		},
		Pipeline: PipelineConfig{
			Workers:               getEnvAsInt("PIPELINE_WORKERS", 4),
			QueueSize:             getEnvAsInt("PIPELINE_QUEUE_SIZE", 256),
			ProcessTimeout:        getEnvAsDuration("PIPELINE_PROCESS_TIMEOUT", 30*time.Minute),
			VectorFeatureLimit:    getEnvAsInt("VECTOR_FEATURE_LIMIT", 250000),
			RejectMixedGeometries: getEnvAsBool("VECTOR_REJECT_MIXED_GEOMETRIES", false),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Storage.StagingDir == "" {
		return NewAppError("CONFIG_ERROR", "STAGING_DIR is required", ErrInvalidInput)
	}
	if c.Storage.StaticDir == "" {
		return NewAppError("CONFIG_ERROR", "STATIC_DIR is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
