package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults used when neither the config file nor the environment sets a
// value.
const (
	DefaultDataFile  = "data/maintenance.json"
	DefaultHTTPAddr  = ":8080"
	DefaultMQTTTopic = "maintenance/events"
)

// Config is the application configuration. Values come from an optional
// YAML file, with environment variables taking precedence so container
// deployments can override without editing files.
type Config struct {
	// DataFile is the JSON document path used by the file store.
	DataFile string `yaml:"data_file"`
	// StorageDriver selects the store backend: "file" (default) or "mongo".
	StorageDriver string `yaml:"storage_driver"`
	// MongoURI and MongoDatabase configure the mongo backend.
	MongoURI      string `yaml:"mongo_uri"`
	MongoDatabase string `yaml:"mongo_database"`
	// HTTPAddr is the listen address for serve mode.
	HTTPAddr string `yaml:"http_addr"`
	// MQTTBroker enables the change-event notifier when non-empty.
	MQTTBroker string `yaml:"mqtt_broker"`
	MQTTTopic  string `yaml:"mqtt_topic"`
}

func defaults() Config {
	return Config{
		DataFile:      DefaultDataFile,
		StorageDriver: "file",
		MongoDatabase: "maintenance",
		HTTPAddr:      DefaultHTTPAddr,
		MQTTTopic:     DefaultMQTTTopic,
	}
}

// Load reads the YAML file at path when it exists, then applies
// environment overrides. A missing file is not an error; the defaults
// carry a usable local setup.
func Load(path string) (Config, error) {
	cfg := defaults()
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env overrides
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnv()
	if cfg.StorageDriver != "file" && cfg.StorageDriver != "mongo" {
		return Config{}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("MAINT_DATA_FILE"); v != "" {
		c.DataFile = v
	}
	if v := os.Getenv("MAINT_STORAGE_DRIVER"); v != "" {
		c.StorageDriver = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.MongoURI = v
	}
	if v := os.Getenv("MONGO_DATABASE"); v != "" {
		c.MongoDatabase = v
	}
	if v := os.Getenv("MAINT_HTTP_ADDR"); v != "" {
		c.HTTPAddr = v
	}
	if v := os.Getenv("MQTT_BROKER"); v != "" {
		c.MQTTBroker = v
	}
	if v := os.Getenv("MQTT_TOPIC"); v != "" {
		c.MQTTTopic = v
	}
}

// WriteDefault writes a commented starter config to path, creating parent
// directories. Existing files are left alone.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(path, []byte(defaultYAML), 0o644)
}

const defaultYAML = `# maintenance management configuration
# Environment variables override these values:
#   MAINT_DATA_FILE, MAINT_STORAGE_DRIVER, MAINT_HTTP_ADDR,
#   MONGO_URI, MONGO_DATABASE, MQTT_BROKER, MQTT_TOPIC

data_file: data/maintenance.json
storage_driver: file   # file | mongo
http_addr: ":8080"

# mongo_uri: mongodb://localhost:27017
# mongo_database: maintenance

# Enable change-event publishing by setting a broker:
# mqtt_broker: tcp://localhost:1883
# mqtt_topic: maintenance/events
`
