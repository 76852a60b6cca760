package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultDataFile, cfg.DataFile)
	assert.Equal(t, "file", cfg.StorageDriver)
	assert.Equal(t, DefaultHTTPAddr, cfg.HTTPAddr)
	assert.Equal(t, DefaultMQTTTopic, cfg.MQTTTopic)
}

func TestLoadReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maintenance.yaml")
	content := "data_file: /var/lib/maint/data.json\nstorage_driver: mongo\nmongo_database: plantdb\nhttp_addr: \":9090\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/maint/data.json", cfg.DataFile)
	assert.Equal(t, "mongo", cfg.StorageDriver)
	assert.Equal(t, "plantdb", cfg.MongoDatabase)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maintenance.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_file: from_file.json\n"), 0o644))

	t.Setenv("MAINT_DATA_FILE", "from_env.json")
	t.Setenv("MQTT_BROKER", "tcp://broker:1883")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from_env.json", cfg.DataFile)
	assert.Equal(t, "tcp://broker:1883", cfg.MQTTBroker)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("MAINT_STORAGE_DRIVER", "cassandra")
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "maintenance.yaml")
	require.NoError(t, WriteDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.StorageDriver)

	// a second call leaves an existing file alone
	require.NoError(t, os.WriteFile(path, []byte("data_file: custom.json\n"), 0o644))
	require.NoError(t, WriteDefault(path))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom.json", cfg.DataFile)
}
