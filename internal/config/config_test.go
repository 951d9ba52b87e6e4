package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "caremuch"
password = "secret"
dbname = "caremuch_scheduler"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/scheduler.log"
level = "info"

[metrics]
enabled = true
service_name = "caremuch-scheduler"
path = "/metrics"

[directory_service]
url = "http://localhost:8081"
timeout = 5

[orders]
number_prefix = "ORD"
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "http://localhost:8081", cfg.Directory.URL)
	assert.Equal(t, "ORD", cfg.Orders.NumberPrefix)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_Defaults(t *testing.T) {
	minimal := `
[server]
http_port = 8080

[database]
host = "localhost"
port = 5432
dbname = "caremuch_scheduler"

[directory_service]
url = "http://localhost:8081"
`
	cfg, err := Load(writeConfig(t, minimal))
	require.NoError(t, err)

	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "caremuch-scheduler", cfg.Metrics.ServiceName)
	assert.Equal(t, 5, cfg.Directory.Timeout)
	assert.Equal(t, "ORD", cfg.Orders.NumberPrefix)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing port",
			content: `
[database]
host = "localhost"
dbname = "db"

[directory_service]
url = "http://localhost:8081"
`,
		},
		{
			name: "missing database",
			content: `
[server]
http_port = 8080

[directory_service]
url = "http://localhost:8081"
`,
		},
		{
			name: "missing directory url",
			content: `
[server]
http_port = 8080

[database]
host = "localhost"
dbname = "db"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.local",
		Port:     5433,
		User:     "svc",
		Password: "pw",
		DBName:   "scheduler",
		SSLMode:  "require",
	}
	assert.Equal(t, "host=db.local port=5433 user=svc password=pw dbname=scheduler sslmode=require", d.DSN())
}
