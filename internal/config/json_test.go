package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	raw := `{
		"auth": {"token_sign_key": "k", "token_issuer": "iss", "token_duration": "45m"},
		"storage": {
			"driver": "postgres",
			"mongo": {"uri": "mongodb://json", "host": "h", "database": "d"},
			"db": {"dsn": "postgres://json"}
		},
		"server": {
			"port": 5500,
			"http_address": "localhost:5500",
			"request_timeout": "20s",
			"shutdown_timeout": 1000000000,
			"cors_allowed_origins": ["http://x.test"]
		}
	}`
	f, err := os.CreateTemp(t.TempDir(), "cfg-*.json")
	require.NoError(t, err)
	_, err = f.WriteString(raw)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	cfg, err := parseJSON(f.Name())
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, "mongodb://json", cfg.Storage.Mongo.URI)
	assert.Equal(t, "h", cfg.Storage.Mongo.Host)
	assert.Equal(t, "d", cfg.Storage.Mongo.Database)
	assert.Equal(t, "postgres://json", cfg.Storage.DB.DSN)
	assert.Equal(t, 5500, cfg.Server.Port)
	assert.Equal(t, "localhost:5500", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"http://x.test"}, cfg.Server.CORSAllowedOrigins)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Malformed(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = parseJSON(f.Name())
	assert.Error(t, err)
}

func TestDuration_JSONRoundTrip(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1h30m"`), &d))
	assert.Equal(t, 90*time.Minute, time.Duration(d))

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"1h30m0s"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
}
