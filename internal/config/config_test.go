package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("POSTGRES_USER", "mall")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("JWT_ACCESS_SECRET", "access-secret-access-secret-access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret-refresh-secret-refresh-secret")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_123")
}

func TestNew_Defaults(t *testing.T) {
	setRequired(t)

	conf := New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, "development", conf.Env)
	assert.False(t, conf.Kafka.Enabled())
	assert.Equal(t, "memory", conf.RateLimit.Store)
	assert.Equal(t, 15*time.Minute, conf.RateLimit.Window)
	assert.Equal(t, 5, conf.Auth.MaxFailedLogins)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{name: "kafka brokers parsed", env: map[string]string{"KAFKA_BROKERS": "localhost:9092, kafka:9092"}},
		{name: "bad env", env: map[string]string{"ENV": "dev"}, wantErr: true},
		{name: "short jwt secret", env: map[string]string{"JWT_ACCESS_SECRET": "short"}, wantErr: true},
		{name: "redis store without addr", env: map[string]string{"RATE_LIMIT_STORE": "redis"}, wantErr: true},
		{name: "redis store with addr", env: map[string]string{"RATE_LIMIT_STORE": "redis", "REDIS_ADDR": "localhost:6379"}},
		{name: "refresh ttl shorter than access", env: map[string]string{"JWT_REFRESH_TTL": "1m"}, wantErr: true},
		{name: "missing webhook secret", env: map[string]string{"STRIPE_WEBHOOK_SECRET": ""}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			err := New().Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNew_KafkaBrokers(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "a:9092, ,b:9092")
	conf := New()
	assert.Equal(t, []string{"a:9092", "b:9092"}, conf.Kafka.Brokers)
	assert.True(t, conf.Kafka.Enabled())
}
