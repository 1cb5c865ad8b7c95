package log

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseLogger_ServiceFieldOutsideDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	base, ok := newBaseLogger().(*logger)
	require.True(t, ok)
	assert.Equal(t, serviceName, base.entry.Data["service"])
}

func TestNewBaseLogger_NoServiceFieldInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	base, ok := newBaseLogger().(*logger)
	require.True(t, ok)
	assert.NotContains(t, base.entry.Data, "service")
}

func TestWithFields_DevelopmentKeepsDomainFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	base := &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

	out, ok := base.WithFields(Fields{
		"dataset_id": "abc123",
		"rows_valid": 3,
		"user_agent": "curl",
	}).(*logger)
	require.True(t, ok)

	assert.Contains(t, out.entry.Data, "dataset_id")
	assert.Contains(t, out.entry.Data, "rows_valid")
	assert.NotContains(t, out.entry.Data, "user_agent")
}
