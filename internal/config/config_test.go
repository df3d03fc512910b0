package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerConfig_Location(t *testing.T) {
	loc, err := ServerConfig{TimeZone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = ServerConfig{TimeZone: "Mars/Olympus_Mons"}.Location()
	assert.Error(t, err)
}
