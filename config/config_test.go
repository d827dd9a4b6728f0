package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestConfig ...

env:

PROPERJPG_DEBUG=true
PROPERJPG_WORKERS=3
PROPERJPG_QUALITY=70
*/
func TestConfig(t *testing.T) {
	t.Setenv("PROPERJPG_DEBUG", "true")
	t.Setenv("PROPERJPG_WORKERS", "3")
	t.Setenv("PROPERJPG_QUALITY", "70")

	require.NoError(t, Load())
	assert.True(t, InDevelop())
	assert.Equal(t, 3, Current.Workers)
	assert.Equal(t, 70, Current.Quality)
}

func TestConfigDefaults(t *testing.T) {
	for _, k := range []string{"PROPERJPG_DEBUG", "PROPERJPG_WORKERS", "PROPERJPG_QUALITY"} {
		t.Setenv(k, "") // restored after the test
		os.Unsetenv(k)
	}

	require.NoError(t, Load())
	assert.False(t, InDevelop())
	assert.Zero(t, Current.Workers)
	assert.Zero(t, Current.Quality)
}

func TestConfigBadValue(t *testing.T) {
	t.Setenv("PROPERJPG_WORKERS", "many")
	assert.Error(t, Load())
}
