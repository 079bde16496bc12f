package glcube_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarlune/glcube"
)

func TestParseGLVersion(t *testing.T) {

	v, err := glcube.ParseGLVersion(" 4.1 ")
	require.NoError(t, err)
	assert.Equal(t, glcube.GLVersion{Major: 4, Minor: 1}, v)
	assert.Equal(t, "4.1", v.String())

	for _, bad := range []string{"", "4", "four.one", "4.x", "3.2", "2.1"} {
		_, err := glcube.ParseGLVersion(bad)
		assert.Error(t, err, bad)
	}

}

func TestWindowConfigValidate(t *testing.T) {

	cfg := glcube.DefaultWindowConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []glcube.GLVersion{{Major: 4, Minor: 1}, {Major: 3, Minor: 3}}, cfg.ContextVersions)

	cfg.Width = 0
	assert.Error(t, cfg.Validate())

	// Fitting the monitor ignores the configured size.
	cfg.FitMonitor = true
	assert.NoError(t, cfg.Validate())

	cfg.ContextVersions = nil
	assert.Error(t, cfg.Validate())

}
