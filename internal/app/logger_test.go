package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/expandr/internal/config"
)

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      config.Log
		wantJSON bool
		wantInfo bool
		wantFile bool
	}{
		{name: "text at info", cfg: config.Log{Level: "info", Format: "text"}, wantInfo: true},
		{name: "json at debug", cfg: config.Log{Level: "debug", Format: "json"}, wantJSON: true, wantInfo: true},
		{name: "warn hides info", cfg: config.Log{Level: "warn", Format: "text"}},
		{name: "source location", cfg: config.Log{Level: "info", Format: "json", Source: true}, wantJSON: true, wantInfo: true, wantFile: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			var buf bytes.Buffer
			logger := newLogger(tc.cfg, &buf)

			// Act
			logger.Info("Module loaded.", "module", "fancyhelp")

			// Assert
			if !tc.wantInfo {
				assert.Empty(t, buf.String())
				return
			}
			if !tc.wantJSON {
				assert.Contains(t, buf.String(), "module=fancyhelp")
				return
			}
			var record map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
			assert.Equal(t, "fancyhelp", record["module"])
			_, hasSource := record["source"]
			assert.Equal(t, tc.wantFile, hasSource)
		})
	}
}
