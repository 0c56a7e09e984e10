package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	testfile "github.com/midgard-chain/midgard/internal/testutils/file"
)

// The global output can be bound only once per process, so everything that
// inspects emitted entries shares the writer configured here.
func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	UpdateGlobalConfig(GlobalConfig{
		DefaultLevel:    INFO,
		PackageLevels:   map[string]LogLevel{"chatty": TRACE},
		Writer:          buf,
		ShowGoroutineID: true,
	})

	lastEntry := func(t *testing.T) map[string]interface{} {
		t.Helper()
		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		require.NotEmpty(t, lines)
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
		return entry
	}

	log := Create("capture")

	t.Run("message formatting", func(t *testing.T) {
		log.Info("processed %d certificates", 3)
		entry := lastEntry(t)
		require.Equal(t, "processed 3 certificates", entry["message"])
		require.Equal(t, "info", entry["level"])
	})

	t.Run("levels below the configured one are dropped", func(t *testing.T) {
		before := buf.Len()
		log.Debug("not visible at info level")
		require.Equal(t, before, buf.Len())
	})

	t.Run("per logger level override", func(t *testing.T) {
		Create("chatty").Trace("visible despite the default level")
		require.Equal(t, "visible despite the default level", lastEntry(t)["message"])
	})

	t.Run("goroutine id is attached", func(t *testing.T) {
		log.Info("tick")
		entry := lastEntry(t)
		require.Contains(t, entry, "GoID")
		require.Greater(t, entry["GoID"].(float64), float64(0))
	})

	t.Run("change level", func(t *testing.T) {
		before := buf.Len()
		log.Trace("dropped")
		require.Equal(t, before, buf.Len())

		log.ChangeLevel(TRACE)
		log.Trace("now visible")
		require.Equal(t, "now visible", lastEntry(t)["message"])
	})

	t.Run("context fields", func(t *testing.T) {
		SetContext("node", "n1")
		defer ClearContext("node")

		log.Info("with context")
		require.Equal(t, "n1", lastEntry(t)["node"])
	})
}

func TestCreate_SameNameSameLogger(t *testing.T) {
	require.Same(t, Create("dedup"), Create("dedup"))
	// names are normalized before lookup
	require.Same(t, Create("a/b c"), Create("a_b_c"))
}

func TestLevelFromString(t *testing.T) {
	cases := []struct {
		name  string
		level LogLevel
	}{
		{"NONE", NONE},
		{"ERROR", ERROR},
		{"WARNING", WARNING},
		{"INFO", INFO},
		{"DEBUG", DEBUG},
		{"TRACE", TRACE},
		{"", DEBUG},
		{"bogus", DEBUG},
	}
	for _, tc := range cases {
		require.Equal(t, tc.level, LevelFromString(tc.name), "level %q", tc.name)
	}
	for _, level := range []LogLevel{NONE, ERROR, WARNING, INFO, DEBUG, TRACE} {
		require.Equal(t, level, LevelFromString(level.String()))
	}
}

func TestPackageNameResolver(t *testing.T) {
	r := &PackageNameResolver{BasePackage: "midgard-chain/midgard", Depth: 1}
	require.Equal(t, "logger", r.PackageName())
}

func TestLoadGlobalConfigFromFile(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		fileName := filepath.Join(t.TempDir(), "logger-config.yaml")
		content := `
defaultLevel: WARNING
consoleFormat: false
showGoroutineID: true
packageLevels:
  ledger: TRACE
  stake: ERROR
`
		testfile.CreateTempFileWithContent(t, fileName, content)

		config, err := loadGlobalConfigFromFile(fileName)
		require.NoError(t, err)
		require.Equal(t, WARNING, config.DefaultLevel)
		require.True(t, config.ShowGoroutineID)
		require.Equal(t, map[string]LogLevel{"ledger": TRACE, "stake": ERROR}, config.PackageLevels)
		require.Equal(t, os.Stdout, config.Writer)
	})

	t.Run("missing file", func(t *testing.T) {
		err := UpdateGlobalConfigFromFile(filepath.Join(t.TempDir(), "no-such-file.yaml"))
		require.ErrorContains(t, err, "failed to read logger config file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		fileName := filepath.Join(t.TempDir(), "broken.yaml")
		testfile.CreateTempFileWithContent(t, fileName, "defaultLevel: [\n")

		_, err := loadGlobalConfigFromFile(fileName)
		require.ErrorContains(t, err, "failed to unmarshal logger config")
	})
}
