package cli

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dicklesworthstone/sysview/internal/config"
	"github.com/Dicklesworthstone/sysview/internal/errors"
	"github.com/Dicklesworthstone/sysview/internal/logger"
)

type recorder struct {
	onceCfg *config.Config
	tuiCfg  *config.Config
}

func (r *recorder) runner() runner {
	return runner{
		once: func(cfg config.Config, _ logger.Logger) (string, error) {
			r.onceCfg = &cfg
			return "CPU rows", nil
		},
		tui: func(cfg config.Config, _ logger.Logger) error {
			r.tuiCfg = &cfg
			return nil
		},
	}
}

func TestRootCmd_Once(t *testing.T) {
	var out bytes.Buffer
	rec := &recorder{}
	cmd := newRootCmd(&out, rec.runner())
	cmd.SetArgs([]string{"--once", "--interval", "200ms"})

	require.NoError(t, cmd.Execute())

	require.NotNil(t, rec.onceCfg)
	assert.Nil(t, rec.tuiCfg)
	assert.Equal(t, 200*time.Millisecond, rec.onceCfg.Interval)
	assert.Equal(t, "CPU rows\n", out.String())
}

func TestRootCmd_DefaultRunsTUI(t *testing.T) {
	rec := &recorder{}
	cmd := newRootCmd(&bytes.Buffer{}, rec.runner())
	cmd.SetArgs([]string{"--log-file", t.TempDir() + "/sysview.log"})

	require.NoError(t, cmd.Execute())

	require.NotNil(t, rec.tuiCfg)
	assert.Nil(t, rec.onceCfg)
	assert.Equal(t, time.Second, rec.tuiCfg.Interval)
}

func TestRootCmd_InvalidInterval(t *testing.T) {
	rec := &recorder{}
	cmd := newRootCmd(&bytes.Buffer{}, rec.runner())
	cmd.SetArgs([]string{"--interval", "0s", "--once"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Nil(t, rec.onceCfg)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd(&bytes.Buffer{}, (&recorder{}).runner())
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}

func TestNewRootCmd_Flags(t *testing.T) {
	cmd := NewRootCmd(&bytes.Buffer{})
	for _, name := range []string{"config", "interval", "once", "proc", "sys", "log-file", "debug"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestRootCmd_DebugFlagEnablesDebugLogging(t *testing.T) {
	var got logger.Logger
	r := runner{once: func(_ config.Config, l logger.Logger) (string, error) {
		got = l
		return "", nil
	}}
	cmd := newRootCmd(&bytes.Buffer{}, r)
	cmd.SetArgs([]string{"--once", "--debug"})

	require.NoError(t, cmd.Execute())

	require.IsType(t, &logger.Std{}, got)
	assert.Equal(t, logger.New("[sysview]", true), got)
}

func TestRun_ExitCodes(t *testing.T) {
	failing := runner{once: func(config.Config, logger.Logger) (string, error) {
		return "", errors.New(errors.ErrSample, "Cannot open procfs at /nope", "Pass --proc")
	}}
	broken := runner{once: func(config.Config, logger.Logger) (string, error) {
		return "", fmt.Errorf("terminal gone")
	}}

	tests := []struct {
		name   string
		args   []string
		r      runner
		code   int
		stderr string
	}{
		{"success", []string{"--once"}, (&recorder{}).runner(), 0, ""},
		{"unknown flag", []string{"--bogus"}, (&recorder{}).runner(), exitFailure, "unknown flag: --bogus\n"},
		{"invalid interval", []string{"--once", "--interval", "0s"}, (&recorder{}).runner(), exitConfig, ""},
		{"sample failure", []string{"--once"}, failing, exitSample, ""},
		{"plain failure", []string{"--once"}, broken, exitFailure, "terminal gone\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer

			code := run(tt.args, &bytes.Buffer{}, &stderr, tt.r)

			assert.Equal(t, tt.code, code)
			if tt.stderr != "" {
				assert.Equal(t, tt.stderr, stderr.String())
			}
			if code != 0 {
				assert.True(t, bytes.HasSuffix(stderr.Bytes(), []byte("\n")))
				assert.False(t, bytes.HasSuffix(stderr.Bytes(), []byte("\n\n")))
			}
		})
	}
}
