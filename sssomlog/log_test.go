package sssomlog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sssom/sssom-core/sssomlog"
)

func TestGetLevelRecognisesKnownStrings(t *testing.T) {
	t.Parallel()

	lvl, err := sssomlog.GetLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	lvl, err = sssomlog.GetLevel("warning")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}

func TestGetLevelRejectsUnknownString(t *testing.T) {
	t.Parallel()

	_, err := sssomlog.GetLevel("trace")
	require.ErrorIs(t, err, sssomlog.ErrUnknownLogLevel)
}

func TestGetFormatRecognisesKnownStrings(t *testing.T) {
	t.Parallel()

	f, err := sssomlog.GetFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, sssomlog.FormatJSON, f)
}

func TestGetFormatRejectsUnknownString(t *testing.T) {
	t.Parallel()

	_, err := sssomlog.GetFormat("xml")
	require.ErrorIs(t, err, sssomlog.ErrUnknownLogFormat)
}

func TestCreateHandlerWithStringsRejectsInvalidLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	_, err := sssomlog.CreateHandlerWithStrings(&buf, "bogus", "json")
	require.ErrorIs(t, err, sssomlog.ErrInvalidArgument)
}

func TestCreateHandlerWithStringsRejectsInvalidFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	_, err := sssomlog.CreateHandlerWithStrings(&buf, "info", "bogus")
	require.ErrorIs(t, err, sssomlog.ErrInvalidArgument)
}

func TestCreateHandlerProducesJSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	h := sssomlog.CreateHandler(&buf, slog.LevelInfo, sssomlog.FormatJSON)
	require.NotNil(t, h)

	logger := slog.New(h)
	logger.Info("hello")

	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestCreateHandlerProducesLogfmtOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	h := sssomlog.CreateHandler(&buf, slog.LevelInfo, sssomlog.FormatLogfmt)
	require.NotNil(t, h)

	logger := slog.New(h)
	logger.Info("hello")

	assert.Contains(t, buf.String(), "msg=hello")
}

func TestGetAllLevelAndFormatStringsAreNonEmpty(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, sssomlog.GetAllLevelStrings())
	assert.NotEmpty(t, sssomlog.GetAllFormatStrings())
}
