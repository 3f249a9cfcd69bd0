package logspy_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anders-schneider/LibrarySimulator/testutil/logspy"
)

func Test_LogHandlerSpy_MatchesLevelMessageAndAttrs(t *testing.T) {
	// arrange
	spy := logspy.New()
	logger := spy.Logger()

	// act
	logger.Debug("command dispatched", "command", "open", "events", 1)
	logger.Error("journaling failed", "error", "boom")

	// assert
	assert.Len(t, spy.Records(), 2)
	assert.True(t, spy.HasLog(slog.LevelDebug, "command dispatched").WithAttr("command", "open").Assert())
	assert.True(t, spy.HasLog(slog.LevelDebug, "command dispatched").WithAttrKey("events").Assert())
	assert.False(t, spy.HasLog(slog.LevelDebug, "command dispatched").WithAttr("command", "close").Assert())
	assert.False(t, spy.HasLog(slog.LevelInfo, "journaling failed").Assert())
	assert.True(t, spy.HasLog(slog.LevelError, "journaling failed").WithAttr("error", "boom").Assert())
}
