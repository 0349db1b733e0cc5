package sdk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoggerFrom(t *testing.T) {
	t.Parallel()

	// falls back to a production logger
	assert.NotNil(t, LoggerFrom(context.Background()))

	nop := zap.NewNop().Sugar()
	ctx := WithLogger(context.Background(), nop)
	assert.Same(t, nop, LoggerFrom(ctx))
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	logger, err := NewLogger(true)
	require.NoError(t, err)
	assert.True(t, logger.Desugar().Core().Enabled(zap.DebugLevel))

	logger, err = NewLogger(false)
	require.NoError(t, err)
	assert.False(t, logger.Desugar().Core().Enabled(zap.DebugLevel))
}
