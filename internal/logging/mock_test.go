package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_CapturesEntries(t *testing.T) {
	m := &MockLogger{}

	m.Info("categorized", Field{Key: FieldCount, Value: 3})
	m.Warn("no candidates", Field{Key: FieldGroup, Value: "sbi_savings"})

	require.Len(t, m.Entries, 2)
	assert.True(t, m.HasEntry("INFO", "categorized"))
	assert.True(t, m.HasEntry("WARN", "no candidates"))
	assert.False(t, m.HasEntry("ERROR", "categorized"))

	assert.Equal(t, FieldCount, m.Entries[0].Fields[0].Key)
	assert.Equal(t, 3, m.Entries[0].Fields[0].Value)
}

func TestMockLogger_WithErrorAndFields(t *testing.T) {
	m := &MockLogger{}
	err := errors.New("boom")

	m.WithError(err).WithField(FieldFile, "a.csv").Error("read failed")

	require.Len(t, m.Entries, 1)
	assert.Equal(t, err, m.Entries[0].Error)
	assert.Equal(t, "a.csv", m.Entries[0].Fields[0].Value)

	m.Clear()
	assert.Empty(t, m.Entries)
}

func TestNewLogrusAdapter(t *testing.T) {
	logger := NewLogrusAdapter("debug", "json")
	require.NotNil(t, logger)

	// Chained loggers must not be nil either.
	assert.NotNil(t, logger.WithField(FieldBank, "sbi"))
	assert.NotNil(t, logger.WithError(errors.New("boom")))
}
