package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, NewWithOutput(&bytes.Buffer{}, "debug", "text").GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewWithOutput(&bytes.Buffer{}, "chatty", "text").GetLevel())
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf, "info", "json")
	log.WithField("port", "3000").Info("listening")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "listening", entry["msg"])
	assert.Equal(t, "3000", entry["port"])
}
