package log

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, correlationID := WithCorrelationID(context.Background())

	_, err := uuid.Parse(correlationID)
	assert.NoError(t, err)
	assert.Equal(t, correlationID, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	tests := []struct {
		name     string
		level    string
		expected logrus.Level
	}{
		{name: "Nível válido", level: "debug", expected: logrus.DebugLevel},
		{name: "Nível em maiúsculas", level: "WARN", expected: logrus.WarnLevel},
		{name: "Nível inválido usa info", level: "verboso", expected: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Setup(tt.level))
			assert.Equal(t, tt.expected, logrus.GetLevel())
		})
	}
}
