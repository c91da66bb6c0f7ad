package lineEventProcessor

import (
    "github.com/stretchr/testify/assert"
    "go.uber.org/zap/zaptest"
    "testing"
)

func TestIsHealthCheckRequest(t *testing.T) {
    log := zaptest.NewLogger(t).Sugar()

    tests := []struct {
        name     string
        body     string
        expected bool
        hasError bool
    }{
        {name: "empty events", body: `{"destination":"U000","events":[]}`, expected: true},
        {name: "missing events", body: `{"destination":"U000"}`, expected: true},
        {name: "with events", body: `{"events":[{"type":"follow"}]}`, expected: false},
        {name: "malformed", body: `{"events":`, hasError: true},
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            isHealthCheck, err := IsHealthCheckRequest([]byte(tt.body), log)
            if tt.hasError {
                assert.Error(t, err)
                return
            }
            assert.NoError(t, err)
            assert.Equal(t, tt.expected, isHealthCheck)
        })
    }
}
