package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"client", "-a", "http://example.com:4000", "-r", "3"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://example.com:4000", cfg.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestParseFlags_UnknownFlagsIgnored(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"client", "-d", "postgres://other", "-a", "http://example.com:4000"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://example.com:4000", cfg.ServerEndpointAddr)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
