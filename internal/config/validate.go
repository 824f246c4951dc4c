package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvbasket/internal/logging"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks ranges and enums.
func (c *Config) Validate() error {
	if err := c.validateMining(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateMining() error {
	m := c.Mining
	if math.IsNaN(m.MinSupport) || m.MinSupport <= 0 || m.MinSupport > 1 {
		return fmt.Errorf("%w: mining.min_support must be in (0,1], got %v", ErrInvalid, m.MinSupport)
	}
	if math.IsNaN(m.MinConfidence) || m.MinConfidence < 0 || m.MinConfidence > 1 {
		return fmt.Errorf("%w: mining.min_confidence must be in [0,1], got %v", ErrInvalid, m.MinConfidence)
	}
	switch strings.ToLower(m.Algorithm) {
	case AlgorithmApriori, AlgorithmEclat:
	default:
		return fmt.Errorf("%w: mining.algorithm must be %s or %s, got %q", ErrInvalid, AlgorithmApriori, AlgorithmEclat, m.Algorithm)
	}
	if m.MaxLength < 0 {
		return fmt.Errorf("%w: mining.max_length cannot be negative", ErrInvalid)
	}

	return nil
}

func (c *Config) validateServer() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("%w: server.addr is required", ErrInvalid)
	}
	if c.Server.MaxItemsetLength < 0 {
		return fmt.Errorf("%w: server.max_itemset_length cannot be negative", ErrInvalid)
	}
	if c.Server.MineTimeout < 0 {
		return fmt.Errorf("%w: server.mine_timeout cannot be negative", ErrInvalid)
	}

	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("%w: logging.format must be json or console, got %q", ErrInvalid, c.Logging.Format)
	}
}
