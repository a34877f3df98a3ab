package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeAnalysis(); err != nil {
		return err
	}
	if err := c.normalizeCloud(); err != nil {
		return err
	}
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeAnalysis() error {
	c.Analysis.StopWords = strings.TrimSpace(c.Analysis.StopWords)
	if c.Analysis.StopWords == "" {
		if value, ok := os.LookupEnv(stopWordsEnv); ok {
			c.Analysis.StopWords = strings.TrimSpace(value)
		}
	}
	if c.Analysis.StopWords == "" {
		return nil
	}
	var err error
	if c.Analysis.StopWords, err = expandPath(c.Analysis.StopWords); err != nil {
		return fmt.Errorf("analysis.stop_words: %w", err)
	}
	return nil
}

func (c *Config) normalizeCloud() error {
	c.Cloud.Output = strings.TrimSpace(c.Cloud.Output)
	if c.Cloud.Output == "" {
		return nil
	}
	var err error
	if c.Cloud.Output, err = expandPath(c.Cloud.Output); err != nil {
		return fmt.Errorf("cloud.output: %w", err)
	}
	return nil
}

func (c *Config) normalizeHistory() error {
	c.History.Path = strings.TrimSpace(c.History.Path)
	if c.History.Path == "" {
		return nil
	}
	var err error
	if c.History.Path, err = expandPath(c.History.Path); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
