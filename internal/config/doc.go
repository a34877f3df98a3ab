// Package config loads, normalizes, and validates wordcloud configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the WORDCLOUD_STOP_WORDS
// environment fallback. The Config type centralizes every knob the analyze,
// history and config commands need.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
