// Package config loads, normalizes, and validates chatrelay configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// GROQ_API_KEY, GEMINI_API_KEY, and PORT. The Config type centralizes every
// knob the server and CLI need.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
