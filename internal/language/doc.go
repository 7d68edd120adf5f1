// Package language resolves language codes and names to display forms used
// in model system prompts.
package language
