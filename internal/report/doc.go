// Package report provides the input data model for flowjunit: a Flow type-checker
// diagnostic report as produced by `flow check --json`.
//
// This package contains type definitions, JSON decoding, and shape validation.
// It imports nothing internal. Rendering lives in internal/render and XML
// assembly in internal/junit.
//
// Key design constraints:
//   - All values are immutable once decoded; no package mutates a Report
//   - Message is a sealed sum type: Blame (has a source context line) or Comment
//   - A null or absent "context" field is what makes a message a Comment
//   - Extra.Children keeps the difference between absent (nil) and present-but-empty
package report
