// Package render turns report values into plain human-readable text.
//
// Rendering is pure: every function is a deterministic function of its
// argument, performs no escaping, and is safe for concurrent use. XML
// concerns (CDATA, attribute escaping) belong to internal/junit.
//
// Layout of a rendered Blame:
//
//	a.js:2
//	const x = X
//	          ^ Cannot find X
//
// Separators: messages within an error or extra are joined by a blank line,
// child extras by a blank line, and top-level extras by a single newline.
package render
