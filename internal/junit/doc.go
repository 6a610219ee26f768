// Package junit assembles a JUnit-compatible XML document from a Flow report.
//
// Transform is the entry point. It validates the report, renders each error
// with internal/render, and wraps one testcase per error (or a single success
// testcase) in a testsuites/testsuite envelope. Output is a complete document
// starting with an XML declaration.
//
// Escaping rules:
//   - Attribute values are XML-escaped.
//   - Failure bodies are wrapped in CDATA; a literal "]]>" in the body is split
//     across two CDATA sections so the section cannot be terminated early.
//
// The package holds no state; an Assembler is immutable and safe for
// concurrent use.
package junit
