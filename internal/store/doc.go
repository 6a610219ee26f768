// Package store provides a SQLite-backed archive of report conversions.
//
// Every convert run can record one row: the run id, the input digest, the
// testcase counts, and the generated XML. The archive is append-only.
//
// # Ordering
//
//   - Rows carry seq INTEGER (insertion order), never timestamps
//   - List returns newest first: ORDER BY seq DESC
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//
// Run ids come from an IDGenerator; production uses UUIDv7 so ids sort by
// creation time.
package store
