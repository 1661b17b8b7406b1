// Package store provides SQLite-backed durable storage for the journal.
//
// Three containers back the data model:
//   - entries: journal entries keyed by entry id
//   - teacher_config: the singleton teacher profile, fixed key "default"
//   - school_config: the singleton school profile, fixed key "default"
//
// Hours and attendance are stored as JSON TEXT columns; the profiles are
// stored as a JSON document under their fixed key, overwritten in place
// on save.
//
// Schema versioning uses PRAGMA user_version. Migrations are additive and
// idempotent only: opening at a higher version creates containers that do
// not yet exist and never drops data. Version 2 added school_config.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON
//
// The connection pool is capped at a single connection, so every
// operation is serialized: a later write can never be clobbered by an
// earlier write completing out of order. Shared gives callers a per-path
// memoized handle; concurrent first opens coalesce onto one Open call.
//
// Every failure of the durable medium surfaces as *StorageError so
// callers can distinguish storage trouble from domain errors.
package store
