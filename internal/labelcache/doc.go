// Package labelcache persists per-key generation state in SQLite so
// unchanged keys can be skipped on re-runs.
//
// Each row maps a key name to the SHA-256 of the synthesized input
// document and the fragment path written for it. The database is a
// disposable cache, not an archive: schema changes bump the version in
// schema.go and users clear the cache to adopt the new schema.
package labelcache
