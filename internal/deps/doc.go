// Package deps verifies the external binaries keysmith shells out to.
package deps
