// Package tools wraps the external executables the CLI depends on: git for
// initializing data repositories and the platform browser opener for
// showing new notebooks. Each is exposed through a one-method interface so
// scaffolding can be exercised with a Recorder instead of real processes.
package tools
