// Package operations implements the package workflows shared by the
// commands: metadata defaults, manifest generation, version sync, build and
// upload. Each operation is built once per invocation and holds no state
// between runs.
package operations
