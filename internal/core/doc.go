// Package core holds the small set of abstractions shared by every other
// package: filesystem access, file permissions, and timeouts.
package core
