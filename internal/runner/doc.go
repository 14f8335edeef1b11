// Package runner starts external tools and relays their output.
//
// An Operation owns at most one running process. Every line the process
// writes to stdout or stderr is delivered to the Operation's Sink before
// Run returns, and Cancel kills the whole process tree.
package runner
