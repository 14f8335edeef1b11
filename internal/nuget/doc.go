// Package nuget drives the external packers and pushers.
//
// It turns manifests and archives into nuget or dotnet command lines,
// runs them through a runner, and maps known failure output to hints.
package nuget
