// Package manifest renders NuGet package definitions from package metadata.
//
// Two variants are supported: the legacy .nuspec manifest consumed by
// "nuget pack", and an SDK-style .csproj project consumed by "dotnet pack".
// Rendering is pure; Writer persists a manifest together with the README.md
// description file that sits next to it. The package also renders the
// nuget.config credential file used when pushing to an authenticated feed.
package manifest
