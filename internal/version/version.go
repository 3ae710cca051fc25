// Package version holds the version of versioncmp.
package version

// VersioncmpVersion is the current release version, you should update this
// variable when doing a release
var VersioncmpVersion = "1.0.0"
