package mila

import "golang.org/x/mod/semver"

// Version is the engine's own version string, exposed to scripts as the
// "version" global and checked at package init time so a malformed
// constant fails the build's own sanity rather than surfacing as a
// runtime string-compare bug somewhere else.
const Version = "v0.4.0"

func init() {
	if !semver.IsValid(Version) {
		panic("mila: Version constant " + Version + " is not valid semver")
	}
}

func registerVersion(env *Env) {
	env.define("version", NewString(semver.Canonical(Version)))
}
