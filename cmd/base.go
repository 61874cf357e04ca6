// Package cmd holds the flag and configuration plumbing shared by the chief executables.
package cmd

var (
	// Version is the app's semantic version. Designed to be overwritten by make.
	Version string

	// Branch is the git branch used to build the App. Designed to be overwritten by make.
	Branch string

	// Commit is the git commit used to build the app. Designed to be overwritten by make.
	Commit string
)

// VersionString joins the build variables for display.
func VersionString() string {
	v := Version
	if v == "" {
		v = "dev"
	}
	if Commit != "" {
		v += "+" + Commit
	}
	if Branch != "" {
		v += "+" + Branch
	}
	return v
}
