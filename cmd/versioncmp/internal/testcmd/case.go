// Package testcmd runs the versioncmp CLI in tests and checks what it prints.
package testcmd

type Case struct {
	Name string
	Args []string
	Exit int
}
