// Package check runs the lint checks over resolved targets.
//
// The checks themselves are deliberately small: a note scanner that reports
// configured keywords (FIXME, TODO, ...) in comments, and a line-length
// check. What matters is how they are driven: the Runner expands each
// submitted directory into its files and resolves configuration per file, so
// a subdirectory with its own rc file is checked under that rc file even
// when its parent directory was the submitted target.
package check
