package clog

import "github.com/juju/loggo"

const root = "crom"

// Get returns the named logger under the "crom" root, e.g.
// Get("lexer") or Get("parser.scope").
func Get(name string) loggo.Logger {
	if name == "" {
		return loggo.GetLogger(root)
	}
	return loggo.GetLogger(root + "." + name)
}

// SetLevel sets the minimum severity logged under the "crom" root and
// all of its children.
func SetLevel(level loggo.Level) {
	loggo.GetLogger(root).SetLogLevel(level)
}
