package config

// SourceFileExt is the canonical extension of the sources we process.
const SourceFileExt = ".java"

// SourceFileExtensions lists every extension accepted as input.
var SourceFileExtensions = []string{SourceFileExt}

// Names of the synthesized initializer callables. A class has at most
// one of each; they collect the initializer blocks of the class body.
const (
	StaticInitializerName   = "<clinit>"
	InstanceInitializerName = "<obinit>"
)
