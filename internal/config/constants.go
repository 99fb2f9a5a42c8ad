package config

const SourceFileExt = ".mj"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".mj", ".minijava"}

// Built-in class names. Object is the universal root of the class
// hierarchy; String is the type of string literals.
const (
	RootClassName   = "Object"
	StringClassName = "String"
)

// ProjectFileName is the optional per-project configuration file.
const ProjectFileName = "minijava.yaml"
