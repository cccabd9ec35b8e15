package repository

import (
	"path"
	"strings"

	"golang.org/x/mod/modfile"
)

// Project represents information about a detected project
type Project struct {
	RootPath     string // Absolute path to the project root directory
	Type         string // Type of project (go, git or unknown)
	Name         string // Name of the project (module path for go projects)
	RelativePath string // Path from project root to the inspected location
	GoModule     *modfile.Module
}

// ImportPath returns the import path of a directory relative to the project root
func (p *Project) ImportPath(relative string) string {
	relative = strings.Trim(path.Clean("/"+strings.ReplaceAll(relative, "\\", "/")), "/")
	if relative == "" {
		return p.Name
	}
	if p.Name == "" {
		return relative
	}
	return p.Name + "/" + relative
}
