package repository

import (
	"context"
	"path/filepath"

	"github.com/viant/afs"
	"golang.org/x/mod/modfile"
)

// Detector identifies project root folders and provides project-related information
type Detector struct {
	fs      afs.Service
	markers []string
}

// New creates a new project detector instance
func New() *Detector {
	return &Detector{
		fs: afs.New(),
		markers: []string{
			"go.mod", // Go projects
			".git",   // Generic VCS marker
		},
	}
}

// DetectProject identifies the project root for the given location and returns project info.
// Locations outside any project are treated as their own root named after the directory.
func (d *Detector) DetectProject(ctx context.Context, location string) (*Project, error) {
	absPath, err := filepath.Abs(location)
	if err != nil {
		return nil, err
	}
	object, err := d.fs.Object(ctx, absPath)
	if err != nil {
		return nil, err
	}
	startDir := absPath
	if !object.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	project := &Project{Type: "unknown", RootPath: startDir, Name: filepath.Base(startDir)}
	rootPath, marker := d.findProjectRoot(ctx, startDir)
	if rootPath != "" {
		project.RootPath = rootPath
		project.Type = determineProjectType(marker)
		project.Name = filepath.Base(rootPath)
	}
	if project.Type == "go" {
		if project.GoModule, err = d.loadGoModule(ctx, filepath.Join(rootPath, "go.mod")); err != nil {
			return nil, err
		}
		if project.GoModule != nil {
			project.Name = project.GoModule.Mod.Path
		}
	}

	relPath, err := filepath.Rel(project.RootPath, startDir)
	if err != nil {
		relPath = "."
	}
	project.RelativePath = filepath.ToSlash(relPath)
	return project, nil
}

// findProjectRoot searches up from the start directory for project markers
func (d *Detector) findProjectRoot(ctx context.Context, startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if ok, _ := d.fs.Exists(ctx, filepath.Join(dir, marker)); ok {
				return dir, marker
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ""
}

func (d *Detector) loadGoModule(ctx context.Context, goModPath string) (*modfile.Module, error) {
	content, err := d.fs.DownloadWithURL(ctx, goModPath)
	if err != nil {
		return nil, err
	}
	mod, err := modfile.ParseLax(goModPath, content, nil)
	if err != nil {
		return nil, err
	}
	return mod.Module, nil
}

// determineProjectType identifies the type of project based on the marker file
func determineProjectType(marker string) string {
	switch marker {
	case "go.mod":
		return "go"
	case ".git":
		return "git"
	default:
		return "unknown"
	}
}
