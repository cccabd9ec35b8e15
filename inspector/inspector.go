package inspector

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/docfold/inspector/golang"
	"github.com/viant/docfold/inspector/info"
	"github.com/viant/docfold/inspector/repository"
)

// Inspector builds a documentation tree and its export set from sources
type Inspector interface {
	// InspectSource parses a single source file
	InspectSource(src []byte) (*golang.Inspection, error)

	// InspectProject parses every package under location
	InspectProject(ctx context.Context, location string) (*golang.Inspection, error)
}

// Factory creates appropriate inspectors based on language
type Factory struct {
	config   *info.Config
	detector *repository.Detector
}

// NewFactory creates a new inspector factory with the given config
func NewFactory(config *info.Config) *Factory {
	if config == nil {
		config = info.DefaultConfig()
	}
	return &Factory{
		config:   config,
		detector: repository.New(),
	}
}

// GetInspector returns an appropriate inspector based on file extension
func (f *Factory) GetInspector(filename string) (Inspector, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".go":
		return golang.NewInspector(f.config), nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s", ext)
	}
}

// InspectProject detects the project kind at location and inspects it
func (f *Factory) InspectProject(ctx context.Context, location string) (*golang.Inspection, error) {
	project, err := f.detector.DetectProject(ctx, location)
	if err != nil {
		return nil, err
	}
	switch project.Type {
	case "go":
		return golang.NewInspector(f.config).InspectProject(ctx, location)
	}
	return nil, fmt.Errorf("unsupported project type %q at %v", project.Type, location)
}
