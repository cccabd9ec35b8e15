package inspector_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/docfold/inspector"
	"github.com/viant/docfold/inspector/golang"
	"github.com/viant/docfold/inspector/info"
)

func TestFactory_GetInspector(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{name: "Go file", filename: "test.go"},
		{name: "upper case extension", filename: "TEST.GO"},
		{name: "Java file", filename: "Test.java", wantErr: true},
		{name: "Unsupported file", filename: "test.cpp", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory := inspector.NewFactory(&info.Config{IncludeUnexported: true})
			insp, err := factory.GetInspector(tt.filename)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, &golang.Inspector{}, insp)
		})
	}
}

func TestFactory_InspectProject(t *testing.T) {
	location, err := filepath.Abs(filepath.Join("golang", "testdata", "stack"))
	require.NoError(t, err)
	inspection, err := inspector.NewFactory(nil).InspectProject(context.Background(), location)
	require.NoError(t, err)
	assert.Equal(t, "myapp/stack", inspection.Crate.Name)
	assert.Positive(t, inspection.Exported.Len())
}

func TestFactory_InspectProject_Unsupported(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.go"), []byte("package a\n"), 0o644))
	project := inspector.NewFactory(nil)
	inspection, err := project.InspectProject(context.Background(), dir)
	if err != nil {
		assert.Contains(t, err.Error(), "unsupported project type")
		return
	}
	// temp dir sits inside a go module or git checkout
	assert.NotNil(t, inspection)
}
