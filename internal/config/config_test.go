package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/John-Robertt/rawsync/internal/domain"
)

func TestLoadEffective_EmptyDir(t *testing.T) {
	_, err := LoadEffective(t.TempDir(), CLIArgs{Dir: "  "})
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalid, domain.Code(err))
}

func TestLoadEffective_RelativeDirResolvedFromCwd(t *testing.T) {
	cwd := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(cwd, "photos"), 0o755))

	eff, err := LoadEffective(cwd, CLIArgs{Dir: "photos/", Strict: true})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "photos"), eff.Dir)
	assert.True(t, eff.Strict)
	assert.True(t, eff.Progress)
	assert.Empty(t, eff.ReportPath)
}

func TestLoadEffective_DirUnreadable(t *testing.T) {
	cwd := t.TempDir()
	file := filepath.Join(cwd, "a.jpg")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	tests := []struct {
		name string
		dir  string
	}{
		{"missing", "nope"},
		{"not a dir", file},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadEffective(cwd, CLIArgs{Dir: tt.dir})
			require.Error(t, err)
			assert.Equal(t, ErrCodeDirUnreadable, domain.Code(err))

			var de *domain.Error
			require.ErrorAs(t, err, &de)
			assert.Equal(t, domain.ErrCodeDirUnreadable, de.Code)
			assert.NotEmpty(t, de.Path)
		})
	}
}

func TestLoadEffective_ReportPath(t *testing.T) {
	cwd := t.TempDir()

	tests := []struct {
		name    string
		report  string
		want    string
		wantErr bool
	}{
		{"none", "", "", false},
		{"stdout", "-", ReportStdout, false},
		{"relative file", "out/report.json", filepath.Join(cwd, "out", "report.json"), false},
		{"dir itself", ".", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eff, err := LoadEffective(cwd, CLIArgs{Dir: ".", Report: tt.report, NoProgress: true})
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, ErrCodeInvalid, domain.Code(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, eff.ReportPath)
			assert.False(t, eff.Progress)
		})
	}
}

func TestAbsCleanFrom(t *testing.T) {
	assert.Equal(t, "/abs/x", absCleanFrom("/base", "/abs/x/"))
	assert.Equal(t, "/base/rel", absCleanFrom("/base", " rel "))
	assert.Equal(t, "/base", absCleanFrom("/base", "."))
}
