package osutil

import (
	"errors"
	"os"
	"testing"
)

// MockPathProvider is a mock implementation for testing.
type MockPathProvider struct {
	UserConfigDirFn func() (string, error)
	MkdirAllFn      func(path string, perm os.FileMode) error
}

func (m *MockPathProvider) UserConfigDir() (string, error) {
	if m.UserConfigDirFn != nil {
		return m.UserConfigDirFn()
	}
	return "", nil
}

func (m *MockPathProvider) MkdirAll(path string, perm os.FileMode) error {
	if m.MkdirAllFn != nil {
		return m.MkdirAllFn(path, perm)
	}
	return nil
}

func TestDefaultPathProvider_UserConfigDir(t *testing.T) {
	p := DefaultPathProvider{}
	dir, err := p.UserConfigDir()
	if err != nil {
		t.Fatalf("UserConfigDir returned error: %v", err)
	}
	if dir == "" {
		t.Error("UserConfigDir returned empty string")
	}
}

func TestDefaultPathProvider_MkdirAll(t *testing.T) {
	p := DefaultPathProvider{}
	tmpDir := t.TempDir()
	testDir := tmpDir + "/test/nested/dir"

	err := p.MkdirAll(testDir, 0755)
	if err != nil {
		t.Fatalf("MkdirAll returned error: %v", err)
	}

	info, err := os.Stat(testDir)
	if err != nil {
		t.Fatalf("Failed to stat created directory: %v", err)
	}
	if !info.IsDir() {
		t.Error("MkdirAll did not create a directory")
	}
}

func TestSetProvider(t *testing.T) {
	defer ResetProvider()

	wantErr := errors.New("mock error")
	SetProvider(&MockPathProvider{
		UserConfigDirFn: func() (string, error) {
			return "", wantErr
		},
	})

	_, err := Provider.UserConfigDir()
	if !errors.Is(err, wantErr) {
		t.Errorf("Provider.UserConfigDir() error = %v, expected %v", err, wantErr)
	}
}

func TestResetProvider(t *testing.T) {
	SetProvider(&MockPathProvider{})
	ResetProvider()

	if _, ok := Provider.(DefaultPathProvider); !ok {
		t.Errorf("ResetProvider() left Provider as %T, expected DefaultPathProvider", Provider)
	}
}
