package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validManifest = `{
	"uniqueName": "clubby789.OWClock",
	"name": "OW Clock",
	"author": "clubby789",
	"version": "1.1.2",
	"owmlVersion": "2.9.0",
	"filename": "OWClock.dll"
}`

func TestValidateAcceptsWellFormedManifest(t *testing.T) {
	t.Parallel()

	if err := Validate([]byte(validManifest)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsMissingFields(t *testing.T) {
	t.Parallel()

	err := Validate([]byte(`{"name": "OW Clock"}`))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "uniqueName") {
		t.Fatalf("error should name the missing field: %v", err)
	}
}

func TestValidateRejectsBadJSON(t *testing.T) {
	t.Parallel()

	if err := Validate([]byte(`{not json`)); err == nil {
		t.Fatal("expected JSON parse error")
	}
}

func TestValidateFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(validManifest), 0644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	if err := ValidateFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ValidateFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
