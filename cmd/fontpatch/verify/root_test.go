package verify

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SustemFox/mods/pkg/config"
	"github.com/SustemFox/mods/pkg/digest"
)

var fontBytes = []byte("pretend this is a ttf")

func setupPatchTree(t *testing.T, complete bool) {
	t.Helper()

	root := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(root); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})

	content := fmt.Sprintf(`
font_sha256 = %q
patch_dir = "patch"
mods = ["Some.Mod"]
`, digest.Sum(fontBytes))
	if err := os.WriteFile(filepath.Join(root, config.FileName), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	paths := []string{
		filepath.Join(root, "patch", "Fonts", "NotoSans-Regular.ttf"),
	}
	if complete {
		paths = append(paths, filepath.Join(root, "patch", "Mods", "Some.Mod", "Fonts", "NotoSans-Regular.ttf"))
	}
	for _, path := range paths {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, fontBytes, 0644); err != nil {
			t.Fatalf("write font: %v", err)
		}
	}
}

func TestVerifyAllUpToDate(t *testing.T) {
	setupPatchTree(t, true)

	cmd := GetCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(out.String(), "[up to date]"); got != 2 {
		t.Fatalf("expected 2 up-to-date lines, got %d in %q", got, out.String())
	}
}

func TestVerifyReportsMissingCopy(t *testing.T) {
	setupPatchTree(t, false)

	cmd := GetCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for missing copy")
	}
	if !strings.Contains(err.Error(), "1 of 2") {
		t.Fatalf("error should count the bad copies: %v", err)
	}
	if !strings.Contains(out.String(), "[missing]") {
		t.Fatalf("output should flag the missing copy: %q", out.String())
	}
}
