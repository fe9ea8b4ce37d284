package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bianoble/transform-results/internal/result"
)

// withFlags points the global flags at a fresh temp layout and restores them
// afterwards.
func withFlags(t *testing.T) (root, manifest string) {
	t.Helper()
	dir := t.TempDir()
	root = filepath.Join(dir, "transformed")
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatal(err)
	}
	manifest = filepath.Join(dir, "results.bin")

	oldConfig, oldRoot, oldManifest, oldWS, oldInput, oldQuiet := configPath, outputRoot, manifestPath, workspaceDir, inputArtifact, quiet
	t.Cleanup(func() {
		configPath, outputRoot, manifestPath, workspaceDir, inputArtifact, quiet = oldConfig, oldRoot, oldManifest, oldWS, oldInput, oldQuiet
	})

	configPath = filepath.Join(dir, "absent.yaml")
	outputRoot = root
	manifestPath = manifest
	workspaceDir = ""
	inputArtifact = ""
	quiet = true
	return root, manifest
}

func TestRecordWritesManifest(t *testing.T) {
	_, manifest := withFlags(t)

	args := []string{"output:classes/Foo.bin", "input", "output", "input:src/Foo.txt"}
	if err := recordCmd.RunE(recordCmd, args); err != nil {
		t.Fatalf("record: %v", err)
	}

	data, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatal(err)
	}
	want := "o/classes/Foo.bin\ni/\no/\ni/src/Foo.txt\n"
	if string(data) != want {
		t.Errorf("manifest = %q, want %q", string(data), want)
	}

	if err := checkCmd.RunE(checkCmd, nil); err != nil {
		t.Errorf("check after record: %v", err)
	}
}

func TestRecordRejectsOutputOutsideRoot(t *testing.T) {
	root, manifest := withFlags(t)

	err := recordCmd.RunE(recordCmd, []string{"output:" + filepath.Join(filepath.Dir(root), "elsewhere")})
	if err == nil {
		t.Fatal("expected containment error")
	}
	if !strings.Contains(err.Error(), "outside the output root") {
		t.Errorf("unexpected error: %v", err)
	}
	if _, statErr := os.Stat(manifest); !os.IsNotExist(statErr) {
		t.Error("no manifest should be written on failure")
	}
}

func TestCheckCorruptManifest(t *testing.T) {
	_, manifest := withFlags(t)
	if err := os.WriteFile(manifest, []byte("i/\nx/bogus\n"), 0644); err != nil {
		t.Fatal(err)
	}

	err := checkCmd.RunE(checkCmd, nil)
	if err == nil {
		t.Fatal("expected check failure")
	}
	if !strings.Contains(err.Error(), "corrupt") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCheckMissingManifest(t *testing.T) {
	withFlags(t)
	if err := checkCmd.RunE(checkCmd, nil); err == nil {
		t.Fatal("expected check failure for missing manifest")
	}
}

func TestResolveRequiresInputArtifact(t *testing.T) {
	_, manifest := withFlags(t)
	if err := os.WriteFile(manifest, []byte("i/\n"), 0644); err != nil {
		t.Fatal(err)
	}

	err := resolveCmd.RunE(resolveCmd, nil)
	if err == nil || !strings.Contains(err.Error(), "--input-artifact") {
		t.Fatalf("expected input artifact error, got: %v", err)
	}
}

func TestLoadSettingsFromWorkspace(t *testing.T) {
	withFlags(t)
	ws := filepath.Join(t.TempDir(), "ws")
	outputRoot = ""
	manifestPath = ""
	workspaceDir = ws

	s, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if s.OutputRoot != filepath.Join(ws, "transformed") {
		t.Errorf("output root = %q", s.OutputRoot)
	}
	if s.Manifest != filepath.Join(ws, "results.bin") {
		t.Errorf("manifest = %q", s.Manifest)
	}
}

func TestLoadSettingsFromConfigFile(t *testing.T) {
	withFlags(t)
	dir := t.TempDir()
	configPath = filepath.Join(dir, "transform-results.yaml")
	outputRoot = ""
	manifestPath = ""
	cfg := "version: 1\noutput_root: out\nmanifest: results.bin\n"
	if err := os.WriteFile(configPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if s.OutputRoot != filepath.Join(dir, "out") {
		t.Errorf("output root = %q", s.OutputRoot)
	}
	if s.Manifest != filepath.Join(dir, "results.bin") {
		t.Errorf("manifest = %q", s.Manifest)
	}
}

func TestLoadSettingsRequiresOutputRoot(t *testing.T) {
	withFlags(t)
	outputRoot = ""

	_, err := loadSettings()
	if err == nil || !strings.Contains(err.Error(), "no output root") {
		t.Fatalf("expected missing output root error, got: %v", err)
	}
}

func TestAddElement(t *testing.T) {
	root := t.TempDir()
	b := result.NewBuilder(root)

	for _, arg := range []string{"input", "input:a/b", "output", "output:x/y", "output:" + filepath.Join(root, "z")} {
		if err := addElement(b, root, arg); err != nil {
			t.Fatalf("addElement(%q): %v", arg, err)
		}
	}
	r, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	want := []result.Element{
		{Kind: result.InputWhole},
		{Kind: result.InputRelative, Path: "a/b"},
		{Kind: result.OutputRoot},
		{Kind: result.OutputRelative, Path: "x/y"},
		{Kind: result.OutputRelative, Path: "z"},
	}
	got := r.Elements()
	if len(got) != len(want) {
		t.Fatalf("got %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if err := addElement(b, root, "bogus:x"); err == nil {
		t.Error("expected error for unknown element kind")
	}
}

func TestLoadSettingsFallsBackToDefaultWorkspace(t *testing.T) {
	withFlags(t)
	outputRoot = ""
	manifestPath = ""
	cacheHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)

	s, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	ws := filepath.Join(cacheHome, "transform-results", defaultWorkspaceName)
	if s.OutputRoot != filepath.Join(ws, "transformed") {
		t.Errorf("output root = %q", s.OutputRoot)
	}
	if s.Manifest != filepath.Join(ws, "results.bin") {
		t.Errorf("manifest = %q", s.Manifest)
	}
	if _, err := os.Stat(s.OutputRoot); err != nil {
		t.Errorf("default workspace output root not created: %v", err)
	}
}
