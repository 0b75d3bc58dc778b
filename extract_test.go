package locsync

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func quietLogger() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	return logger
}

func extractFrom(t *testing.T, cfg Config, root string) KeySet {
	t.Helper()
	if cfg.Logger == nil {
		cfg.Logger = quietLogger()
	}
	ext, err := NewExtractor(cfg)
	if err != nil {
		t.Fatal(err)
	}
	keys, err := ext.Extract(root)
	if err != nil {
		t.Fatal(err)
	}
	return keys
}

func TestExtract_keysOnSeparateLines(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"home.dart": "Text(translate('welcome_message')),\nTextButton(child: Text(translate('logout_btn'))),\n",
	})
	got := extractFrom(t, Config{}, dir).Sorted()
	want := []string{"logout_btn", "welcome_message"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_multipleMatchesPerLine(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"row.dart": "Row(children: [Text(translate('a')), Text(translate('b')), Text(translate('c'))])",
	})
	got := extractFrom(t, Config{}, dir).Sorted()
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_deduplicatesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.dart":             "translate('shared')\ntranslate('shared')",
		"nested/deep/b.dart": "translate('shared') translate('only_b')",
	})
	keys := extractFrom(t, Config{}, dir)
	if keys.Len() != 2 {
		t.Fatalf("expected 2 keys, got %v", keys.Sorted())
	}
	if !keys.Has("shared") || !keys.Has("only_b") {
		t.Errorf("unexpected keys %v", keys.Sorted())
	}
}

func TestExtract_filtersByExtension(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"main.dart":        "translate('kept')",
		"notes.txt":        "translate('ignored_txt')",
		"lib.dart.bak":     "translate('ignored_bak')",
		"gen/model.g.dart": "translate('generated')",
		"assets/en.json":   `{"translate('ignored_json')": ""}`,
	})
	got := extractFrom(t, Config{}, dir).Sorted()
	if diff := cmp.Diff([]string{"generated", "kept"}, got); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_emptyDirectory(t *testing.T) {
	keys := extractFrom(t, Config{}, t.TempDir())
	if keys.Len() != 0 {
		t.Errorf("expected no keys, got %v", keys.Sorted())
	}
}

func TestExtract_knownPatternLimitations(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"edge.dart": `translate('it\'s') translate("double") translate('') translate( 'spaced' ) translate('ok')`,
	})
	got := extractFrom(t, Config{}, dir).Sorted()
	if diff := cmp.Diff([]string{"ok"}, got); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_customPatternAndExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"app.tsx":  `<p>{t("nav.home")}</p> {t("nav.about")}`,
		"util.ts":  `const s = t("util.msg")`,
		"app.dart": `translate('dart_key')`,
	})
	cfg := Config{
		Extensions: StringList{".tsx", ".ts"},
		Pattern:    `\bt\("([^"]+)"\)`,
	}
	got := extractFrom(t, cfg, dir).Sorted()
	if diff := cmp.Diff([]string{"nav.about", "nav.home", "util.msg"}, got); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

type prefixMatcher struct{}

func (prefixMatcher) FindKeys(line string) []string {
	if len(line) > 4 && line[:4] == "KEY:" {
		return []string{line[4 : len(line)-1]}
	}
	return nil
}

func TestExtract_customMatcher(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"keys.dart": "KEY:first\nnoise\nKEY:second\n"})
	got := extractFrom(t, Config{Matcher: prefixMatcher{}}, dir).Sorted()
	if diff := cmp.Diff([]string{"first", "second"}, got); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_excludeDirs(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"lib/a.dart":            "translate('lib_key')",
		".dart_tool/cache.dart": "translate('tool_key')",
		"build/out/gen.dart":    "translate('build_key')",
	})
	got := extractFrom(t, Config{Exclude: StringList{".dart_tool", "build"}}, dir).Sorted()
	if diff := cmp.Diff([]string{"lib_key"}, got); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_rootMustBeDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.dart": "translate('x')"})
	ext, err := NewExtractor(Config{Logger: quietLogger()})
	if err != nil {
		t.Fatal(err)
	}

	_, err = ext.Extract(filepath.Join(dir, "a.dart"))
	if !IsKind(err, KindScan) {
		t.Errorf("file root: expected scan error, got %v", err)
	}
	_, err = ext.Extract(filepath.Join(dir, "missing"))
	if !IsKind(err, KindScan) {
		t.Errorf("missing root: expected scan error, got %v", err)
	}
	_, err = ext.Extract("")
	if !IsKind(err, KindConfig) {
		t.Errorf("empty root: expected config error, got %v", err)
	}
}

func TestExtract_invalidUTF8Aborts(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"good.dart": "translate('good')",
		"bad.dart":  "translate('bad')\n\xff\xfe broken\n",
	})
	ext, err := NewExtractor(Config{Logger: quietLogger()})
	if err != nil {
		t.Fatal(err)
	}
	_, err = ext.Extract(dir)
	if !IsKind(err, KindScan) {
		t.Fatalf("expected scan error, got %v", err)
	}
	var e *Error
	if !errors.As(err, &e) || e.Path() != filepath.Join(dir, "bad.dart") {
		t.Errorf("expected error for bad.dart, got %v", err)
	}
}

func TestExtract_skipUnreadable(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"good.dart": "translate('good')",
		"bad.dart":  "\xff\xfe translate('bad')",
	})
	logger, hook := test.NewNullLogger()
	got := extractFrom(t, Config{SkipUnreadable: true, Logger: logger}, dir).Sorted()
	if diff := cmp.Diff([]string{"good"}, got); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if len(hook.Entries) == 0 || hook.LastEntry().Level != logrus.WarnLevel {
		t.Errorf("expected a warning for the skipped file, got %v", hook.AllEntries())
	}
}

func TestExtract_unreadableFile(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("permission bits are not enforced")
	}
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"locked.dart": "translate('locked')"})
	if err := os.Chmod(filepath.Join(dir, "locked.dart"), 0o000); err != nil {
		t.Fatal(err)
	}
	ext, err := NewExtractor(Config{Logger: quietLogger()})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ext.Extract(dir); !IsKind(err, KindScan) {
		t.Errorf("expected scan error, got %v", err)
	}
}

func TestNewRegexpMatcher(t *testing.T) {
	if _, err := NewRegexpMatcher(`translate\(`); err == nil {
		t.Error("expected an error for a pattern without a capture group")
	}
	if _, err := NewRegexpMatcher(`translate\(('`); err == nil {
		t.Error("expected an error for an invalid pattern")
	}
	m, err := NewRegexpMatcher(DefaultPattern)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"x", "y"}, m.FindKeys("translate('x') + translate('y')")); diff != "" {
		t.Errorf("FindKeys mismatch (-want +got):\n%s", diff)
	}
}

func TestNewExtractor_invalidPattern(t *testing.T) {
	_, err := NewExtractor(Config{Pattern: `no groups`})
	if !IsKind(err, KindConfig) {
		t.Errorf("expected config error, got %v", err)
	}
}
