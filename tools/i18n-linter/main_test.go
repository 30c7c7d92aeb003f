package main

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestFlattenYAMLAndLoadKeys(t *testing.T) {
	m := map[string]interface{}{
		"TASK_DOES_NOT_EXIST": "Task does not exist.",
		"nested": map[string]interface{}{
			"sub": "value",
			"arr": []interface{}{"one", "two"},
		},
	}
	keys := make(map[string]struct{})
	flattenYAML("", m, keys)
	for _, want := range []string{"TASK_DOES_NOT_EXIST", "nested.sub", "nested.arr[1]"} {
		if _, ok := keys[want]; !ok {
			t.Fatalf("expected %s in keys, got %v", want, keys)
		}
	}

	p := filepath.Join(t.TempDir(), "en.yaml")
	data, _ := yaml.Marshal(m)
	if err := os.WriteFile(p, data, 0600); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	got, err := loadKeysFromLocale(p)
	if err != nil {
		t.Fatalf("loadKeysFromLocale failed: %v", err)
	}
	if _, ok := got["TASK_DOES_NOT_EXIST"]; !ok {
		t.Fatalf("expected loaded key TASK_DOES_NOT_EXIST")
	}
}

func TestFindDeclaredKeys(t *testing.T) {
	dir := t.TempDir()
	src := `package foo

const (
	CodeTaskMissing Code = "TASK_DOES_NOT_EXIST"
	MsgDone         Message = "TASK_WAS_DONE"
	other                   = "NOT_A_KEY"
)

var label = "Visible text"
`
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "a.go"), []byte(src), 0644); err != nil {
		t.Fatalf("write go: %v", err)
	}
	testSrc := `package foo
const CodeOnlyInTests Code = "TEST_ONLY"
`
	if err := os.WriteFile(filepath.Join(dir, "sub", "a_test.go"), []byte(testSrc), 0644); err != nil {
		t.Fatalf("write test go: %v", err)
	}

	declared, err := findDeclaredKeys(dir)
	if err != nil {
		t.Fatalf("findDeclaredKeys failed: %v", err)
	}
	if len(declared) != 2 {
		t.Fatalf("expected 2 declared keys, got %v", declared)
	}
	if loc := declared["TASK_DOES_NOT_EXIST"]; loc.Line != 4 {
		t.Fatalf("expected TASK_DOES_NOT_EXIST on line 4, got %+v", loc)
	}
	if _, ok := declared["TEST_ONLY"]; ok {
		t.Fatal("test files must be skipped")
	}
}

func TestMissingFrom(t *testing.T) {
	have := map[string]struct{}{"A": {}, "B": {}}
	want := map[string]Location{"B": {}, "D": {}, "C": {}}
	got := missingFrom(have, want)
	if len(got) != 2 || got[0] != "C" || got[1] != "D" {
		t.Fatalf("unexpected missing keys %v", got)
	}
}

func TestRepositoryLocalesAreConsistent(t *testing.T) {
	root := filepath.Join("..", "..")
	declared, err := findDeclaredKeys(root)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	primary, err := loadKeysFromLocale(filepath.Join(root, localesDir, primaryLocale))
	if err != nil {
		t.Fatalf("load primary: %v", err)
	}
	if missing := missingFrom(primary, declared); len(missing) > 0 {
		t.Fatalf("declared keys without translation: %v", missing)
	}
	files, _ := filepath.Glob(filepath.Join(root, localesDir, "*.yaml"))
	for _, f := range files {
		keys, err := loadKeysFromLocale(f)
		if err != nil {
			t.Fatalf("load %s: %v", f, err)
		}
		if missing := missingFrom(keys, primary); len(missing) > 0 {
			t.Errorf("%s is missing %v", f, missing)
		}
	}
}
