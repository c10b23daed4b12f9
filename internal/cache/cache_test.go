package cache

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestCache(t *testing.T, maxSize int64) (*Cache, string) {
	t.Helper()
	dir := t.TempDir()
	c, err := New(Config{Dir: dir, MaxSize: maxSize})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c, dir
}

func TestCache_GetPut(t *testing.T) {
	c, _ := newTestCache(t, 0)

	if _, ok := c.Get("missing"); ok {
		t.Error("expected a miss for an unknown key")
	}

	data := []byte("\x00asm wasm bytes")
	if err := c.Put("k1", data); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	got, ok := c.Get("k1")
	if !ok || !bytes.Equal(got, data) {
		t.Errorf("Get() = %q, %v", got, ok)
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.Entries != 1 || s.TotalSize != int64(len(data)) {
		t.Errorf("unexpected stats %+v", s)
	}
}

func TestCache_Overwrite(t *testing.T) {
	c, _ := newTestCache(t, 0)
	c.Put("k", []byte("old"))
	c.Put("k", []byte("newer"))

	got, _ := c.Get("k")
	if string(got) != "newer" {
		t.Errorf("Get() = %q", got)
	}
	if s := c.Stats(); s.TotalSize != 5 || s.Entries != 1 {
		t.Errorf("unexpected stats %+v", s)
	}
}

func TestCache_EvictionLRU(t *testing.T) {
	c, _ := newTestCache(t, 10)

	c.Put("a", []byte("aaaa"))
	time.Sleep(2 * time.Millisecond)
	c.Put("b", []byte("bbbb"))
	time.Sleep(2 * time.Millisecond)
	c.Get("a") // a is now more recent than b
	time.Sleep(2 * time.Millisecond)
	c.Put("c", []byte("cccc"))

	if _, ok := c.Get("b"); ok {
		t.Error("least recently used entry should be evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("recently used entry should survive")
	}
	if c.Stats().Evictions != 1 {
		t.Errorf("Evictions = %d", c.Stats().Evictions)
	}
}

func TestCache_Expiration(t *testing.T) {
	dir := t.TempDir()
	c, err := New(Config{Dir: dir, MaxAge: time.Millisecond})
	if err != nil {
		t.Fatal(err)
	}
	c.Put("k", []byte("x"))
	time.Sleep(5 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Error("expired entry should miss")
	}
}

func TestCache_MissingArtifactFile(t *testing.T) {
	c, dir := newTestCache(t, 0)
	c.Put("k", []byte("x"))
	os.RemoveAll(filepath.Join(dir, "artifacts"))

	if _, ok := c.Get("k"); ok {
		t.Error("entry with a missing file should miss")
	}
	if c.Stats().Entries != 0 {
		t.Error("broken entry should be dropped")
	}
}

func TestCache_Persistence(t *testing.T) {
	dir := t.TempDir()
	c1, _ := New(Config{Dir: dir})
	c1.Put("k", []byte("persisted"))

	c2, err := New(Config{Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	got, ok := c2.Get("k")
	if !ok || string(got) != "persisted" {
		t.Errorf("reopened cache Get() = %q, %v", got, ok)
	}
}

func TestCache_CorruptIndex(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "index.json"), []byte("{not json"), 0644)

	c, err := New(Config{Dir: dir})
	if err != nil {
		t.Fatalf("corrupt index should not fail New: %v", err)
	}
	if c.Stats().Entries != 0 {
		t.Error("expected an empty cache")
	}
}

func TestCache_DeleteAndClear(t *testing.T) {
	c, _ := newTestCache(t, 0)
	c.Put("a", []byte("1"))
	c.Put("b", []byte("2"))

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("deleted entry still present")
	}
	c.Clear()
	if _, ok := c.Get("b"); ok {
		t.Error("cleared entry still present")
	}
}

func TestKey(t *testing.T) {
	if Key("ab", "c") == Key("a", "bc") {
		t.Error("input boundaries should affect the key")
	}
	if Key("x") != Key("x") {
		t.Error("Key should be deterministic")
	}
}

func TestKeyFromDir(t *testing.T) {
	root := t.TempDir()
	write := func(rel, content string) {
		path := filepath.Join(root, rel)
		os.MkdirAll(filepath.Dir(path), 0755)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("go.mod", "module example\n")
	write("main.go", "package main\n")
	write("pkg/a.go", "package pkg\n")

	base, err := KeyFromDir(root, "go1.23")
	if err != nil {
		t.Fatalf("KeyFromDir() error = %v", err)
	}

	tests := []struct {
		name   string
		change func()
		same   bool
	}{
		{"test file", func() { write("pkg/a_test.go", "package pkg\n") }, true},
		{"ignored dir", func() { write("_examples/x.go", "package x\n") }, true},
		{"hidden dir", func() { write(".git/hooks.go", "package x\n") }, true},
		{"readme", func() { write("README.md", "hi") }, true},
		{"source edit", func() { write("pkg/a.go", "package pkg\n\nvar X = 1\n") }, false},
	}
	for _, tt := range tests {
		tt.change()
		got, err := KeyFromDir(root, "go1.23")
		if err != nil {
			t.Fatal(err)
		}
		if (got == base) != tt.same {
			t.Errorf("%s: key changed = %v, want %v", tt.name, got != base, !tt.same)
		}
		base = got
	}

	other, _ := KeyFromDir(root, "go1.24")
	if other == base {
		t.Error("extra inputs should change the key")
	}
}
