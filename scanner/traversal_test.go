package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestStackWalkerVisitsFilesInLexicalOrder(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "a"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{"c.txt", "b.txt", filepath.Join("a", "y.txt"), filepath.Join("a", "x.txt")} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("data"), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	var visited []string
	err := stackWalker{}.Walk(context.Background(), dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			t.Fatalf("walk error at %s: %v", path, err)
		}
		if !d.IsDir() {
			rel, _ := filepath.Rel(dir, path)
			visited = append(visited, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}

	want := []string{"a/x.txt", "a/y.txt", "b.txt", "c.txt"}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited %v, want %v", visited, want)
		}
	}
}

func TestStackWalkerSkipDir(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "skipme")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(sub, "inner.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "outer.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var files []string
	err := stackWalker{}.Walk(context.Background(), dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() && filepath.Base(path) == "skipme" {
			return fs.SkipDir
		}
		if !d.IsDir() {
			files = append(files, filepath.Base(path))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if len(files) != 1 || files[0] != "outer.txt" {
		t.Fatalf("expected only outer.txt, got %v", files)
	}
}

func TestStackWalkerCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := stackWalker{}.Walk(ctx, t.TempDir(), func(path string, d fs.DirEntry, err error) error {
		return nil
	})
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestStackWalkerMissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent")
	var gotErr error
	err := stackWalker{}.Walk(context.Background(), missing, func(path string, d fs.DirEntry, err error) error {
		gotErr = err
		return nil
	})
	if err != nil {
		t.Fatalf("walk should surface the error through the callback, got %v", err)
	}
	if gotErr == nil {
		t.Fatal("callback should have received the stat error")
	}
}
