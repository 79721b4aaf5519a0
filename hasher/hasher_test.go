package hasher

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestSumFileKnownVectors(t *testing.T) {
	path := writeFile(t, t.TempDir(), "hello.txt", []byte("hello world"))
	ctx := context.Background()

	cases := []struct {
		algorithm string
		want      string
	}{
		{"md5", "5eb63bbbe01eeed093cb22bb8f5acdc3"},
		{"sha1", "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed"},
		{"sha256", "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"},
	}
	for _, tc := range cases {
		got, err := SumFile(ctx, path, tc.algorithm)
		if err != nil {
			t.Fatalf("%s: %v", tc.algorithm, err)
		}
		if got != tc.want {
			t.Errorf("%s mismatch: %s", tc.algorithm, got)
		}
	}
}

func TestSumFileDigestProperties(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.bin", []byte("identical payload"))
	b := writeFile(t, dir, "b.bin", []byte("identical payload"))
	c := writeFile(t, dir, "c.bin", []byte("different payload"))
	ctx := context.Background()

	hexLengths := map[string]int{
		"md5":    32,
		"sha1":   40,
		"sha256": 64,
		"xxh64":  16,
		"blake3": 64,
	}
	for _, algorithm := range Available() {
		sumA, err := SumFile(ctx, a, algorithm)
		if err != nil {
			t.Fatalf("%s: %v", algorithm, err)
		}
		sumB, err := SumFile(ctx, b, algorithm)
		if err != nil {
			t.Fatalf("%s: %v", algorithm, err)
		}
		sumC, err := SumFile(ctx, c, algorithm)
		if err != nil {
			t.Fatalf("%s: %v", algorithm, err)
		}
		if want := hexLengths[algorithm]; len(sumA) != want {
			t.Errorf("%s digest length: got %d, want %d", algorithm, len(sumA), want)
		}
		if sumA != sumB {
			t.Errorf("%s: identical content produced different digests", algorithm)
		}
		if sumA == sumC {
			t.Errorf("%s: different content produced identical digests", algorithm)
		}
		if _, err := hex.DecodeString(sumA); err != nil {
			t.Errorf("%s digest is not hex: %s", algorithm, sumA)
		}
		if sumA != strings.ToLower(sumA) {
			t.Errorf("%s digest is not lowercase: %s", algorithm, sumA)
		}
	}
}

func TestSumFileLargeFileMatchesOneShot(t *testing.T) {
	data := make([]byte, 300*1024)
	for i := range data {
		data[i] = byte(i % 251)
	}
	path := writeFile(t, t.TempDir(), "large.bin", data)

	got, err := SumFile(context.Background(), path, "sha256")
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	want := sha256.Sum256(data)
	if got != hex.EncodeToString(want[:]) {
		t.Errorf("chunked digest diverged from one-shot digest: %s", got)
	}
}

func TestSumFileUnknownAlgorithm(t *testing.T) {
	path := writeFile(t, t.TempDir(), "x.txt", []byte("x"))
	if _, err := SumFile(context.Background(), path, "crc32"); err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
}

func TestSumFileMissingFile(t *testing.T) {
	if _, err := SumFile(context.Background(), filepath.Join(t.TempDir(), "absent"), "md5"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSumFileCanceledContext(t *testing.T) {
	path := writeFile(t, t.TempDir(), "x.txt", []byte("x"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := SumFile(ctx, path, "md5"); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestRegistry(t *testing.T) {
	names := Available()
	want := []string{"blake3", "md5", "sha1", "sha256", "xxh64"}
	if len(names) != len(want) {
		t.Fatalf("unexpected algorithms: %v", names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
	if _, ok := Lookup("BLAKE3"); !ok {
		t.Fatal("lookup should be case-insensitive")
	}
	if _, ok := Lookup("nope"); ok {
		t.Fatal("lookup returned unregistered algorithm")
	}
}
