package hasher

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	hashBufferSmallSize      = 32 * 1024
	hashBufferLargeSize      = 128 * 1024
	hashLargeBufferThreshold = 256 * 1024
)

var hashBufferSmallPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, hashBufferSmallSize)
		return &buf
	},
}

var hashBufferLargePool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, hashBufferLargeSize)
		return &buf
	},
}

// SumFile streams the file at path through the named algorithm in fixed-size
// chunks and returns the digest as lowercase hex. Memory use is bounded by the
// read buffer regardless of file size.
func SumFile(ctx context.Context, path string, algorithm string) (string, error) {
	alg, ok := Lookup(algorithm)
	if !ok {
		return "", fmt.Errorf("unknown digest algorithm: %s", algorithm)
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	bufferPool := &hashBufferSmallPool
	if info, statErr := file.Stat(); statErr == nil && info.Size() >= hashLargeBufferThreshold {
		bufferPool = &hashBufferLargePool
	}
	bufferPtr := bufferPool.Get().(*[]byte)
	defer bufferPool.Put(bufferPtr)
	buffer := *bufferPtr

	digest := alg.New()
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		n, readErr := file.Read(buffer)
		if n > 0 {
			digest.Write(buffer[:n])
		}
		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			return "", fmt.Errorf("read %s: %w", path, readErr)
		}
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}
