package hasher

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"hash"

	"github.com/cespare/xxhash/v2"
	"lukechampine.com/blake3"
)

type stdAlgorithm struct {
	name string
	ctor func() hash.Hash
}

func (a stdAlgorithm) Name() string {
	return a.name
}

func (a stdAlgorithm) New() hash.Hash {
	return a.ctor()
}

func init() {
	Register(stdAlgorithm{name: "md5", ctor: md5.New})
	Register(stdAlgorithm{name: "sha1", ctor: sha1.New})
	Register(stdAlgorithm{name: "sha256", ctor: sha256.New})
	Register(stdAlgorithm{name: "xxh64", ctor: func() hash.Hash { return xxhash.New() }})
	Register(stdAlgorithm{name: "blake3", ctor: func() hash.Hash { return blake3.New(32, nil) }})
}
