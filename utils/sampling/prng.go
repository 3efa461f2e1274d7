package sampling

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// KeySize is the size in bytes of the keys derived by [NewSeededPRNG].
const KeySize = 32

// PRNG is an interface for secure generation of random bytes.
// Every randomized operation of the scheme takes its PRNG explicitly.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG reads from the operating system's cryptographically
// secure random number generator.
type ThreadSafePRNG struct {
}

// NewPRNG returns a new PRNG backed by crypto/rand. It is safe for concurrent use.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

// Read fills sum with random bytes.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG is a structure storing the parameters used to securely and *deterministically* generate
// sequences of random bytes using the hash function blake2b. Backward sequence security (given the
// digest i, compute the digest i-1) is ensured by default, however forward sequence security (given
// the digest i, compute the digest i+1) is only ensured if the KeyedPRNG is keyed.
// WARNING: KeyedPRNG should NOT be shared between goroutines: the resulting sequence would not be
// deterministic for a given key.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// Accepts an optional key of at most 64 bytes, else set key=nil which is treated as key=[]byte{}.
// WARNING: A PRNG INITIALISED WITH key=nil IS INSECURE!
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = make([]byte, len(key))
	copy(prng.key, key)
	if prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key); err != nil {
		return nil, fmt.Errorf("cannot NewKeyedPRNG: %w", err)
	}
	return prng, nil
}

// NewSeededPRNG creates a new [KeyedPRNG] from a seed of arbitrary length.
// The seed is compressed with blake3 into a [KeySize]-byte key.
func NewSeededPRNG(seed []byte) (*KeyedPRNG, error) {
	key := blake3.Sum256(seed)
	return NewKeyedPRNG(key[:])
}

// Key returns a copy of the key used to seed the PRNG.
// This value can be used with [NewKeyedPRNG] to instantiate
// a new PRNG that will produce the same stream of bytes.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}
