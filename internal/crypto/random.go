package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/chacha20"
)

// RandomSource supplies the 32-bit values the generator draws words,
// numbers and symbols from.
type RandomSource interface {
	Uint32() (uint32, error)
}

// ReaderSource draws values from an io.Reader.
type ReaderSource struct {
	r io.Reader
}

// NewSystemSource returns a source backed by crypto/rand. It performs one
// probe read so an unusable system generator is reported up front.
func NewSystemSource() (*ReaderSource, error) {
	s := NewReaderSource(rand.Reader)
	if _, err := s.Uint32(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewReaderSource returns a source reading from r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r}
}

// Uint32 reads four bytes from the underlying reader.
func (s *ReaderSource) Uint32() (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(s.r, b[:]); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRandomSourceUnavailable, err)
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// SeededSource is a deterministic ChaCha20 keystream keyed by SHA-256 of a
// seed. Identical seeds yield identical sequences. Never use it for real
// passphrases.
type SeededSource struct {
	mu     sync.Mutex
	stream *chacha20.Cipher
}

// NewSeededSource returns a deterministic source for seed.
func NewSeededSource(seed []byte) *SeededSource {
	key := sha256.Sum256(seed)
	nonce := make([]byte, chacha20.NonceSize)

	stream, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		// Key and nonce sizes are fixed above.
		panic(err)
	}
	return &SeededSource{stream: stream}
}

// Uint32 returns the next four keystream bytes as a little-endian value.
func (s *SeededSource) Uint32() (uint32, error) {
	var b [4]byte

	s.mu.Lock()
	s.stream.XORKeyStream(b[:], b[:])
	s.mu.Unlock()

	return binary.LittleEndian.Uint32(b[:]), nil
}
