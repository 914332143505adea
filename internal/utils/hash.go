package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"

	"github.com/MKhiriev/go-qr-forge/models"
	"golang.org/x/crypto/blake2b"
)

// Hasher computes HMAC-SHA256 signatures with a fixed key. Hash instances
// are pooled to keep the request path allocation-free.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with hashKey.
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Sum returns the HMAC-SHA256 of data.
func (h *Hasher) Sum(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// SumHex returns the hex-encoded HMAC-SHA256 of data.
func (h *Hasher) SumHex(data []byte) string {
	return hex.EncodeToString(h.Sum(data))
}

// Equal reports whether hexSum is the signature of data, in constant time.
func (h *Hasher) Equal(data []byte, hexSum string) bool {
	got, err := hex.DecodeString(hexSum)
	if err != nil {
		return false
	}
	return hmac.Equal(got, h.Sum(data))
}

// HashString is a one-off HMAC-SHA256 of data returned as hex.
func HashString(data string, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// Fingerprint identifies an encoded payload of a given type. Two history
// entries with the same fingerprint are the same QR code.
func Fingerprint(t models.QRDataType, encoded string) string {
	sum := blake2b.Sum256([]byte(string(t) + "\x00" + encoded))
	return hex.EncodeToString(sum[:])
}

// RenderKey derives a cache key from an encoded payload, its render options
// and the output format.
func RenderKey(encoded string, opts models.RenderOptions, format models.ExportFormat) string {
	h, _ := blake2b.New256(nil)
	for _, part := range []string{
		encoded,
		string(format),
		string(opts.CorrectLevel),
		opts.ColorDark,
		opts.ColorLight,
		opts.Label,
		opts.Sublabel,
	} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	var size [8]byte
	for i := range size {
		size[i] = byte(opts.Size >> (8 * i))
	}
	h.Write(size[:])

	return hex.EncodeToString(h.Sum(nil))
}
