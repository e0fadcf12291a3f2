// Package encoding packs turbo streams into URL-safe tokens.
//
// A token carries one tag.Stream as msgpack, either signed (HMAC-SHA256,
// readable but tamper-proof) or encrypted (AES-256-GCM, opaque). Tokens let a
// server hand the client a stream to fetch later without keeping state.
package encoding

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/pthm/turbo/lib/tag"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	ErrInvalidFormat    = errors.New("turbo: invalid stream token format")
	ErrSignatureInvalid = errors.New("turbo: stream token signature verification failed")
	ErrDecryptFailed    = errors.New("turbo: stream token decryption failed")
)

// Encoder encodes and decodes stream tokens. It is safe for concurrent use.
type Encoder struct {
	key []byte
	gcm cipher.AEAD
}

// NewEncoder creates a new encoder with the given key.
// Keys shorter than 32 bytes are stretched with SHA-256.
func NewEncoder(key []byte) (*Encoder, error) {
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}

	block, err := aes.NewCipher(key[:32])
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Encoder{
		key: key,
		gcm: gcm,
	}, nil
}

// wireStream is the msgpack shape of a tag.Stream.
type wireStream struct {
	Action     string            `msgpack:"a"`
	Scope      uint8             `msgpack:"s"`
	Target     string            `msgpack:"t,omitempty"`
	Attributes map[string]string `msgpack:"at,omitempty"`
	Content    string            `msgpack:"c,omitempty"`
}

// Encode serializes a stream into a token.
// If sensitive is true, the token is encrypted; otherwise it is signed.
func (e *Encoder) Encode(s tag.Stream, sensitive bool) (string, error) {
	w := wireStream{
		Action:  s.Action,
		Scope:   uint8(s.Scope),
		Target:  s.Target,
		Content: s.Content,
	}
	if s.Attributes.Len() > 0 {
		w.Attributes = s.Attributes.Map()
	}

	packed, err := msgpack.Marshal(&w)
	if err != nil {
		return "", fmt.Errorf("pack stream: %w", err)
	}

	if sensitive {
		return e.encrypt(packed)
	}
	return e.sign(packed), nil
}

// Decode verifies (or decrypts) a token and returns the stream it carries.
func (e *Encoder) Decode(encoded string, sensitive bool) (tag.Stream, error) {
	var packed []byte
	var err error

	if sensitive {
		packed, err = e.decrypt(encoded)
	} else {
		packed, err = e.verify(encoded)
	}
	if err != nil {
		return tag.Stream{}, err
	}

	var w wireStream
	if err := msgpack.Unmarshal(packed, &w); err != nil {
		return tag.Stream{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if w.Scope > uint8(tag.ScopeTargets) {
		return tag.Stream{}, fmt.Errorf("%w: unknown scope %d", ErrInvalidFormat, w.Scope)
	}

	return tag.Stream{
		Action:     w.Action,
		Scope:      tag.Scope(w.Scope),
		Target:     w.Target,
		Attributes: tag.AttributesFrom(w.Attributes),
		Content:    w.Content,
	}, nil
}

// sign creates a signed (but visible) encoding: base64.signature
func (e *Encoder) sign(data []byte) string {
	b64 := base64.RawURLEncoding.EncodeToString(data)
	mac := hmac.New(sha256.New, e.key)
	mac.Write(data)
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil)[:16]) // 16 bytes = 128 bits
	return b64 + "." + sig
}

// verify verifies and decodes a signed string
func (e *Encoder) verify(encoded string) ([]byte, error) {
	payload, signature, ok := strings.Cut(encoded, ".")
	if !ok {
		return nil, fmt.Errorf("%w: missing signature", ErrInvalidFormat)
	}

	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	sig, err := base64.RawURLEncoding.DecodeString(signature)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	mac := hmac.New(sha256.New, e.key)
	mac.Write(data)
	expected := mac.Sum(nil)[:16]

	if !hmac.Equal(sig, expected) {
		return nil, ErrSignatureInvalid
	}

	return data, nil
}

// encrypt creates an encrypted encoding using AES-256-GCM
func (e *Encoder) encrypt(data []byte) (string, error) {
	nonce := make([]byte, e.gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	ciphertext := e.gcm.Seal(nonce, nonce, data, nil)
	return base64.RawURLEncoding.EncodeToString(ciphertext), nil
}

// decrypt decodes and decrypts an encrypted string
func (e *Encoder) decrypt(encoded string) ([]byte, error) {
	ciphertext, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if len(ciphertext) < e.gcm.NonceSize() {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrDecryptFailed)
	}

	nonce := ciphertext[:e.gcm.NonceSize()]
	ciphertext = ciphertext[e.gcm.NonceSize():]

	plain, err := e.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptFailed, err)
	}
	return plain, nil
}
