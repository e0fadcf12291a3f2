package encoding

import (
	"errors"
	"strings"
	"testing"

	"github.com/pthm/turbo/lib/tag"
)

func testStream() tag.Stream {
	return tag.Stream{
		Action:     "set_attribute",
		Scope:      tag.ScopeTargets,
		Target:     "#element",
		Attributes: tag.NewAttributes("attribute", "data-state", "value", `"open" & <ready>`),
		Content:    "<p>ignored</p>",
	}
}

func TestNewEncoder(t *testing.T) {
	// Should work with any key length (derives 32-byte key)
	keys := [][]byte{
		[]byte("short"),
		[]byte("this-is-a-32-byte-key-for-aes!!!"),
		[]byte(strings.Repeat("k", 64)),
	}
	for _, key := range keys {
		if _, err := NewEncoder(key); err != nil {
			t.Fatalf("NewEncoder with %d-byte key failed: %v", len(key), err)
		}
	}
}

func TestSignedRoundTrip(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	original := testStream()

	encoded, err := enc.Encode(original, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if !strings.Contains(encoded, ".") {
		t.Fatalf("signed token %q has no signature separator", encoded)
	}

	decoded, err := enc.Decode(encoded, false)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if decoded.String() != original.String() {
		t.Errorf("decoded stream = %q, want %q", decoded.String(), original.String())
	}
}

func TestEncryptedRoundTrip(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	original := testStream()

	encoded, err := enc.Encode(original, true)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if strings.Contains(encoded, "data-state") {
		t.Error("encrypted token leaks attribute values")
	}

	// Two encryptions of the same stream must differ (random nonce)
	again, _ := enc.Encode(original, true)
	if again == encoded {
		t.Error("encrypted tokens should not repeat")
	}

	decoded, err := enc.Decode(encoded, true)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if decoded.String() != original.String() {
		t.Errorf("decoded stream = %q, want %q", decoded.String(), original.String())
	}
}

func TestRoundTripWithoutAttributes(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))
	original := tag.Stream{Action: "reload"}

	encoded, err := enc.Encode(original, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := enc.Decode(encoded, false)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.String() != original.String() {
		t.Errorf("decoded stream = %q, want %q", decoded.String(), original.String())
	}
}

func TestTamperedSignature(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))
	encoded, _ := enc.Encode(testStream(), false)

	other, _ := enc.Encode(tag.Stream{Action: "reload"}, false)
	payload, _, _ := strings.Cut(other, ".")
	_, sig, _ := strings.Cut(encoded, ".")

	_, err := enc.Decode(payload+"."+sig, false)
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Errorf("Decode(tampered) error = %v, want ErrSignatureInvalid", err)
	}
}

func TestWrongKey(t *testing.T) {
	enc1, _ := NewEncoder([]byte("key-one"))
	enc2, _ := NewEncoder([]byte("key-two"))

	signed, _ := enc1.Encode(testStream(), false)
	if _, err := enc2.Decode(signed, false); !errors.Is(err, ErrSignatureInvalid) {
		t.Errorf("signed with other key: error = %v, want ErrSignatureInvalid", err)
	}

	encrypted, _ := enc1.Encode(testStream(), true)
	if _, err := enc2.Decode(encrypted, true); !errors.Is(err, ErrDecryptFailed) {
		t.Errorf("encrypted with other key: error = %v, want ErrDecryptFailed", err)
	}
}

func TestInvalidFormat(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))

	tests := []struct {
		name      string
		encoded   string
		sensitive bool
		want      error
	}{
		{"missing signature", "abc", false, ErrInvalidFormat},
		{"bad base64 payload", "!!!.abc", false, ErrInvalidFormat},
		{"bad base64 signature", "YWJj.!!!", false, ErrInvalidFormat},
		{"bad base64 ciphertext", "!!!", true, ErrInvalidFormat},
		{"short ciphertext", "YWJj", true, ErrDecryptFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := enc.Decode(tt.encoded, tt.sensitive)
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode(%q) error = %v, want %v", tt.encoded, err, tt.want)
			}
		})
	}
}
