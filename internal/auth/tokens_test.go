package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func testConfig() Config {
	return Config{
		SecretKey: []byte("test-secret"),
		Issuer:    "userdesk",
		TokenTTL:  time.Minute,
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec(testConfig())
	userID := uuid.New()

	token, err := codec.Issue(userID)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	decoded, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if decoded != userID {
		t.Errorf("expected subject %s, got %s", userID, decoded)
	}
}

func TestCodec_Expired(t *testing.T) {
	cfg := testConfig()
	cfg.TokenTTL = -time.Minute
	codec := NewCodec(cfg)

	token, err := codec.Issue(uuid.New())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := codec.Decode(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for expired token, got %v", err)
	}
}

func TestCodec_Malformed(t *testing.T) {
	codec := NewCodec(testConfig())

	if _, err := codec.Decode("garbage"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for malformed token, got %v", err)
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	codec := NewCodec(testConfig())

	otherCfg := testConfig()
	otherCfg.SecretKey = []byte("other-secret")
	other := NewCodec(otherCfg)

	token, err := other.Issue(uuid.New())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := codec.Decode(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for foreign signature, got %v", err)
	}
}

func TestCodec_NonUUIDSubject(t *testing.T) {
	cfg := testConfig()
	codec := NewCodec(cfg)

	claims := jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		Issuer:    cfg.Issuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.SecretKey)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := codec.Decode(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for non-UUID subject, got %v", err)
	}
}

// The error is uniform across failure modes so callers cannot probe
// validation internals.
func TestCodec_UniformDecodeError(t *testing.T) {
	cfg := testConfig()
	codec := NewCodec(cfg)

	expiredCfg := cfg
	expiredCfg.TokenTTL = -time.Minute
	expired, err := NewCodec(expiredCfg).Issue(uuid.New())
	if err != nil {
		t.Fatal(err)
	}

	_, expiredErr := codec.Decode(expired)
	_, malformedErr := codec.Decode("garbage")

	if expiredErr == nil || expiredErr.Error() != malformedErr.Error() {
		t.Errorf("expired and malformed tokens must yield the same error, got %v and %v", expiredErr, malformedErr)
	}
}
