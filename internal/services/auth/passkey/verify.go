package passkey

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"crypto/x509"
	"fmt"
	"strconv"

	"github.com/go-webauthn/webauthn/protocol/webauthncose"

	apperrors "github.com/fluxauth/flux/internal/platform/errors"
)

// ErrVerification is the single opaque failure returned for any decode or
// signature problem during assertion verification. Collapsing the causes
// avoids giving callers an oracle for which step failed.
var ErrVerification = apperrors.New(apperrors.CodeSignatureVerificationFailed, "assertion verification failed")

// Verifier checks one signature algorithm. message is the exact byte string
// the authenticator signed; publicKey is the stored SPKI-encoded key.
type Verifier interface {
	Verify(message, signature, publicKey []byte) error
}

// AlgorithmRegistry maps COSE algorithm identifiers to their verifier.
type AlgorithmRegistry map[webauthncose.COSEAlgorithmIdentifier]Verifier

// DefaultRegistry returns the supported verification algorithms. ES256 is the
// mandatory case; registration advertises more, and completing a login with a
// credential registered under an unregistered algorithm fails with a
// dedicated error rather than a panic.
func DefaultRegistry() AlgorithmRegistry {
	return AlgorithmRegistry{
		webauthncose.AlgES256: ES256Verifier{},
	}
}

// VerifyAssertion checks a login signature: the authenticator signed
// authenticatorData || SHA-256(clientDataJSON).
func (r AlgorithmRegistry) VerifyAssertion(authenticatorData, clientDataJSON, signature, publicKey []byte, algorithm int64) error {
	verifier, ok := r[webauthncose.COSEAlgorithmIdentifier(algorithm)]
	if !ok {
		return apperrors.WithMetadata(apperrors.CodeUnsupportedAlgorithm, "no verifier for credential algorithm", map[string]string{
			"algorithm": strconv.FormatInt(algorithm, 10),
		})
	}

	clientDataHash := sha256.Sum256(clientDataJSON)
	message := make([]byte, 0, len(authenticatorData)+len(clientDataHash))
	message = append(message, authenticatorData...)
	message = append(message, clientDataHash[:]...)

	if err := verifier.Verify(message, signature, publicKey); err != nil {
		return ErrVerification
	}
	return nil
}

// ES256Verifier verifies ECDSA P-256 signatures over SHA-256 digests with
// ASN.1/DER signature encoding.
type ES256Verifier struct{}

// Verify implements Verifier.
func (ES256Verifier) Verify(message, signature, publicKey []byte) error {
	parsed, err := x509.ParsePKIXPublicKey(publicKey)
	if err != nil {
		return fmt.Errorf("parse public key: %w", err)
	}
	ecdsaKey, ok := parsed.(*ecdsa.PublicKey)
	if !ok {
		return fmt.Errorf("public key is not ECDSA")
	}

	digest := sha256.Sum256(message)
	if !ecdsa.VerifyASN1(ecdsaKey, digest[:], signature) {
		return fmt.Errorf("signature mismatch")
	}
	return nil
}
