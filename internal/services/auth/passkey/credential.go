package passkey

import (
	"github.com/go-webauthn/webauthn/protocol"
)

// PublicKeyCredentialWithAttestation is the registration-completion payload:
// the credential id chosen by the authenticator plus the attestation response
// carrying the new public key.
type PublicKeyCredentialWithAttestation struct {
	ID       string                           `json:"id"       validate:"required"`
	Response AuthenticatorAttestationResponse `json:"response" validate:"required"`
}

// AuthenticatorAttestationResponse carries the signed client data and the raw
// public key offered at registration. The key is trusted as-is; no
// attestation-statement verification is performed.
type AuthenticatorAttestationResponse struct {
	ClientDataJSON     protocol.URLEncodedBase64 `json:"clientDataJSON" validate:"required"`
	PublicKey          protocol.URLEncodedBase64 `json:"publicKey"      validate:"required"`
	PublicKeyAlgorithm int64                     `json:"publicKeyAlgorithm"`
}

// PublicKeyCredentialWithAssertion is the login-completion payload: a
// credential reference plus the assertion proving possession of its private
// key.
type PublicKeyCredentialWithAssertion struct {
	ID       string                         `json:"id"       validate:"required"`
	Response AuthenticatorAssertionResponse `json:"response" validate:"required"`
}

// AuthenticatorAssertionResponse carries the signed material for a login:
// authenticator data, the client data it covers, and the signature over both.
type AuthenticatorAssertionResponse struct {
	ClientDataJSON    protocol.URLEncodedBase64 `json:"clientDataJSON"       validate:"required"`
	AuthenticatorData protocol.URLEncodedBase64 `json:"authenticatorData"    validate:"required"`
	Signature         protocol.URLEncodedBase64 `json:"signature"            validate:"required"`
	UserHandle        protocol.URLEncodedBase64 `json:"userHandle,omitempty"`
}
