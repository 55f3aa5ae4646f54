package passkey

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/protocol/webauthncose"

	"github.com/fluxauth/flux/internal/platform/id"
)

// ChallengeLength is the challenge size in bytes for both flows.
const ChallengeLength = 128

// CredentialType is the only credential type the protocol issues.
const CredentialType = "public-key"

// allowedTransports are the transport hints advertised for existing credentials.
var allowedTransports = []string{"internal", "hybrid"}

// CredentialCreationOptions is the registration payload handed to a client
// authenticator.
type CredentialCreationOptions struct {
	PublicKey PublicKeyCredentialCreationOptions `json:"publicKey"`
}

// PublicKeyCredentialCreationOptions carries the creation challenge and the
// relying party / user entities it is scoped to.
type PublicKeyCredentialCreationOptions struct {
	Challenge        protocol.URLEncodedBase64       `json:"challenge"`
	PubKeyCredParams []PublicKeyCredentialParameters `json:"pubKeyCredParams"`
	RP               RelyingPartyEntity              `json:"rp"`
	User             UserEntity                      `json:"user"`
}

// PublicKeyCredentialParameters names one acceptable signature algorithm by
// its COSE identifier.
type PublicKeyCredentialParameters struct {
	Alg  webauthncose.COSEAlgorithmIdentifier `json:"alg"`
	Type string                               `json:"type"`
}

// RelyingPartyEntity identifies the server the credential is scoped to.
type RelyingPartyEntity struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// UserEntity identifies the account a new credential will belong to. ID is
// the WebAuthn user handle: raw UUID bytes, base64url on the wire.
type UserEntity struct {
	ID          protocol.URLEncodedBase64 `json:"id"`
	Name        string                    `json:"name"`
	DisplayName string                    `json:"displayName"`
}

// CredentialRequestOptions is the login payload handed to a client
// authenticator.
type CredentialRequestOptions struct {
	PublicKey PublicKeyCredentialRequestOptions `json:"publicKey"`
}

// PublicKeyCredentialRequestOptions carries the login challenge and the
// allow-list of credentials that may answer it.
type PublicKeyCredentialRequestOptions struct {
	Challenge        protocol.URLEncodedBase64 `json:"challenge"`
	RPID             string                    `json:"rpId,omitempty"`
	AllowCredentials []CredentialDescriptor    `json:"allowCredentials"`
	UserVerification string                    `json:"userVerification"`
}

// CredentialDescriptor references one previously registered credential.
type CredentialDescriptor struct {
	ID         string   `json:"id"`
	Type       string   `json:"type"`
	Transports []string `json:"transports"`
}

// JoinResult is the start-flow outcome. Exactly one variant is set: Creation
// when the email is new, Request when credentials already exist.
type JoinResult struct {
	Creation *CredentialCreationOptions `json:"creation,omitempty"`
	Request  *CredentialRequestOptions  `json:"request,omitempty"`
}

// Builder constructs challenge option payloads. The zero value uses
// crypto/rand and UUIDv7 user ids; tests may inject deterministic sources.
type Builder struct {
	RPID      string
	RPName    string
	NewUserID func() (string, error)
	Rand      io.Reader
}

// CreationOptions builds a registration payload for a not-yet-existing user.
// It returns the payload together with the generated candidate user id in
// canonical form, which the caller persists on the challenge record.
func (b Builder) CreationOptions(email string) (CredentialCreationOptions, string, error) {
	newUserID := b.NewUserID
	if newUserID == nil {
		newUserID = id.NewUserID
	}

	userID, err := newUserID()
	if err != nil {
		return CredentialCreationOptions{}, "", fmt.Errorf("generate user id: %w", err)
	}
	handle, err := id.UserHandle(userID)
	if err != nil {
		return CredentialCreationOptions{}, "", fmt.Errorf("encode user handle: %w", err)
	}

	challenge, err := b.newChallenge()
	if err != nil {
		return CredentialCreationOptions{}, "", err
	}

	return CredentialCreationOptions{
		PublicKey: PublicKeyCredentialCreationOptions{
			Challenge: challenge,
			PubKeyCredParams: []PublicKeyCredentialParameters{
				{Alg: webauthncose.AlgRS256, Type: CredentialType},
				{Alg: webauthncose.AlgES256, Type: CredentialType},
				{Alg: webauthncose.AlgEdDSA, Type: CredentialType},
			},
			RP: RelyingPartyEntity{
				ID:   b.RPID,
				Name: b.RPName,
			},
			User: UserEntity{
				ID:          handle,
				Name:        email,
				DisplayName: email,
			},
		},
	}, userID, nil
}

// RequestOptions builds a login payload scoped to the user's existing
// credential ids.
func (b Builder) RequestOptions(credentialIDs []string) (CredentialRequestOptions, error) {
	challenge, err := b.newChallenge()
	if err != nil {
		return CredentialRequestOptions{}, err
	}

	allowed := make([]CredentialDescriptor, 0, len(credentialIDs))
	for _, credentialID := range credentialIDs {
		allowed = append(allowed, CredentialDescriptor{
			ID:         credentialID,
			Type:       CredentialType,
			Transports: allowedTransports,
		})
	}

	return CredentialRequestOptions{
		PublicKey: PublicKeyCredentialRequestOptions{
			Challenge:        challenge,
			RPID:             b.RPID,
			AllowCredentials: allowed,
			UserVerification: "preferred",
		},
	}, nil
}

func (b Builder) newChallenge() (protocol.URLEncodedBase64, error) {
	source := b.Rand
	if source == nil {
		source = rand.Reader
	}
	challenge := make([]byte, ChallengeLength)
	if _, err := io.ReadFull(source, challenge); err != nil {
		return nil, fmt.Errorf("generate challenge: %w", err)
	}
	return challenge, nil
}

// EncodeChallenge returns the transport encoding of challenge bytes, which is
// also the challenge's storage key.
func EncodeChallenge(challenge []byte) string {
	return base64.RawURLEncoding.EncodeToString(challenge)
}
