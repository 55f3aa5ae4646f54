package passkey

import (
	"encoding/json"
	"net/url"

	apperrors "github.com/fluxauth/flux/internal/platform/errors"
)

// ClientDataType names the operation a signed client-data payload belongs to.
type ClientDataType string

const (
	// ClientDataTypeCreate marks a registration (attestation) payload.
	ClientDataTypeCreate ClientDataType = "webauthn.create"
	// ClientDataTypeGet marks a login (assertion) payload.
	ClientDataTypeGet ClientDataType = "webauthn.get"
)

// ClientData is the payload an authenticator signs over: the operation type,
// the issued challenge (already transport-encoded), and the caller's origin.
type ClientData struct {
	Type      ClientDataType `json:"type"`
	Challenge string         `json:"challenge"`
	Origin    string         `json:"origin"`
}

// DecodeClientData parses the JSON carried in a credential response's
// clientDataJSON field.
func DecodeClientData(raw []byte) (ClientData, error) {
	var data ClientData
	if err := json.Unmarshal(raw, &data); err != nil {
		return ClientData{}, apperrors.Wrap(apperrors.CodeValidation, "decode client data", err)
	}
	return data, nil
}

// Validate checks the client data against the configured relying party and
// the expected operation type. It is pure and runs before any transaction is
// opened.
func (c ClientData) Validate(rpID string, expected ClientDataType) error {
	parsed, err := url.Parse(c.Origin)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeUnparsedRpId, "parse client data origin", err)
	}
	host := parsed.Hostname()
	if host == "" {
		return apperrors.New(apperrors.CodeInvalidRpId, "client data origin has no host")
	}
	// Exact match only; no subdomain wildcarding.
	if host != rpID {
		return apperrors.WithMetadata(apperrors.CodeRpIdMismatch, "client data origin does not match relying party", map[string]string{
			"origin_host": host,
		})
	}
	if c.Type != expected {
		return apperrors.WithMetadata(apperrors.CodeInvalidClientDataType, "unexpected client data type", map[string]string{
			"type": string(c.Type),
		})
	}
	return nil
}
