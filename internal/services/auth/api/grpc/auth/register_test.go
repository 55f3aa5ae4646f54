package auth

import (
	"context"
	"encoding/json"
	"testing"

	"google.golang.org/grpc/codes"

	authv1 "github.com/fluxauth/flux/api/gen/go/auth/v1"
	"github.com/fluxauth/flux/internal/services/auth/passkey"
	"github.com/fluxauth/flux/internal/services/auth/storage"
)

func clientDataJSON(t *testing.T, dataType, challengeID, origin string) []byte {
	t.Helper()

	raw, err := json.Marshal(passkey.ClientData{
		Type:      passkey.ClientDataType(dataType),
		Challenge: challengeID,
		Origin:    origin,
	})
	if err != nil {
		t.Fatalf("encode client data: %v", err)
	}
	return raw
}

func registrationRequest(t *testing.T, challengeID, origin string) *authv1.CompleteRegistrationRequest {
	t.Helper()

	payload := completeRegistrationPayload{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Credential: passkey.PublicKeyCredentialWithAttestation{
			ID: "cred-new",
			Response: passkey.AuthenticatorAttestationResponse{
				ClientDataJSON:     clientDataJSON(t, "webauthn.create", challengeID, origin),
				PublicKey:          []byte{0x30, 0x59, 0x01, 0x02},
				PublicKeyAlgorithm: -7,
			},
		},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("encode registration payload: %v", err)
	}
	return &authv1.CompleteRegistrationRequest{Request: string(raw)}
}

func seedRegistrationChallenge(store *fakeStore) string {
	challengeID := passkey.EncodeChallenge(fixedChallengeBytes())
	store.challenges[challengeID] = storage.Challenge{
		ID:        challengeID,
		UserID:    candidateUserID,
		UserName:  "new@example.com",
		CreatedAt: testTime,
	}
	return challengeID
}

func TestCompleteRegistration(t *testing.T) {
	store := newFakeStore()
	service := newTestService(t, store)
	challengeID := seedRegistrationChallenge(store)

	resp, err := service.CompleteRegistration(context.Background(), registrationRequest(t, challengeID, "https://localhost"))
	if err != nil {
		t.Fatalf("CompleteRegistration() error = %v", err)
	}

	if subject := tokenSubject(t, resp.GetJwt()); subject != candidateUserID {
		t.Errorf("token subject = %q, want %q", subject, candidateUserID)
	}

	created, ok := store.users[candidateUserID]
	if !ok {
		t.Fatal("user was not created")
	}
	if created.Email != "new@example.com" || created.FirstName != "Ada" || created.LastName != "Lovelace" {
		t.Errorf("created user = %+v", created)
	}
	if !created.CreatedAt.Equal(testTime) {
		t.Errorf("created at = %v, want %v", created.CreatedAt, testTime)
	}

	credential, ok := store.credentials["cred-new"]
	if !ok {
		t.Fatal("credential was not created")
	}
	if credential.UserID != candidateUserID || credential.PublicKeyAlgorithm != -7 {
		t.Errorf("credential = %+v", credential)
	}

	if _, ok := store.challenges[challengeID]; ok {
		t.Error("challenge should be consumed after registration")
	}
}

func TestCompleteRegistrationReplay(t *testing.T) {
	store := newFakeStore()
	service := newTestService(t, store)
	challengeID := seedRegistrationChallenge(store)

	if _, err := service.CompleteRegistration(context.Background(), registrationRequest(t, challengeID, "https://localhost")); err != nil {
		t.Fatalf("first CompleteRegistration() error = %v", err)
	}

	_, err := service.CompleteRegistration(context.Background(), registrationRequest(t, challengeID, "https://localhost"))
	if err == nil {
		t.Fatal("replayed CompleteRegistration() expected error")
	}
	code, reason := statusDetails(t, err)
	if code != codes.NotFound {
		t.Errorf("code = %v, want %v", code, codes.NotFound)
	}
	if reason != "USER_CHALLENGE_NOT_FOUND" {
		t.Errorf("reason = %q, want USER_CHALLENGE_NOT_FOUND", reason)
	}
}

func TestCompleteRegistrationOriginMismatch(t *testing.T) {
	store := newFakeStore()
	service := newTestService(t, store)
	challengeID := seedRegistrationChallenge(store)

	_, err := service.CompleteRegistration(context.Background(), registrationRequest(t, challengeID, "https://evil.example.com"))
	if err == nil {
		t.Fatal("CompleteRegistration() expected error for foreign origin")
	}
	code, reason := statusDetails(t, err)
	if code != codes.InvalidArgument {
		t.Errorf("code = %v, want %v", code, codes.InvalidArgument)
	}
	if reason != "RP_ID_MISMATCH" {
		t.Errorf("reason = %q, want RP_ID_MISMATCH", reason)
	}

	if _, ok := store.challenges[challengeID]; !ok {
		t.Error("challenge should survive a rejected completion")
	}
}

func TestCompleteRegistrationWrongClientDataType(t *testing.T) {
	store := newFakeStore()
	service := newTestService(t, store)
	challengeID := seedRegistrationChallenge(store)

	payload := completeRegistrationPayload{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Credential: passkey.PublicKeyCredentialWithAttestation{
			ID: "cred-new",
			Response: passkey.AuthenticatorAttestationResponse{
				ClientDataJSON:     clientDataJSON(t, "webauthn.get", challengeID, "https://localhost"),
				PublicKey:          []byte{0x30, 0x59},
				PublicKeyAlgorithm: -7,
			},
		},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("encode payload: %v", err)
	}

	_, err = service.CompleteRegistration(context.Background(), &authv1.CompleteRegistrationRequest{Request: string(raw)})
	if err == nil {
		t.Fatal("CompleteRegistration() expected error for assertion client data")
	}
	code, reason := statusDetails(t, err)
	if code != codes.InvalidArgument {
		t.Errorf("code = %v, want %v", code, codes.InvalidArgument)
	}
	if reason != "INVALID_CLIENT_DATA_TYPE" {
		t.Errorf("reason = %q, want INVALID_CLIENT_DATA_TYPE", reason)
	}
}

func TestCompleteRegistrationMalformedRequest(t *testing.T) {
	service := newTestService(t, newFakeStore())

	for name, request := range map[string]string{
		"not json":       "{",
		"missing fields": `{"firstName":"Ada"}`,
	} {
		_, err := service.CompleteRegistration(context.Background(), &authv1.CompleteRegistrationRequest{Request: request})
		if err == nil {
			t.Errorf("%s: expected error", name)
			continue
		}
		code, reason := statusDetails(t, err)
		if code != codes.InvalidArgument {
			t.Errorf("%s: code = %v, want %v", name, code, codes.InvalidArgument)
		}
		if reason != "VALIDATION" {
			t.Errorf("%s: reason = %q, want VALIDATION", name, reason)
		}
	}
}
