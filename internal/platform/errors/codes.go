// Package errors provides structured error handling with machine-readable codes.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Request errors
	CodeValidation Code = "VALIDATION"

	// Client-data errors
	CodeRpIdMismatch          Code = "RP_ID_MISMATCH"
	CodeInvalidClientDataType Code = "INVALID_CLIENT_DATA_TYPE"
	CodeUnparsedRpId          Code = "UNPARSED_RP_ID"
	CodeInvalidRpId           Code = "INVALID_RP_ID"

	// Protocol errors
	CodeUserChallengeNotFound  Code = "USER_CHALLENGE_NOT_FOUND"
	CodeUserCredentialNotFound Code = "USER_CREDENTIAL_NOT_FOUND"
	CodeUserNotFound           Code = "USER_NOT_FOUND"

	// Verification errors
	CodeSignatureVerificationFailed Code = "SIGNATURE_VERIFICATION_FAILED"
	CodeUnsupportedAlgorithm        Code = "UNSUPPORTED_ALGORITHM"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeValidation,
		CodeRpIdMismatch,
		CodeInvalidClientDataType,
		CodeUnparsedRpId,
		CodeInvalidRpId,
		CodeUnsupportedAlgorithm:
		return codes.InvalidArgument

	// NotFound - resource doesn't exist
	case CodeNotFound,
		CodeUserChallengeNotFound,
		CodeUserCredentialNotFound,
		CodeUserNotFound:
		return codes.NotFound

	// Unauthenticated - proof of possession failed
	case CodeSignatureVerificationFailed:
		return codes.Unauthenticated

	default:
		return codes.Internal
	}
}
