package tracking

import "github.com/pkg/errors"

var (
	ErrMissingVerifyParams = errors.New("missing hub.mode or hub.verify_token")
	ErrVerificationFailed  = errors.New("webhook verification failed")
	ErrInvalidSignature    = errors.New("invalid webhook signature")
	ErrInvalidPayload      = errors.New("invalid webhook payload")
	ErrUnsupportedObject   = errors.New("unsupported webhook object")
	ErrTrackingDisabled    = errors.New("customer tracking storage is disabled")
	ErrCustomerNotFound    = errors.New("customer not found")
)
