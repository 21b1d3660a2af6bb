package payments

import (
	"context"
	"fmt"

	"car-auction/internal/auctionerrors"
	"car-auction/internal/models"
	"car-auction/utils"
)

// Verifier checks a client's identity proof before an action. Single-shot:
// callers re-invoke to retry.
type Verifier interface {
	// Verify validates the proof for an action/signal pair. The action names
	// the operation ("bid-<carID>"), the signal identifies the acting client.
	Verify(ctx context.Context, action, signal string) (models.Proof, error)
}

// Gateway moves funds through the external wallet provider. Single-shot, no
// built-in retry.
type Gateway interface {
	// Initiate opens a payment and returns its reference.
	Initiate(ctx context.Context) (string, error)
	// Pay transfers amount to recipientWallet under an initiated reference.
	Pay(ctx context.Context, reference, recipientWallet string, amount float64) error
}

// SimulatedVerifier approves every proof request. Used in development and
// in-memory mode where no wallet provider is reachable.
type SimulatedVerifier struct{}

// Verify returns a synthetic proof for the requested action
func (SimulatedVerifier) Verify(_ context.Context, action, signal string) (models.Proof, error) {
	if action == "" || signal == "" {
		return models.Proof{}, fmt.Errorf("verify: missing action or signal: %w", auctionerrors.ErrVerificationFailed)
	}
	return models.Proof{
		MerkleRoot:     "0x" + utils.RandomHex(64),
		NullifierHash:  "0x" + utils.RandomHex(64),
		Proof:          "0x" + utils.RandomHex(64),
		CredentialType: "orb",
		Action:         action,
	}, nil
}

// SimulatedGateway accepts every payment. References are generated UUIDs.
type SimulatedGateway struct{}

// Initiate opens a simulated payment
func (SimulatedGateway) Initiate(_ context.Context) (string, error) {
	return utils.GenerateID(), nil
}

// Pay approves the transfer after basic argument checks
func (SimulatedGateway) Pay(_ context.Context, reference, recipientWallet string, amount float64) error {
	if reference == "" || recipientWallet == "" {
		return fmt.Errorf("pay: missing reference or recipient: %w", auctionerrors.ErrPaymentFailed)
	}
	if amount <= 0 {
		return fmt.Errorf("pay: non-positive amount %.2f: %w", amount, auctionerrors.ErrPaymentFailed)
	}
	utils.Info("simulated payment accepted", map[string]any{
		"reference": reference,
		"recipient": recipientWallet,
		"amount":    amount,
	})
	return nil
}
