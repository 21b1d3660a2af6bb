package assistant

import (
	"context"
	"errors"
	"testing"

	"car-auction/internal/auctionerrors"
	"car-auction/internal/catalog"
	"car-auction/internal/ledger"
	"car-auction/internal/models"
	"car-auction/internal/projection"
	"car-auction/internal/repository"

	"github.com/stretchr/testify/require"
)

// fakeCompleter records the prompt and history it was called with
type fakeCompleter struct {
	reply      string
	err        error
	gotPrompt  string
	gotHistory []Message
	calls      int
}

func (f *fakeCompleter) Complete(_ context.Context, systemPrompt string, history []Message) (string, error) {
	f.calls++
	f.gotPrompt = systemPrompt
	f.gotHistory = history
	return f.reply, f.err
}

func newProjection(t *testing.T) (*projection.Service, *repository.MemoryStore, *catalog.Service, *ledger.Service) {
	t.Helper()
	store := repository.NewMemoryStore()
	catalogSvc := catalog.NewService(store)
	ledgerSvc := ledger.NewService(store)
	return projection.NewService(catalogSvc, ledgerSvc, store), store, catalogSvc, ledgerSvc
}

func TestAssistant_Chat(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	proj, store, catalogSvc, ledgerSvc := newProjection(t)
	require.NoError(t, store.CreateClient(ctx, models.Client{ClientID: "c1", Wallet: "0xbuyer", Name: "Ana García"}))
	car, err := catalogSvc.Create(ctx, models.CarSpec{Make: "Toyota", Model: "Corolla", Year: 2020, StartingPrice: 12000}, "0xa")
	require.NoError(t, err)
	_, err = ledgerSvc.PlaceBid(ctx, "c1", car.CarID, 12500)
	require.NoError(t, err)

	completer := &fakeCompleter{reply: "The Corolla is a solid choice."}
	asst := NewAssistant(completer, proj)

	history := []Message{{Role: "user", Content: "What should I bid on?"}}
	reply, err := asst.Chat(ctx, "c1", history)
	require.NoError(t, err)
	require.Equal(t, "The Corolla is a solid choice.", reply)
	require.Equal(t, history, completer.gotHistory)

	// The prompt carries the client, the listing and the client's bid
	require.Contains(t, completer.gotPrompt, "Ana García")
	require.Contains(t, completer.gotPrompt, "Corolla")
	require.Contains(t, completer.gotPrompt, car.CarID)
}

func TestAssistant_Chat_EmptyHistory(t *testing.T) {
	t.Parallel()

	proj, _, _, _ := newProjection(t)
	asst := NewAssistant(&fakeCompleter{}, proj)

	_, err := asst.Chat(context.Background(), "c1", nil)
	require.ErrorIs(t, err, auctionerrors.ErrInvalidSpec)
}

func TestAssistant_Chat_CompletionFailure(t *testing.T) {
	t.Parallel()

	proj, _, _, _ := newProjection(t)
	asst := NewAssistant(&fakeCompleter{err: errors.New("quota exceeded")}, proj)

	_, err := asst.Chat(context.Background(), "", []Message{{Role: "user", Content: "hola"}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "completion failed")
}

func TestBuildSystemPrompt_AnonymousClient(t *testing.T) {
	t.Parallel()

	prompt := BuildSystemPrompt(projection.Snapshot{Bids: []models.Bid{}})
	require.Contains(t, prompt, "Ruedin")
	require.Contains(t, prompt, "no client information available")
}
