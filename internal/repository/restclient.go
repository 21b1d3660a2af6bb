package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"car-auction/internal/auctionerrors"
	model "car-auction/internal/models"
	"car-auction/utils"
)

// RESTStore implements AuctionStore against the remote auction backend. The
// backend is treated as opaque: every mutation is a single HTTP call, and
// derived reads (winning bid) are recomputed from fetched data, never cached.
type RESTStore struct {
	baseURL string
	client  *http.Client
}

// NewRESTStore creates a store bound to the backend base URL
func NewRESTStore(baseURL string) *RESTStore {
	return &RESTStore{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Wire DTOs. The backend speaks Spanish field names; they are validated here
// at the boundary and converted to domain models.

type carDTO struct {
	ID            string  `json:"_id"`
	Marca         string  `json:"marca"`
	Modelo        string  `json:"modelo"`
	Anio          int     `json:"año"`
	PrecioInicial float64 `json:"precioInicial"`
	Estado        string  `json:"estado"`
	OwnerWallet   string  `json:"ownerWallet,omitempty"`
	CreatedAt     string  `json:"createdAt,omitempty"`
}

type clientDTO struct {
	ID     string `json:"_id"`
	Nombre string `json:"nombre"`
	Correo string `json:"correo"`
	Wallet string `json:"wallet"`
}

type bidDTO struct {
	ID        string          `json:"_id"`
	ClienteID json.RawMessage `json:"clienteId"` // plain id or populated client object
	CarroID   json.RawMessage `json:"carroId"`   // plain id or populated car object
	Monto     float64         `json:"monto"`
	CreatedAt string          `json:"createdAt"`
}

type pagoDTO struct {
	Proof           model.Proof `json:"proof"`
	CompradorWallet string      `json:"compradorWallet"`
	CarroID         string      `json:"carroId"`
}

func (d carDTO) toModel() (model.Car, error) {
	if d.ID == "" || d.Marca == "" || d.Modelo == "" {
		return model.Car{}, fmt.Errorf("car payload missing _id/marca/modelo: %w", auctionerrors.ErrBackendUnavailable)
	}
	status := model.CarStatus(d.Estado)
	if status == "" {
		status = model.CarStatusOpen
	}
	createdAt, _ := time.Parse(time.RFC3339, d.CreatedAt)
	return model.Car{
		CarID:         d.ID,
		Make:          d.Marca,
		Model:         d.Modelo,
		Year:          d.Anio,
		StartingPrice: d.PrecioInicial,
		OwnerWallet:   d.OwnerWallet,
		Status:        status,
		CreatedAt:     createdAt,
	}, nil
}

func (d clientDTO) toModel() (model.Client, error) {
	if d.ID == "" || d.Wallet == "" {
		return model.Client{}, fmt.Errorf("client payload missing _id/wallet: %w", auctionerrors.ErrBackendUnavailable)
	}
	return model.Client{
		ClientID: d.ID,
		Wallet:   d.Wallet,
		Name:     d.Nombre,
		Email:    d.Correo,
	}, nil
}

// refID extracts an id out of a reference field that the backend may return
// either as a plain string or as a populated object.
func refID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		return id, nil
	}
	var obj struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", fmt.Errorf("malformed reference field: %w", err)
	}
	return obj.ID, nil
}

func (d bidDTO) toModel() (model.Bid, error) {
	if d.ID == "" {
		return model.Bid{}, fmt.Errorf("bid payload missing _id: %w", auctionerrors.ErrBackendUnavailable)
	}
	clientID, err := refID(d.ClienteID)
	if err != nil {
		return model.Bid{}, err
	}
	carID, err := refID(d.CarroID)
	if err != nil {
		return model.Bid{}, err
	}
	createdAt, _ := time.Parse(time.RFC3339, d.CreatedAt)
	return model.Bid{
		BidID:     d.ID,
		ClientID:  clientID,
		CarID:     carID,
		Amount:    d.Monto,
		CreatedAt: createdAt,
	}, nil
}

// do executes one backend call and decodes the response into out (when out is
// non-nil). Transport failures map to ErrBackendUnavailable, 404 to
// ErrNotFound.
func (s *RESTStore) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request for %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request for %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %v: %w", method, path, err, auctionerrors.ErrBackendUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, auctionerrors.ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%s %s: status %d: %w", method, path, resp.StatusCode, auctionerrors.ErrBackendUnavailable)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response for %s %s: %v: %w", method, path, err, auctionerrors.ErrBackendUnavailable)
	}
	return nil
}

// CreateClient registers a new client on the backend
func (s *RESTStore) CreateClient(ctx context.Context, client model.Client) error {
	body := clientDTO{Wallet: client.Wallet, Nombre: client.Name, Correo: client.Email}
	var created clientDTO
	if err := s.do(ctx, http.MethodPost, "/api/clientes/registro", body, &created); err != nil {
		return err
	}
	return nil
}

// GetClientByWallet looks a client up by wallet address
func (s *RESTStore) GetClientByWallet(ctx context.Context, wallet string) (model.Client, error) {
	var dtos []clientDTO
	path := "/api/clientes?wallet=" + url.QueryEscape(wallet)
	if err := s.do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return model.Client{}, err
	}
	for _, d := range dtos {
		if d.Wallet == wallet {
			return d.toModel()
		}
	}
	return model.Client{}, fmt.Errorf("get client for wallet %s: %w", wallet, auctionerrors.ErrNotFound)
}

// GetClient looks a client up by id
func (s *RESTStore) GetClient(ctx context.Context, clientID string) (model.Client, error) {
	var dtos []clientDTO
	if err := s.do(ctx, http.MethodGet, "/api/clientes", nil, &dtos); err != nil {
		return model.Client{}, err
	}
	for _, d := range dtos {
		if d.ID == clientID {
			return d.toModel()
		}
	}
	return model.Client{}, fmt.Errorf("get client %s: %w", clientID, auctionerrors.ErrNotFound)
}

// FlagPenalty records a seller penalty. The backend exposes no endpoint for
// this, so the flag is advisory and only logged.
func (s *RESTStore) FlagPenalty(_ context.Context, clientID string) error {
	utils.Warn("seller penalty flag is advisory with the REST backend", map[string]any{
		"client_id": clientID,
	})
	return nil
}

// CreateCar creates a listing on the backend
func (s *RESTStore) CreateCar(ctx context.Context, car model.Car) error {
	body := carDTO{
		Marca:         car.Make,
		Modelo:        car.Model,
		Anio:          car.Year,
		PrecioInicial: car.StartingPrice,
		Estado:        string(car.Status),
		OwnerWallet:   car.OwnerWallet,
	}
	var created carDTO
	return s.do(ctx, http.MethodPost, "/api/carros", body, &created)
}

// GetCar fetches a single car. The backend has no get-by-id route, so the
// listing is filtered client-side.
func (s *RESTStore) GetCar(ctx context.Context, carID string) (model.Car, error) {
	cars, err := s.ListCars(ctx)
	if err != nil {
		return model.Car{}, err
	}
	for _, car := range cars {
		if car.CarID == carID {
			return car, nil
		}
	}
	return model.Car{}, fmt.Errorf("get car %s: %w", carID, auctionerrors.ErrNotFound)
}

// ListCars fetches every listing
func (s *RESTStore) ListCars(ctx context.Context) ([]model.Car, error) {
	var dtos []carDTO
	if err := s.do(ctx, http.MethodGet, "/api/carros", nil, &dtos); err != nil {
		return nil, err
	}
	cars := make([]model.Car, 0, len(dtos))
	for _, d := range dtos {
		car, err := d.toModel()
		if err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}
	return cars, nil
}

// DeleteCar removes a listing from the backend
func (s *RESTStore) DeleteCar(ctx context.Context, carID string) error {
	return s.do(ctx, http.MethodDelete, "/api/carros/"+url.PathEscape(carID), nil, nil)
}

// RecordBidForCar creates a bid on the backend
func (s *RESTStore) RecordBidForCar(ctx context.Context, bid model.Bid) error {
	body := map[string]any{
		"clienteId": bid.ClientID,
		"carroId":   bid.CarID,
		"monto":     bid.Amount,
	}
	var created bidDTO
	return s.do(ctx, http.MethodPost, "/api/pujas", body, &created)
}

func (s *RESTStore) fetchBids(ctx context.Context, query string) ([]model.Bid, error) {
	var dtos []bidDTO
	if err := s.do(ctx, http.MethodGet, "/api/pujas"+query, nil, &dtos); err != nil {
		return nil, err
	}
	bids := make([]model.Bid, 0, len(dtos))
	for _, d := range dtos {
		bid, err := d.toModel()
		if err != nil {
			return nil, err
		}
		bids = append(bids, bid)
	}
	return bids, nil
}

// GetBidsByCar returns all bids for a car
func (s *RESTStore) GetBidsByCar(ctx context.Context, carID string) ([]model.Bid, error) {
	bids, err := s.fetchBids(ctx, "?carroId="+url.QueryEscape(carID))
	if err != nil {
		return nil, err
	}
	if len(bids) == 0 {
		return nil, fmt.Errorf("get bids for car %s: %w", carID, auctionerrors.ErrNoBids)
	}
	return bids, nil
}

// GetBidsByClient returns all bids a client has placed
func (s *RESTStore) GetBidsByClient(ctx context.Context, clientID string) ([]model.Bid, error) {
	bids, err := s.fetchBids(ctx, "?clienteId="+url.QueryEscape(clientID))
	if err != nil {
		return nil, err
	}
	if len(bids) == 0 {
		return nil, fmt.Errorf("get bids for client %s: %w", clientID, auctionerrors.ErrClientNoBids)
	}
	return bids, nil
}

// GetWinningBid recomputes the highest bid from the backend at read time.
// Ties are broken by the earliest CreatedAt.
func (s *RESTStore) GetWinningBid(ctx context.Context, carID string) (model.Bid, error) {
	bids, err := s.GetBidsByCar(ctx, carID)
	if err != nil {
		return model.Bid{}, err
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > winning.Amount || (b.Amount == winning.Amount && b.CreatedAt.Before(winning.CreatedAt)) {
			winning = b
		}
	}
	return winning, nil
}

// DeleteBid removes a bid from the backend
func (s *RESTStore) DeleteBid(ctx context.Context, bidID string) error {
	return s.do(ctx, http.MethodDelete, "/api/pujas/"+url.PathEscape(bidID), nil, nil)
}

// RecordPayment posts a completed purchase to the backend
func (s *RESTStore) RecordPayment(ctx context.Context, payment model.PaymentRecord) error {
	body := pagoDTO{
		Proof:           payment.Proof,
		CompradorWallet: payment.BuyerWallet,
		CarroID:         payment.CarID,
	}
	return s.do(ctx, http.MethodPost, "/api/pago", body, nil)
}
