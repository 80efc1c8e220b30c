package marketplace

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/domain"
)

const paymentsPath = "/payments"

// PaymentAPI методы ресурса платежей
type PaymentAPI struct {
	client Doer
}

// NewPaymentAPI создает новый экземпляр PaymentAPI
func NewPaymentAPI(client Doer) *PaymentAPI {
	return &PaymentAPI{client: client}
}

// Initiate POST /payments/initiate
// Возвращает платеж со ссылкой на оплату у провайдера
func (a *PaymentAPI) Initiate(ctx context.Context, req InitiatePaymentRequest) (*domain.Payment, error) {
	var payment domain.Payment
	if err := a.client.Do(ctx, http.MethodPost, paymentsPath+"/initiate", nil, req, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// Verify GET /payments/verify/:reference
func (a *PaymentAPI) Verify(ctx context.Context, reference string) (*domain.Payment, error) {
	var payment domain.Payment
	if err := a.client.Do(ctx, http.MethodGet, paymentsPath+"/verify"+segment(reference), nil, nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// ListByBooking GET /payments/booking/:id
func (a *PaymentAPI) ListByBooking(ctx context.Context, bookingID string) ([]domain.Payment, error) {
	var payments []domain.Payment
	if err := a.client.Do(ctx, http.MethodGet, paymentsPath+"/booking"+segment(bookingID), nil, nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
