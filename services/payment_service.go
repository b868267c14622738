package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// PaymentOrder is a created gateway order. Amount is in paise.
type PaymentOrder struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// PaymentService wraps the Razorpay gateway: order creation through the SDK
// and local signature verification.
type PaymentService struct {
	client    *razorpay.Client
	keySecret string
}

func NewPaymentService(keyID, keySecret string) *PaymentService {
	return &PaymentService{
		client:    razorpay.NewClient(keyID, keySecret),
		keySecret: keySecret,
	}
}

// CreateOrder creates a gateway order for the given amount in rupees, with
// automatic payment capture.
func (s *PaymentService) CreateOrder(amount float64, currency string) (*PaymentOrder, error) {
	if currency == "" {
		currency = "INR"
	}
	data := map[string]interface{}{
		"amount":          int64(amount * 100), // paise
		"currency":        currency,
		"payment_capture": 1,
	}
	order, err := s.client.Order.Create(data, nil)
	if err != nil {
		return nil, err
	}

	result := &PaymentOrder{
		Amount:   int64(amount * 100),
		Currency: currency,
	}
	if id, ok := order["id"].(string); ok {
		result.OrderID = id
	}
	if amt, ok := order["amount"].(float64); ok {
		result.Amount = int64(amt)
	}
	if cur, ok := order["currency"].(string); ok {
		result.Currency = cur
	}
	return result, nil
}

// VerifySignature checks the gateway callback signature: HMAC-SHA256 of
// "orderID|paymentID" under the key secret, compared in constant time.
func (s *PaymentService) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.keySecret))
	fmt.Fprintf(mac, "%s|%s", orderID, paymentID)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
