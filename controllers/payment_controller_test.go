package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thasarathi1830/AI-FITNESS/models"
	"github.com/thasarathi1830/AI-FITNESS/services"
	"github.com/thasarathi1830/AI-FITNESS/store"
)

type stubGateway struct {
	order    *services.PaymentOrder
	orderErr error
	valid    bool
}

func (s *stubGateway) CreateOrder(amount float64, currency string) (*services.PaymentOrder, error) {
	return s.order, s.orderErr
}

func (s *stubGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return s.valid
}

func newPaymentRouter(t *testing.T, gateway PaymentGateway) (*gin.Engine, store.Store, *models.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemoryStore()
	user := seedUser(t, st, "alice@example.com")
	ctl := NewPaymentController(st, gateway)

	r := gin.New()
	auth := injectUser(user)
	r.POST("/api/payments/create-order", auth, ctl.CreateOrder)
	r.POST("/api/payments/verify", auth, ctl.VerifyPayment)
	return r, st, user
}

func seedBooking(t *testing.T, st store.Store, userID string) string {
	t.Helper()
	booking := models.Booking{
		UserID:        userID,
		TrainerID:     primitive.NewObjectID().Hex(),
		TrainerName:   "Coach",
		DurationHours: 2,
		TotalAmount:   3000,
		PaymentStatus: "pending",
		Status:        "pending",
	}
	id, err := st.Collection(store.Bookings).InsertOne(context.Background(), &booking)
	require.NoError(t, err)
	return id
}

func TestCreateOrderRecordsOrderID(t *testing.T) {
	gateway := &stubGateway{order: &services.PaymentOrder{OrderID: "order_123", Amount: 300000, Currency: "INR"}}
	r, st, user := newPaymentRouter(t, gateway)
	bookingID := seedBooking(t, st, user.ID.Hex())

	w := postJSON(r, "/api/payments/create-order", `{"booking_id": "`+bookingID+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "order_123")

	oid, _ := primitive.ObjectIDFromHex(bookingID)
	var booking models.Booking
	require.NoError(t, st.Collection(store.Bookings).FindOne(context.Background(), bson.M{"_id": oid}, &booking))
	require.NotNil(t, booking.RazorpayOrderID)
	assert.Equal(t, "order_123", *booking.RazorpayOrderID)
}

func TestCreateOrderRejectsForeignBooking(t *testing.T) {
	gateway := &stubGateway{order: &services.PaymentOrder{OrderID: "order_123"}}
	r, st, _ := newPaymentRouter(t, gateway)
	bookingID := seedBooking(t, st, "someone-else")

	w := postJSON(r, "/api/payments/create-order", `{"booking_id": "`+bookingID+`"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateOrderUnknownBooking(t *testing.T) {
	r, _, _ := newPaymentRouter(t, &stubGateway{})

	w := postJSON(r, "/api/payments/create-order", `{"booking_id": "`+primitive.NewObjectID().Hex()+`"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVerifyPaymentMarksBookingScheduled(t *testing.T) {
	r, st, user := newPaymentRouter(t, &stubGateway{valid: true})
	bookingID := seedBooking(t, st, user.ID.Hex())

	w := postJSON(r, "/api/payments/verify",
		`{"booking_id": "`+bookingID+`", "razorpay_order_id": "order_123", "razorpay_payment_id": "pay_456", "razorpay_signature": "sig"}`)
	require.Equal(t, http.StatusOK, w.Code)

	oid, _ := primitive.ObjectIDFromHex(bookingID)
	var booking models.Booking
	require.NoError(t, st.Collection(store.Bookings).FindOne(context.Background(), bson.M{"_id": oid}, &booking))
	assert.Equal(t, "completed", booking.PaymentStatus)
	assert.Equal(t, "scheduled", booking.Status)
	require.NotNil(t, booking.PaymentID)
	assert.Equal(t, "pay_456", *booking.PaymentID)
}

func TestVerifyPaymentRejectsBadSignature(t *testing.T) {
	r, st, user := newPaymentRouter(t, &stubGateway{valid: false})
	bookingID := seedBooking(t, st, user.ID.Hex())

	w := postJSON(r, "/api/payments/verify",
		`{"booking_id": "`+bookingID+`", "razorpay_order_id": "order_123", "razorpay_payment_id": "pay_456", "razorpay_signature": "forged"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid payment signature")

	// booking untouched
	oid, _ := primitive.ObjectIDFromHex(bookingID)
	var booking models.Booking
	require.NoError(t, st.Collection(store.Bookings).FindOne(context.Background(), bson.M{"_id": oid}, &booking))
	assert.Equal(t, "pending", booking.PaymentStatus)
}
