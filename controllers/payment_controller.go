package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thasarathi1830/AI-FITNESS/middlewares"
	"github.com/thasarathi1830/AI-FITNESS/models"
	"github.com/thasarathi1830/AI-FITNESS/services"
	"github.com/thasarathi1830/AI-FITNESS/store"
)

// PaymentGateway is the slice of the payment provider this controller needs.
type PaymentGateway interface {
	CreateOrder(amount float64, currency string) (*services.PaymentOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type CreateOrderInput struct {
	BookingID string `json:"booking_id" binding:"required"`
}

type VerifyPaymentInput struct {
	BookingID string `json:"booking_id" binding:"required"`
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

type PaymentController struct {
	store   store.Store
	gateway PaymentGateway
}

func NewPaymentController(st store.Store, gateway PaymentGateway) *PaymentController {
	return &PaymentController{store: st, gateway: gateway}
}

// CreateOrder creates a gateway order for a booking's total amount and
// records the order id on the booking. Only the booking's owner may pay.
func (ctl *PaymentController) CreateOrder(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	oid, err := primitive.ObjectIDFromHex(input.BookingID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	bookings := ctl.store.Collection(store.Bookings)

	var booking models.Booking
	err = bookings.FindOne(c.Request.Context(), bson.M{"_id": oid}, &booking)
	if errors.Is(err, store.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	if err != nil {
		log.WithError(err).Error("booking lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create order"})
		return
	}
	if booking.UserID != user.ID.Hex() {
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
		return
	}

	order, err := ctl.gateway.CreateOrder(booking.TotalAmount, "INR")
	if err != nil {
		log.WithError(err).Error("gateway order creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create order"})
		return
	}

	if _, err := bookings.UpdateOne(c.Request.Context(), bson.M{"_id": oid},
		bson.M{"razorpay_order_id": order.OrderID}); err != nil {
		log.WithError(err).Error("booking order id update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id":   order.OrderID,
		"amount":     order.Amount,
		"currency":   order.Currency,
		"booking_id": input.BookingID,
	})
}

// VerifyPayment checks the gateway callback signature and, when valid, marks
// the booking paid and scheduled.
func (ctl *PaymentController) VerifyPayment(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	var input VerifyPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	oid, err := primitive.ObjectIDFromHex(input.BookingID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	if !ctl.gateway.VerifySignature(input.OrderID, input.PaymentID, input.Signature) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment signature"})
		return
	}

	matched, err := ctl.store.Collection(store.Bookings).UpdateOne(c.Request.Context(),
		bson.M{"_id": oid, "user_id": user.ID.Hex()},
		bson.M{
			"payment_id":     input.PaymentID,
			"payment_status": "completed",
			"status":         "scheduled",
		})
	if err != nil {
		log.WithError(err).Error("booking payment update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record payment"})
		return
	}
	if matched == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"booking_id": input.BookingID,
		"status":     "scheduled",
	})
}
