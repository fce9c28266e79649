package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zuqiartcraft/Product-Website/internal/checkout"
	"github.com/zuqiartcraft/Product-Website/internal/config"
	"github.com/zuqiartcraft/Product-Website/internal/domain"
)

// notConfigured substitutes for any absent payment setting. The checkout
// flow must render without hard failures no matter what is configured.
const notConfigured = "Not configured"

func orNotConfigured(v string) string {
	if v == "" {
		return notConfigured
	}
	return v
}

func paymentConfigHandler(p config.PaymentConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"whatsapp_url":        p.WhatsAppURL,
			"google_pay_qr_url":   p.GooglePayQRURL,
			"upi_id":              orNotConfigured(p.UPIID),
			"bank_name":           orNotConfigured(p.BankName),
			"bank_account_holder": orNotConfigured(p.BankAccountHolder),
			"bank_account_number": orNotConfigured(p.BankAccountNumber),
			"bank_ifsc_code":      orNotConfigured(p.BankIFSC),
		})
	}
}

type openCheckoutRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

func openCheckoutHandler(store *checkout.Store, catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req openCheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
			return
		}
		p, err := catalog.Get(c.Request.Context(), req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open checkout"})
			return
		}
		sess := store.Open(p.ID, p.Name, p.Price)
		c.JSON(http.StatusCreated, gin.H{"session": sess.Snapshot()})
	}
}

// withSession resolves the session for the request or replies 404.
func withSession(store *checkout.Store, c *gin.Context) (*checkout.Session, bool) {
	sess, ok := store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Checkout session not found"})
		return nil, false
	}
	return sess, true
}

func checkoutErrStatus(err error) int {
	switch {
	case errors.Is(err, checkout.ErrUnknownMethod), errors.Is(err, checkout.ErrBuyerDetailsRequired):
		return http.StatusBadRequest
	case errors.Is(err, checkout.ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func getCheckoutHandler(store *checkout.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := withSession(store, c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"session": sess.Snapshot()})
	}
}

type selectMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

func selectMethodHandler(store *checkout.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := withSession(store, c)
		if !ok {
			return
		}
		var req selectMethodRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "method is required"})
			return
		}
		if err := sess.Select(checkout.Method(req.Method)); err != nil {
			c.JSON(checkoutErrStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"session": sess.Snapshot()})
	}
}

func backHandler(store *checkout.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := withSession(store, c)
		if !ok {
			return
		}
		if err := sess.Back(); err != nil {
			c.JSON(checkoutErrStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"session": sess.Snapshot()})
	}
}

func nextHandler(store *checkout.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := withSession(store, c)
		if !ok {
			return
		}
		if err := sess.Next(); err != nil {
			c.JSON(checkoutErrStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"session": sess.Snapshot()})
	}
}

type submitRequest struct {
	BuyerName    string `json:"buyer_name"`
	BuyerAddress string `json:"buyer_address"`
}

// submitHandler composes the handoff message and destroys the session. The
// handoff itself is fire-and-forget on the client side: the server only
// hands back the messaging URL.
func submitHandler(store *checkout.Store, whatsappURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := withSession(store, c)
		if !ok {
			return
		}
		var req submitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		sess.SetBuyer(req.BuyerName, req.BuyerAddress)
		msg, err := sess.Submit()
		if err != nil {
			c.JSON(checkoutErrStatus(err), gin.H{"error": err.Error()})
			return
		}
		store.Close(sess.ID())
		c.JSON(http.StatusOK, gin.H{
			"message":      msg.Text(),
			"whatsapp_url": msg.HandoffURL(whatsappURL),
		})
	}
}

func closeCheckoutHandler(store *checkout.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.Close(c.Param("id"))
		c.Status(http.StatusNoContent)
	}
}
