package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zuqiartcraft/Product-Website/internal/auth"
	"github.com/zuqiartcraft/Product-Website/internal/domain"
	adminsvc "github.com/zuqiartcraft/Product-Website/internal/service/admin"
	"github.com/zuqiartcraft/Product-Website/internal/storage"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func loginHandler(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
			return
		}
		token, err := a.IssueToken(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
	}
}

// authMiddleware guards the admin group with the bearer token scheme.
func authMiddleware(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		if !a.ValidateToken(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

func adminListHandler(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func adminCreateHandler(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in adminsvc.ProductInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		p, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			writeAdminError(c, err, "Failed to create product")
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "product": p})
	}
}

func adminUpdateHandler(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in adminsvc.ProductInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		p, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			writeAdminError(c, err, "Failed to update product")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "product": p})
	}
}

type toggleRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

func adminToggleHandler(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req toggleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "is_active is required"})
			return
		}
		p, err := svc.SetActive(c.Request.Context(), c.Param("id"), *req.IsActive)
		if err != nil {
			writeAdminError(c, err, "Failed to toggle product status")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "product": p})
	}
}

func adminDeleteHandler(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeAdminError(c, err, "Failed to delete product")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func adminUploadHandler(uploads Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if uploads == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Uploads not configured"})
			return
		}
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
			return
		}
		defer src.Close()

		url, err := uploads.Save(file.Filename, src)
		if err != nil {
			if errors.Is(err, storage.ErrUnsupportedType) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store upload"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "url": url})
	}
}

func writeAdminError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
