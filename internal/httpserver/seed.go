package httpserver

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"net/http"

	productrepo "jewelstore/internal/repository/product"
	"jewelstore/internal/seed"

	"github.com/gin-gonic/gin"
)

type seedRequest struct {
	Secret string `json:"secret"`
}

// seedHandler inserts the bundled catalog once. It requires the configured
// shared secret; an unconfigured secret disables the endpoint entirely.
func seedHandler(repo productrepo.Writer, secret string, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req seedRequest
		_ = c.ShouldBindJSON(&req)

		if secret == "" || subtle.ConstantTimeCompare([]byte(req.Secret), []byte(secret)) != 1 {
			respondError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if repo == nil {
			respondError(c, http.StatusInternalServerError, "Failed to seed database")
			return
		}

		count, err := seed.Apply(c.Request.Context(), repo, logger)
		if err != nil {
			if errors.Is(err, seed.ErrAlreadySeeded) {
				respondError(c, http.StatusBadRequest,
					fmt.Sprintf("Database already has %d products. Delete them first if you want to re-seed.", count))
				return
			}
			logger.Printf("seed endpoint: %v", err)
			respondError(c, http.StatusInternalServerError, "Failed to seed database")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": fmt.Sprintf("Successfully seeded %d products", count),
			"count":   count,
		})
	}
}
