package httpserver

import (
	"errors"
	"net/http"

	"jewelstore/internal/domain"
	"jewelstore/internal/inquiry"

	"github.com/gin-gonic/gin"
)

func contactHandler(svc inquiryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in inquiry.Submission
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid input data")
			return
		}

		created, err := svc.Submit(c.Request.Context(), c.ClientIP(), in)
		if err != nil {
			var verr *domain.ValidationError
			switch {
			case errors.Is(err, domain.ErrRateLimited):
				respondError(c, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			case errors.As(err, &verr):
				respondError(c, http.StatusBadRequest, verr.Message)
			default:
				respondError(c, http.StatusInternalServerError, "Failed to submit inquiry")
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Inquiry submitted successfully",
			"data":    gin.H{"id": created.ID},
		})
	}
}
