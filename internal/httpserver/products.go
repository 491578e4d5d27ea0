package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"jewelstore/internal/domain"
	productrepo "jewelstore/internal/repository/product"

	"github.com/gin-gonic/gin"
)

func listProductsHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := queryFromParams(c)

		page, err := svc.Query(c.Request.Context(), q)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to fetch products")
			return
		}

		items := page.Items
		if items == nil {
			items = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    items,
			"pagination": pagination{
				Page:  page.Page,
				Limit: page.Limit,
				Total: page.Total,
				Pages: page.Pages,
			},
		})
	}
}

func getProductHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := cleanParam(c.Param("slug"))
		if slug == "" {
			respondError(c, http.StatusBadRequest, "Invalid slug")
			return
		}

		p, related, err := svc.Get(c.Request.Context(), slug)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				respondError(c, http.StatusNotFound, "Product not found")
				return
			}
			respondError(c, http.StatusInternalServerError, "Failed to fetch product")
			return
		}

		if related == nil {
			related = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": p, "related": related})
	}
}

func queryFromParams(c *gin.Context) productrepo.Query {
	q := productrepo.Query{
		Category:   cleanParam(c.Query("category")),
		Search:     cleanParam(c.Query("search")),
		Sort:       cleanParam(c.Query("sort")),
		Featured:   c.Query("featured") == "true",
		Bestseller: c.Query("bestseller") == "true",
		New:        c.Query("new") == "true",
	}
	q.MinPrice, _ = strconv.ParseFloat(c.Query("minPrice"), 64)
	q.MaxPrice, _ = strconv.ParseFloat(c.Query("maxPrice"), 64)
	q.Page, _ = strconv.Atoi(c.Query("page"))
	q.Limit, _ = strconv.Atoi(c.Query("limit"))
	return q.Normalize()
}
