package httpserver

import (
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// cleanParam strips markup/template characters from query input, trims, and
// caps length without splitting a multi-byte rune. Applied to every string
// taken from the URL.
func cleanParam(v string) string {
	v = strings.NewReplacer("<", "", ">", "", "{", "", "}", "", "$", "").Replace(v)
	v = strings.TrimSpace(v)
	if len(v) > 200 {
		cut := 200
		for cut > 0 && !utf8.RuneStart(v[cut]) {
			cut--
		}
		v = v[:cut]
	}
	return v
}
