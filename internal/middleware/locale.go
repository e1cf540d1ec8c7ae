package middleware

import (
	"github.com/gin-gonic/gin"
)

const (
	ContextLocaleKey = "locale"
	localeCookieName = "locale"
)

var supportedLocales = map[string]bool{"en": true, "hr": true}

// LocaleMiddleware resolves the request locale: explicit ?lang= wins and is
// remembered in a cookie, then the cookie, then the configured default. The
// resolved value lives in the request context only; there is no process-wide
// locale state.
func LocaleMiddleware(defaultLocale string) gin.HandlerFunc {
	if !supportedLocales[defaultLocale] {
		defaultLocale = "hr"
	}

	return func(c *gin.Context) {
		locale := defaultLocale

		if lang := c.Query("lang"); supportedLocales[lang] {
			locale = lang
			c.SetCookie(localeCookieName, lang, 365*24*3600, "/", "", false, false)
		} else if cookie, err := c.Cookie(localeCookieName); err == nil && supportedLocales[cookie] {
			locale = cookie
		}

		c.Set(ContextLocaleKey, locale)
		c.Header("Content-Language", locale)
		c.Next()
	}
}

// GetLocale extracts the request locale from the context.
func GetLocale(c *gin.Context) string {
	val, exists := c.Get(ContextLocaleKey)
	if !exists {
		return "hr"
	}

	locale, ok := val.(string)
	if !ok {
		return "hr"
	}
	return locale
}
