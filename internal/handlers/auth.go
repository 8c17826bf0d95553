package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionCookie = "bm_session"
	sessionTTL    = 8 * time.Hour
)

// hashOrRead accepts either a plaintext password or a pre-computed bcrypt hash.
func hashOrRead(password string) ([]byte, error) {
	if strings.HasPrefix(password, "$2a$") || strings.HasPrefix(password, "$2b$") || strings.HasPrefix(password, "$2y$") {
		return []byte(password), nil // already bcrypt
	}
	return bcrypt.GenerateFromPassword([]byte(password), 10)
}

// issueSession sets a signed session cookie
func (c *Controller) issueSession(w http.ResponseWriter) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "operator",
		"exp": time.Now().Add(sessionTTL).Unix(),
		"iat": time.Now().Unix(),
	})
	ss, _ := token.SignedString(c.jwtSecret)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    ss,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(sessionTTL.Seconds()),
	})
}

// validSession reports whether the request carries a valid session cookie
func (c *Controller) validSession(r *http.Request) bool {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return false
	}
	tok, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (any, error) { return c.jwtSecret, nil })
	return err == nil && tok.Valid
}

// RequireAuth middleware: page and API routes behind the operator gate all
// redirect to the login view when the session is missing or invalid.
func (c *Controller) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c.validSession(r) {
			next.ServeHTTP(w, r)
			return
		}
		http.Redirect(w, r, "/login", http.StatusFound)
	})
}

// HandleLoginPage renders the login form.
func (c *Controller) HandleLoginPage(w http.ResponseWriter, _ *http.Request) {
	c.renderLogin(w, http.StatusOK, "")
}

// HandleLogin checks the submitted password against the configured secret.
func (c *Controller) HandleLogin(w http.ResponseWriter, r *http.Request) {
	password := r.FormValue("password")
	if err := bcrypt.CompareHashAndPassword(c.passHash, []byte(password)); err != nil {
		c.renderLogin(w, http.StatusUnauthorized, "Invalid password")
		return
	}
	c.issueSession(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

// HandleLogout clears the session cookie.
func (c *Controller) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
	http.Redirect(w, r, "/login", http.StatusFound)
}

// HandleDashboard serves the dashboard page.
func (c *Controller) HandleDashboard(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.templates.ExecuteTemplate(w, "dashboard.html", nil); err != nil {
		c.logger.Error("failed to render dashboard", zap.Error(err))
	}
}

func (c *Controller) renderLogin(w http.ResponseWriter, status int, errMsg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.templates.ExecuteTemplate(w, "login.html", map[string]string{"Error": errMsg}); err != nil {
		c.logger.Error("failed to render login page", zap.Error(err))
	}
}
