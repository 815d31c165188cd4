package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	tok, err := GenerateToken("Yanara", "yanara@example.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := ParseToken(tok, testSecret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Name != "Yanara" || claims.Email != "yanara@example.com" {
		t.Fatalf("claims = %+v", claims)
	}

	if _, err := ParseToken(tok, "other-secret"); err == nil {
		t.Fatal("token accepted with wrong secret")
	}
}

func TestTokenExpired(t *testing.T) {
	tok, err := GenerateToken("a", "a@b.c", testSecret, -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(tok, testSecret); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestTokenRejectsNoneAlg(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, SessionClaims{Email: "x"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(raw, testSecret); err == nil {
		t.Fatal("alg=none accepted")
	}
}

func TestGenerateTokenNeedsSecret(t *testing.T) {
	if _, err := GenerateToken("a", "b", "", time.Hour); err == nil {
		t.Fatal("expected error without secret")
	}
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", AuthMiddleware(testSecret), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("email"))
	})

	tok, _ := GenerateToken("Y", "y@example.com", testSecret, time.Hour)

	tests := []struct {
		name   string
		header string
		query  string
		want   int
	}{
		{"no token", "", "", http.StatusUnauthorized},
		{"garbage", "Bearer nope", "", http.StatusUnauthorized},
		{"bearer header", "Bearer " + tok, "", http.StatusOK},
		{"query param", "", tok, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := "/x"
			if tt.query != "" {
				url += "?token=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, url, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
			if tt.want == http.StatusOK && w.Body.String() != "y@example.com" {
				t.Errorf("email in context = %q", w.Body.String())
			}
		})
	}
}
