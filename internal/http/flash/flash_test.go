package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestFlashRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/set", func(c *gin.Context) {
		Success(c, "Book created successfully!")
		c.Status(http.StatusOK)
	})
	r.GET("/read", func(c *gin.Context) {
		m := Take(c)
		if m == nil {
			c.String(http.StatusOK, "none")
			return
		}
		c.String(http.StatusOK, "%s:%s", m.Kind, m.Text)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/set", nil))
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a flash cookie to be set")
	}

	w2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w2, req)

	if got := w2.Body.String(); got != "success:Book created successfully!" {
		t.Fatalf("flash read: got=%q", got)
	}

	// The message is one-shot: reading clears the cookie.
	cleared := false
	for _, c := range w2.Result().Cookies() {
		if c.Name == cookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected the flash cookie to be cleared after Take")
	}
}

func TestTakeWithoutPendingMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/read", func(c *gin.Context) {
		if m := Take(c); m != nil {
			t.Fatalf("unexpected message: %+v", m)
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/read", nil))
}

func TestTakeIgnoresGarbageCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/read", func(c *gin.Context) {
		if m := Take(c); m != nil {
			t.Fatalf("unexpected message: %+v", m)
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "%%%not-base64%%%"})
	r.ServeHTTP(w, req)
}
