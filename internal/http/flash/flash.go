package flash

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// One-shot advisory messages carried across a redirect in a short-lived
// cookie, base64-wrapped JSON so the text survives cookie encoding rules.

const cookieName = "portal_flash"

const (
	KindSuccess = "success"
	KindError   = "error"
)

type Message struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

func Success(c *gin.Context, text string) { set(c, KindSuccess, text) }
func Error(c *gin.Context, text string)   { set(c, KindError, text) }

func set(c *gin.Context, kind, text string) {
	raw, err := json.Marshal(Message{Kind: kind, Text: text})
	if err != nil {
		return
	}
	c.SetCookie(cookieName, base64.RawURLEncoding.EncodeToString(raw), 60, "/", "", false, true)
}

// Take reads and clears the pending message, if any.
func Take(c *gin.Context) *Message {
	val, err := c.Cookie(cookieName)
	if err != nil || val == "" {
		return nil
	}
	c.SetCookie(cookieName, "", -1, "/", "", false, true)
	decoded, err := base64.RawURLEncoding.DecodeString(val)
	if err != nil {
		return nil
	}
	var m Message
	if err := json.Unmarshal(decoded, &m); err != nil {
		return nil
	}
	return &m
}
