package todoapi

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// storedCookie is the on-disk form of a session cookie.
type storedCookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Path    string    `json:"path,omitempty"`
	Expires time.Time `json:"expires,omitempty"`
}

// loadSession restores cookies from the session file into the jar.
// A missing or unreadable file simply means no session.
func (c *Client) loadSession() {
	if c.sessionPath == "" {
		return
	}
	data, err := os.ReadFile(c.sessionPath)
	if err != nil {
		return
	}
	var stored []storedCookie
	if err := json.Unmarshal(data, &stored); err != nil {
		c.log.Warn().Str("path", c.sessionPath).Msg("discarding unreadable session file")
		return
	}

	cookies := make([]*http.Cookie, 0, len(stored))
	for _, sc := range stored {
		cookies = append(cookies, &http.Cookie{
			Name:    sc.Name,
			Value:   sc.Value,
			Path:    sc.Path,
			Expires: sc.Expires,
		})
	}
	c.jar.SetCookies(c.base, cookies)
}

// saveSession writes the jar's cookies for the server to the session file
// with mode 0600.
func (c *Client) saveSession() {
	if c.sessionPath == "" {
		return
	}
	cookies := c.jar.Cookies(c.base)
	stored := make([]storedCookie, 0, len(cookies))
	for _, ck := range cookies {
		stored = append(stored, storedCookie{
			Name:    ck.Name,
			Value:   ck.Value,
			Path:    ck.Path,
			Expires: ck.Expires,
		})
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(c.sessionPath), 0700); err != nil {
		c.log.Warn().Err(err).Msg("cannot create config directory")
		return
	}
	if err := os.WriteFile(c.sessionPath, data, 0600); err != nil {
		c.log.Warn().Err(err).Msg("cannot persist session")
	}
}

// ClearSession drops the stored session file. The in-memory jar is left
// alone; the server has already invalidated the cookie on logout.
func (c *Client) ClearSession() {
	if c.sessionPath == "" {
		return
	}
	if err := os.Remove(c.sessionPath); err != nil && !os.IsNotExist(err) {
		c.log.Warn().Err(err).Msg("cannot remove session file")
	}
}
