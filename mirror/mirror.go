package mirror

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"folio/models"
	"folio/store"
)

// Path is where the mirror blob is exposed, matching the edge function the
// frontend already calls.
const Path = "/api/portfolio-data"

// Module is a bare key-value passthrough for the portfolio document: GET
// returns the stored JSON (or null), PUT overwrites it verbatim. No auth, no
// versioning; the local store stays the source of truth.
type Module struct {
	kv store.KV
}

func NewModule(kv store.KV) *Module {
	return &Module{kv: kv}
}

func (m *Module) RegisterRoutes(router *gin.Engine) {
	router.Any(Path, m.handle)
}

func corsHeaders(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET,PUT,OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type")
}

func (m *Module) handle(c *gin.Context) {
	corsHeaders(c)

	switch c.Request.Method {
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	case http.MethodGet:
		m.get(c)
	case http.MethodPut:
		m.put(c)
	default:
		c.String(http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (m *Module) get(c *gin.Context) {
	value, ok, err := m.kv.Get(models.KeyMirrorData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
		return
	}
	if !ok {
		value = "null"
	}
	c.Data(http.StatusOK, "application/json", []byte(value))
}

func (m *Module) put(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}
	if !json.Valid(body) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must be JSON"})
		return
	}
	if err := m.kv.Put(models.KeyMirrorData, string(body)); err != nil {
		log.Printf("mirror: storing document: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
