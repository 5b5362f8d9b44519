// Package server exposes the converters over HTTP. Every request gets its
// own diagnostics collector; the warnings it gathers are returned with the
// answer.
package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mapx-converter/internal/config"
	"mapx-converter/internal/diagnostic"
	"mapx-converter/internal/fromiso"
	"mapx-converter/internal/mapx"
	"mapx-converter/internal/toiso"
)

// Server holds the HTTP handlers.
type Server struct {
	cfg *config.Config
	log *zap.Logger
	now func() time.Time
}

// New returns a server. A nil logger discards logs.
func New(cfg *config.Config, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	return &Server{cfg: cfg, log: log, now: time.Now}
}

// Router builds the gin engine serving the API.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(s.log))
	router.Use(recovery(s.log))

	router.GET("/health", s.health)

	api := router.Group("/api/v1")
	{
		api.POST("/iso2mapx", s.isoToMapx)
		api.POST("/mapx2iso", s.mapxToISO)
		api.POST("/repair", s.repair)
	}

	return router
}

func (s *Server) health(c *gin.Context) {
	success(c, gin.H{"status": "ok"}, nil)
}

// request reads the body and prepares the diagnostics of one conversion.
func (s *Server) request(c *gin.Context) ([]byte, *diagnostic.Diagnostics, diagnostic.Sink, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.Server.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			fail(c, http.StatusRequestEntityTooLarge, "request body too large", nil)
		} else {
			fail(c, http.StatusBadRequest, "can't read request body", nil)
		}

		return nil, nil, nil, false
	}

	d := &diagnostic.Diagnostics{}
	sink := diagnostic.Tee(d, diagnostic.NewZapSink(s.log).With(zap.String("path", c.Request.URL.Path)))

	return body, d, sink, true
}

// strict reports whether warnings fail the request: the strict query
// parameter when given, the configuration otherwise.
func (s *Server) strict(c *gin.Context) bool {
	if v, ok := c.GetQuery("strict"); ok {
		if strict, err := strconv.ParseBool(v); err == nil {
			return strict
		}
	}

	return s.cfg.Convert.Strict
}

func (s *Server) finish(c *gin.Context, d *diagnostic.Diagnostics, data any) {
	if s.strict(c) && d.HasWarnings() {
		fail(c, http.StatusUnprocessableEntity, "conversion produced warnings", d.Warnings())
		return
	}

	success(c, data, d.Warnings())
}

func (s *Server) isoToMapx(c *gin.Context) {
	body, d, sink, ok := s.request(c)
	if !ok {
		return
	}

	m := fromiso.ConvertXML(string(body), sink)
	if m == nil {
		fail(c, http.StatusUnprocessableEntity, "conversion failed", d.Warnings())
		return
	}

	s.finish(c, d, m)
}

func (s *Server) mapxToISO(c *gin.Context) {
	body, d, sink, ok := s.request(c)
	if !ok {
		return
	}

	m, err := mapx.FromJSON(body, sink)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error(), d.Warnings())
		return
	}

	text, err := toiso.ConvertXML(m, sink, toiso.Options{
		Now:       s.now,
		StripHTML: s.cfg.StripHTML(),
		Indent:    s.cfg.Output.Indent,
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error(), d.Warnings())
		return
	}

	s.finish(c, d, ISOResult{XML: text})
}

func (s *Server) repair(c *gin.Context) {
	body, d, sink, ok := s.request(c)
	if !ok {
		return
	}

	m, err := mapx.FromJSON(body, sink)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error(), d.Warnings())
		return
	}

	s.finish(c, d, m)
}
