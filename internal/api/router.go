package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"winequality/internal/explore"
	"winequality/internal/features"
	"winequality/internal/models"
)

const dashboardTitle = "Wine Quality Prediction"

type handler struct {
	backend Backend
	logger  *zap.Logger
}

// NewRouter registers the dashboard page, its static assets and the JSON
// endpoints. staticDir holds index.html; an empty value skips the page.
func NewRouter(backend Backend, logger *zap.Logger, staticDir string) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	registerValidators()
	h := &handler{backend: backend, logger: logger}

	r := gin.New()
	r.Use(requestLogger(logger), recovery(logger))

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.GET("/dashboard", func(c *gin.Context) {
			c.File(filepath.Join(staticDir, "index.html"))
		})
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/dashboard")
		})
	}
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/fields", h.fields)
	api.GET("/columns", h.columns)
	api.GET("/scatter", h.scatter)
	api.GET("/scatter.png", h.scatterPNG)
	api.GET("/correlation", h.correlation)
	api.GET("/metrics", h.metrics)
	api.GET("/summary", h.summary)

	r.POST("/predict", h.predict)
	return r
}

func (h *handler) fields(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"title": dashboardTitle, "fields": h.backend.Fields()})
}

func (h *handler) columns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"columns": h.backend.Columns()})
}

func (h *handler) scatter(c *gin.Context) {
	var q scatterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "problems": bindProblems(err)})
		return
	}
	x, _ := explore.Resolve(q.X)
	y, _ := explore.Resolve(q.Y)
	pts, err := h.backend.Scatter(x, y)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"title":  fmt.Sprintf("Correlation between %s and %s", x, y),
		"x":      x,
		"y":      y,
		"points": pts,
	})
}

func (h *handler) scatterPNG(c *gin.Context) {
	var q scatterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "problems": bindProblems(err)})
		return
	}
	img, err := h.backend.ScatterPNG(q.X, q.Y)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", img)
}

func (h *handler) correlation(c *gin.Context) {
	c.JSON(http.StatusOK, h.backend.Correlation())
}

func (h *handler) metrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.backend.Metrics())
}

func (h *handler) summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.backend.Summary())
}

// predict accepts the 11 inputs either as a JSON object or as form values.
func (h *handler) predict(c *gin.Context) {
	inputs, err := readInputs(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "problems": []string{err.Error()}})
		return
	}
	p, err := h.backend.Predict(inputs)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func readInputs(c *gin.Context) (map[string]string, error) {
	if c.ContentType() == gin.MIMEJSON {
		var body map[string]any
		dec := json.NewDecoder(c.Request.Body)
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			return nil, err
		}
		out := make(map[string]string, len(body))
		for k, v := range body {
			out[k] = inputString(v)
		}
		return out, nil
	}
	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(c.Request.PostForm))
	for k, vs := range c.Request.PostForm {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out, nil
}

// inputString renders a decoded JSON value the way ParseInputs expects:
// numbers and numeric strings parse, anything else is rejected there.
func inputString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}

func (h *handler) fail(c *gin.Context, err error) {
	var verr *features.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "problems": verr.Problems()})
	case errors.Is(err, features.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "problems": []string{err.Error()}})
	case errors.Is(err, explore.ErrUnknownColumn):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotReady):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		h.logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
