package browse

import (
	"errors"

	"bucketpath/core/logger"
	"bucketpath/feature/pathfs"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the browse endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the browse routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/buckets", h.HandleBuckets)
	app.Get("/ls/:bucket/*", h.HandleScandir)
	app.Get("/blobs/:bucket", h.HandleBlobs)
	app.Get("/exists/:bucket/*", h.HandleExists)
	app.Get("/stat/:bucket/*", h.HandleStat)
}

func pathParam(c *fiber.Ctx) pathfs.Path {
	return pathfs.NewPath(c.Params("bucket"), c.Params("*"))
}

// HandleBuckets lists all visible buckets.
func (h *Handler) HandleBuckets(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	names, err := h.service.Buckets(c.Context())
	if err != nil {
		l.Error("Bucket listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"buckets": names})
}

// HandleScandir lists the entries directly under the requested path.
func (h *Handler) HandleScandir(c *fiber.Ctx) error {
	path := pathParam(c)

	// Listing directly under a key means filtering by it as a prefix.
	prefix := path.Key()
	if prefix != "" {
		prefix += pathfs.Sep
	}

	entries := h.service.Scandir(c.Context(), path, prefix)
	return c.JSON(fiber.Map{
		"path":    path.String(),
		"entries": entries,
	})
}

// HandleBlobs lists objects flat, without directory folding.
func (h *Handler) HandleBlobs(c *fiber.Ctx) error {
	path := pathfs.NewPath(c.Params("bucket"), "")
	opts := pathfs.ListBlobsOptions{
		Prefix:    c.Query("prefix"),
		Delimiter: c.Query("delimiter"),
	}

	blobs := h.service.Blobs(c.Context(), path, opts)
	return c.JSON(fiber.Map{
		"path":  path.String(),
		"blobs": blobs,
	})
}

// HandleExists reports whether the path denotes an object or a prefix of one.
func (h *Handler) HandleExists(c *fiber.Ctx) error {
	path := pathParam(c)
	return c.JSON(fiber.Map{
		"path":   path.String(),
		"exists": h.service.Exists(c.Context(), path),
	})
}

// HandleStat returns the metadata of a single object.
func (h *Handler) HandleStat(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	path := pathParam(c)

	if path.Key() == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "object key required"})
	}

	info, err := h.service.Stat(c.Context(), path)
	if err != nil {
		if errors.Is(err, pathfs.ErrBucketNotExist) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Stat failed", zap.String("path", path.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if info == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "object not found"})
	}
	return c.JSON(info)
}
