package httpserver

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// uploadHandler stores a product image under the upload dir with a random
// filename and returns the path the catalog can reference.
func uploadHandler(uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if uploadDir == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "uploads not configured"})
			return
		}
		file, err := c.FormFile("image")
		if err != nil {
			badRequest(c, "image file is required")
			return
		}
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedImageExts[ext] {
			badRequest(c, "unsupported image type")
			return
		}
		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			respondError(c, err)
			return
		}
		name := uuid.New().String() + ext
		if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, name)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"img": name, "url": "/uploads/" + name})
	}
}
