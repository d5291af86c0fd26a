package controllers

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"restaurant-backend/utils"
)

// Declared content types accepted for image uploads, mapped to the extension
// used when the original filename has none.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

const svgContentType = "image/svg+xml"

// UploadController handles image uploads and serves stored files
type UploadController struct {
	Files *utils.FileStore
}

// NewUploadController creates a new UploadController
func NewUploadController(files *utils.FileStore) *UploadController {
	return &UploadController{Files: files}
}

// UploadImage accepts a single multipart image (admin only)
func (uc *UploadController) UploadImage(w http.ResponseWriter, r *http.Request) {
	uc.upload(w, r, false)
}

// UploadLogo additionally accepts SVG, for header and footer logos (admin only)
func (uc *UploadController) UploadLogo(w http.ResponseWriter, r *http.Request) {
	uc.upload(w, r, true)
}

func (uc *UploadController) upload(w http.ResponseWriter, r *http.Request, allowSVG bool) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Failed to parse multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Failed to retrieve file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	typeExt, allowed := allowedImageTypes[contentType]
	if !allowed && allowSVG && contentType == svgContentType {
		allowed = true
		typeExt = ".svg"
	}
	if !allowed {
		http.Error(w, "Unsupported file type: "+contentType, http.StatusBadRequest)
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = typeExt
	}
	name := strings.ReplaceAll(uuid.NewString(), "-", "") + ext

	if err := uc.Files.Save(name, file); err != nil {
		http.Error(w, "Failed to store file: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"url": "/api/uploads/" + name})
}

// ServeUpload streams a stored file with a content type inferred from its
// extension
func (uc *UploadController) ServeUpload(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["filename"]

	f, err := uc.Files.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Error opening file", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	io.Copy(w, f)
}
