package server

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"
)

//go:embed static/*
var staticFiles embed.FS

// staticAsset is an embedded file with its response headers worked out once.
type staticAsset struct {
	data        []byte
	contentType string
	etag        string
}

// loadStaticAssets reads every embedded file under static/, keyed by its path
// relative to that folder (e.g. "css/console.css").
func loadStaticAssets() (map[string]staticAsset, error) {
	root, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("static sub filesystem: %w", err)
	}

	assets := make(map[string]staticAsset)
	err = fs.WalkDir(root, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(root, name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		assets[name] = newStaticAsset(name, data)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assets, nil
}

func newStaticAsset(name string, data []byte) staticAsset {
	ctype := mime.TypeByExtension(strings.ToLower(path.Ext(name)))
	if ctype == "" {
		ctype = http.DetectContentType(data)
	}
	// Ensure UTF-8 for text types when not present
	if strings.HasPrefix(ctype, "text/") && !strings.Contains(strings.ToLower(ctype), "charset=") {
		ctype += "; charset=utf-8"
	}
	sum := sha256.Sum256(data)
	return staticAsset{
		data:        data,
		contentType: ctype,
		etag:        `"` + hex.EncodeToString(sum[:8]) + `"`,
	}
}

// serveAsset writes the named asset, or 304 when the client already has it.
func (s *Server) serveAsset(w http.ResponseWriter, r *http.Request, name string) bool {
	asset, ok := s.assets[name]
	if !ok {
		return false
	}
	w.Header().Set("ETag", asset.etag)
	if r.Header.Get("If-None-Match") == asset.etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	w.Header().Set("Content-Type", asset.contentType)
	if _, err := w.Write(asset.data); err != nil {
		logError(r.Method, r.URL.Path, err.Error())
	}
	return true
}
