package documents

import (
	"bytes"
	"io"
	"net/http"

	"console-draw/core"
	"console-draw/export"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"
)

// MaxDocumentSize bounds a published drawing. A full 100x100 render is
// about 10KB.
const MaxDocumentSize = 1 << 20

type DocumentCreateResponse struct {
	ID string `json:"id"`
}

// HandleCreate stores the request body verbatim as a published drawing.
func HandleCreate(documentStore core.DocumentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := new(bytes.Buffer)
		if _, err := io.Copy(data, http.MaxBytesReader(w, r.Body, MaxDocumentSize)); err != nil {
			logrus.WithError(err).Warn("Failed to read drawing body")
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}

		id, err := documentStore.Create(r.Context(), &core.Document{Data: *data})
		if err != nil {
			logrus.WithError(err).Error("Failed to publish drawing")
			http.Error(w, "Failed to save", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, DocumentCreateResponse{ID: id})
	}
}

// HandleGet returns a published drawing as plain text.
func HandleGet(documentStore core.DocumentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		document, ok := lookup(documentStore, w, r)
		if !ok {
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write(document.Data.Bytes())
	}
}

// HandlePNG returns a published drawing rasterized as a PNG image.
func HandlePNG(documentStore core.DocumentStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		document, ok := lookup(documentStore, w, r)
		if !ok {
			return
		}

		var img bytes.Buffer
		if err := export.WritePNG(&img, document.Data.String(), export.DefaultOptions()); err != nil {
			logrus.WithError(err).Error("Failed to rasterize drawing")
			http.Error(w, "Failed to render image", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Write(img.Bytes())
	}
}

func lookup(documentStore core.DocumentStore, w http.ResponseWriter, r *http.Request) (*core.Document, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "document not found", http.StatusNotFound)
		return nil, false
	}

	document, err := documentStore.FindID(r.Context(), id)
	if err != nil {
		http.Error(w, "document not found", http.StatusNotFound)
		return nil, false
	}
	return document, true
}
