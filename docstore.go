package sgsolar

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	// Registered so image.Decode can read camera uploads in either format.
	_ "image/gif"
	_ "image/png"
)

// MaxAttachmentSize is the per-file ceiling. Oversized files are rejected
// individually, never the whole batch.
const MaxAttachmentSize = 10 << 20 // 10 MB

// maxImageDimension bounds the longer side of stored images.
const maxImageDimension = 1024

// jpegQuality is the re-encoding quality for downscaled images.
const jpegQuality = 70

// Attachment is a live, in-memory document during an editing session.
// Attachments are only flattened to SavedDocument form at save time.
type Attachment struct {
	ID       string
	Category DocumentCategory
	Name     string
	Type     DocumentType
	MIME     string
	Data     []byte
}

// FileInput is one file handed to Attach: original filename plus content.
type FileInput struct {
	Name string
	Data []byte
}

// Rejection explains why one file of a batch was not attached.
type Rejection struct {
	Name   string
	Reason error
}

// DocumentStore holds the attachments of a single client record while it is
// being edited. It is not persisted itself; Serialize flattens it into the
// client record at commit time.
type DocumentStore struct {
	attachments []Attachment
}

// NewDocumentStore returns an empty editing session.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// Attach processes a batch of files for one category. Images are downscaled
// to at most maxImageDimension on the longer side and re-encoded as JPEG;
// PDFs and any other payload pass through unchanged. Files over
// MaxAttachmentSize are rejected individually with the rest of the batch
// still processed.
func (s *DocumentStore) Attach(cat DocumentCategory, files []FileInput) (added []Attachment, rejected []Rejection) {
	for _, f := range files {
		if len(f.Data) > MaxAttachmentSize {
			rejected = append(rejected, Rejection{
				Name:   f.Name,
				Reason: fmt.Errorf("file is %d bytes, above the %d byte limit", len(f.Data), MaxAttachmentSize),
			})
			continue
		}
		att := Attachment{
			ID:       uuid.NewString(),
			Category: cat,
			Name:     f.Name,
			Type:     DocPDF,
			MIME:     "application/pdf",
			Data:     f.Data,
		}
		if mime := http.DetectContentType(f.Data); strings.HasPrefix(mime, "image/") {
			data, err := downscaleJPEG(f.Data)
			if err != nil {
				// An undecodable image is stored as-is, like the canvas
				// fallback in the original uploader.
				att.Type = DocImage
				att.MIME = mime
			} else {
				att.Type = DocImage
				att.MIME = "image/jpeg"
				att.Data = data
			}
		}
		s.attachments = append(s.attachments, att)
		added = append(added, att)
	}
	return added, rejected
}

// Remove detaches the file with the given id from the category. It reports
// whether anything was removed.
func (s *DocumentStore) Remove(cat DocumentCategory, id string) bool {
	for i, a := range s.attachments {
		if a.Category == cat && a.ID == id {
			s.attachments = append(s.attachments[:i], s.attachments[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveID detaches the file with the given id wherever it is filed. It
// reports whether anything was removed.
func (s *DocumentStore) RemoveID(id string) bool {
	for i, a := range s.attachments {
		if a.ID == id {
			s.attachments = append(s.attachments[:i], s.attachments[i+1:]...)
			return true
		}
	}
	return false
}

// Category returns the attachments of one category, in attach order.
func (s *DocumentStore) Category(cat DocumentCategory) []Attachment {
	var out []Attachment
	for _, a := range s.attachments {
		if a.Category == cat {
			out = append(out, a)
		}
	}
	return out
}

// Len returns the total number of attachments.
func (s *DocumentStore) Len() int { return len(s.attachments) }

// Serialize flattens every attachment to its persisted form. Called once at
// commit time; the result replaces the client's document list wholesale.
func (s *DocumentStore) Serialize() []SavedDocument {
	out := make([]SavedDocument, 0, len(s.attachments))
	for _, a := range s.attachments {
		out = append(out, SavedDocument{
			ID:         a.ID,
			CategoryID: a.Category,
			Name:       a.Name,
			Type:       a.Type,
			Data:       EncodeDataURI(a.MIME, a.Data),
		})
	}
	return out
}

// Deserialize reconstructs live attachments from their persisted form, used
// when opening an existing client for editing. A document whose payload
// does not decode aborts the load: a half-reconstructed session would
// silently drop files at the next save.
func (s *DocumentStore) Deserialize(docs []SavedDocument) error {
	attachments := make([]Attachment, 0, len(docs))
	for _, d := range docs {
		mime, data, err := DecodeDataURI(d.Data)
		if err != nil {
			return fmt.Errorf("document %q (%s): %w", d.Name, d.ID, err)
		}
		attachments = append(attachments, Attachment{
			ID:       d.ID,
			Category: d.CategoryID,
			Name:     d.Name,
			Type:     d.Type,
			MIME:     mime,
			Data:     data,
		})
	}
	s.attachments = attachments
	return nil
}

// downscaleJPEG decodes an image, scales it so the longer dimension is at
// most maxImageDimension, and re-encodes it as JPEG.
func downscaleJPEG(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if longer := max(w, h); longer > maxImageDimension {
		scale := float64(maxImageDimension) / float64(longer)
		w = int(float64(w) * scale)
		h = int(float64(h) * scale)
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
		src = dst
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("cannot encode image: %w", err)
	}
	return buf.Bytes(), nil
}
