package sgsolar

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

// pngImage encodes a WxH PNG for attachment tests.
func pngImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 2 {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("cannot encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestAttachRejectsOversizedFiles(t *testing.T) {
	store := NewDocumentStore()

	files := []FileInput{
		{Name: "fatura.pdf", Data: []byte("%PDF-1.4 fake invoice")},
		{Name: "scan-gigante.pdf", Data: make([]byte, MaxAttachmentSize+1)},
	}
	added, rejected := store.Attach(CatEnergyBill, files)

	// The oversized file is rejected alone, the rest of the batch goes in.
	if len(added) != 1 || added[0].Name != "fatura.pdf" {
		t.Errorf("added = %+v, want only fatura.pdf", added)
	}
	if len(rejected) != 1 || rejected[0].Name != "scan-gigante.pdf" {
		t.Fatalf("rejected = %+v, want only scan-gigante.pdf", rejected)
	}
	if rejected[0].Reason == nil {
		t.Errorf("rejection carries no reason")
	}
}

func TestAttachDownscalesImages(t *testing.T) {
	store := NewDocumentStore()

	added, rejected := store.Attach(CatLocationMap, []FileInput{
		{Name: "croqui.png", Data: pngImage(t, 2048, 512)},
	})
	if len(rejected) != 0 {
		t.Fatalf("rejected: %+v", rejected)
	}
	att := added[0]
	if att.Type != DocImage || att.MIME != "image/jpeg" {
		t.Fatalf("attachment = %s/%s, want a re-encoded JPEG", att.Type, att.MIME)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(att.Data))
	if err != nil {
		t.Fatalf("stored payload is not a decodable image: %v", err)
	}
	if cfg.Width != 1024 || cfg.Height != 256 {
		t.Errorf("stored image is %dx%d, want 1024x256", cfg.Width, cfg.Height)
	}
}

func TestAttachKeepsSmallImagesDecodable(t *testing.T) {
	store := NewDocumentStore()

	added, _ := store.Attach(CatOther, []FileInput{
		{Name: "foto.png", Data: pngImage(t, 100, 80)},
	})
	cfg, _, err := image.DecodeConfig(bytes.NewReader(added[0].Data))
	if err != nil {
		t.Fatalf("stored payload is not a decodable image: %v", err)
	}
	// Under the limit, no resize; still normalized to JPEG.
	if cfg.Width != 100 || cfg.Height != 80 {
		t.Errorf("stored image is %dx%d, want 100x80", cfg.Width, cfg.Height)
	}
}

func TestAttachPDFPassthrough(t *testing.T) {
	store := NewDocumentStore()
	payload := []byte("%PDF-1.7 artefato")

	added, _ := store.Attach(CatART, []FileInput{{Name: "art.pdf", Data: payload}})
	att := added[0]
	if att.Type != DocPDF {
		t.Errorf("type = %s, want pdf", att.Type)
	}
	if !bytes.Equal(att.Data, payload) {
		t.Errorf("PDF payload was altered")
	}
}

func TestRemoveAndCategory(t *testing.T) {
	store := NewDocumentStore()
	store.Attach(CatIdentification, []FileInput{{Name: "rg.pdf", Data: []byte("%PDF-1.4 rg")}})
	added, _ := store.Attach(CatEnergyBill, []FileInput{{Name: "fatura.pdf", Data: []byte("%PDF-1.4 f")}})

	if got := len(store.Category(CatEnergyBill)); got != 1 {
		t.Fatalf("category has %d files, want 1", got)
	}
	// Wrong category, nothing removed.
	if store.Remove(CatIdentification, added[0].ID) {
		t.Errorf("removed a file through the wrong category")
	}
	if !store.Remove(CatEnergyBill, added[0].ID) {
		t.Errorf("cannot remove an attached file")
	}
	if store.Len() != 1 {
		t.Errorf("store has %d files after removal, want 1", store.Len())
	}

	if store.RemoveID("no-such-id") {
		t.Errorf("RemoveID removed something for an unknown id")
	}
	remaining := store.Category(CatIdentification)[0]
	if !store.RemoveID(remaining.ID) || store.Len() != 0 {
		t.Errorf("RemoveID did not detach %s", remaining.ID)
	}
}

func TestSerializeDeserialize(t *testing.T) {
	store := NewDocumentStore()
	store.Attach(CatDiagram, []FileInput{{Name: "unifilar.pdf", Data: []byte("%PDF-1.4 diagrama")}})

	docs := store.Serialize()
	if len(docs) != 1 {
		t.Fatalf("serialized %d documents, want 1", len(docs))
	}
	if !strings.HasPrefix(docs[0].Data, "data:application/pdf;base64,") {
		t.Errorf("payload is not a PDF data URI: %.40q", docs[0].Data)
	}

	reopened := NewDocumentStore()
	if err := reopened.Deserialize(docs); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	got := reopened.Category(CatDiagram)
	if len(got) != 1 || got[0].Name != "unifilar.pdf" || got[0].MIME != "application/pdf" {
		t.Errorf("round trip lost the attachment: %+v", got)
	}
	if !bytes.Equal(got[0].Data, []byte("%PDF-1.4 diagrama")) {
		t.Errorf("round trip altered the payload")
	}

	// A corrupt payload aborts the whole load.
	docs[0].Data = "not a data uri"
	if err := NewDocumentStore().Deserialize(docs); err == nil {
		t.Errorf("corrupt payload accepted")
	}
}

func TestDataURI(t *testing.T) {
	uri := EncodeDataURI("image/jpeg", []byte{0xff, 0xd8, 0xff})
	mime, data, err := DecodeDataURI(uri)
	if err != nil {
		t.Fatalf("DecodeDataURI: %v", err)
	}
	if mime != "image/jpeg" || !bytes.Equal(data, []byte{0xff, 0xd8, 0xff}) {
		t.Errorf("round trip = %q %v", mime, data)
	}

	for _, bad := range []string{"", "data:;", "data:text/plain,abc", "http://x"} {
		if _, _, err := DecodeDataURI(bad); err == nil {
			t.Errorf("DecodeDataURI(%q) accepted", bad)
		}
	}
}

func TestDocumentCategories(t *testing.T) {
	cats := DocumentCategories()
	if len(cats) != 13 {
		t.Fatalf("checklist has %d slots, want 13", len(cats))
	}
	for _, c := range cats {
		if !c.Known() {
			t.Errorf("listed category %q not Known()", c)
		}
		if c.Label() == string(c) {
			t.Errorf("category %q has no label", c)
		}
	}
	if DocumentCategory("homologacao2030").Known() {
		t.Errorf("unknown category reported as known")
	}
	// Unknown categories keep their raw id as label, never lost.
	if DocumentCategory("homologacao2030").Label() != "homologacao2030" {
		t.Errorf("unknown category label mangled")
	}
}
