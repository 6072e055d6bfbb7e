package sgsolar

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DocumentType distinguishes the two kinds of attachment the checklist
// accepts. Anything that is not an image is filed as a PDF.
type DocumentType string

const (
	DocImage DocumentType = "image"
	DocPDF   DocumentType = "pdf"
)

// DocumentCategory tags which checklist slot an attachment satisfies.
type DocumentCategory string

// The fixed checklist. The first three are collected at registration, the
// rest are required by the concessionaire for grid-connection approval.
const (
	CatIdentification  DocumentCategory = "identification"
	CatEnergyBill      DocumentCategory = "energyBill"
	CatOther           DocumentCategory = "other"
	CatART             DocumentCategory = "art"
	CatLocationMap     DocumentCategory = "locationMap"
	CatDiagram         DocumentCategory = "diagram"
	CatAnnex1          DocumentCategory = "annex1"
	CatMemorial        DocumentCategory = "memorial"
	CatHolderDoc       DocumentCategory = "holderDoc"
	CatPowerOfAttorney DocumentCategory = "powerOfAttorney"
	CatInverterCert    DocumentCategory = "inverterCert"
	CatTechRespDoc     DocumentCategory = "techRespDoc"
	CatOthersConc      DocumentCategory = "othersConc"
)

// DocumentCategories lists the checklist slots in form order.
func DocumentCategories() []DocumentCategory {
	return []DocumentCategory{
		CatIdentification, CatEnergyBill, CatOther,
		CatART, CatLocationMap, CatDiagram, CatAnnex1, CatMemorial,
		CatHolderDoc, CatPowerOfAttorney, CatInverterCert, CatTechRespDoc,
		CatOthersConc,
	}
}

// Known reports whether the category is one of the checklist slots.
// Unknown categories found in persisted data are preserved as-is so that a
// newer backup read by an older build never loses attachments; callers may
// warn about them.
func (c DocumentCategory) Known() bool {
	for _, v := range DocumentCategories() {
		if c == v {
			return true
		}
	}
	return false
}

// Label returns the operator-facing name of the category.
func (c DocumentCategory) Label() string {
	switch c {
	case CatIdentification:
		return "Doc. Identificação"
	case CatEnergyBill:
		return "Fatura de Energia"
	case CatOther:
		return "Outros Documentos"
	case CatART:
		return "ART / TRT"
	case CatLocationMap:
		return "Localização"
	case CatDiagram:
		return "Diagrama Unifilar"
	case CatAnnex1:
		return "Anexo I"
	case CatMemorial:
		return "Memorial Técnico"
	case CatHolderDoc:
		return "Doc. Titular"
	case CatPowerOfAttorney:
		return "Procuração"
	case CatInverterCert:
		return "Cert. Inversor"
	case CatTechRespDoc:
		return "Doc. Resp. Técnico"
	case CatOthersConc:
		return "Outros (Concessionária)"
	}
	return string(c)
}

// SavedDocument is the persisted form of an attachment: the payload is a
// self-describing data URI embedded in the client record.
type SavedDocument struct {
	ID         string           `json:"id"`
	CategoryID DocumentCategory `json:"categoryId"`
	Name       string           `json:"name"`
	Type       DocumentType     `json:"type"`
	Data       string           `json:"data"`
}

// EncodeDataURI builds a "data:<mime>;base64,<payload>" string.
func EncodeDataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI recovers the MIME type and raw bytes from a data URI.
func DecodeDataURI(s string) (mime string, data []byte, err error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URI")
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("data URI has no payload")
	}
	mime, ok = strings.CutSuffix(header, ";base64")
	if !ok {
		return "", nil, fmt.Errorf("data URI is not base64-encoded")
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("cannot decode data URI payload: %w", err)
	}
	return mime, data, nil
}
