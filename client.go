package sgsolar

import (
	"fmt"
	"strconv"
	"strings"
)

// ClientStatus is the commercial status of a client record.
type ClientStatus string

const (
	StatusActive   ClientStatus = "Ativo"
	StatusPending  ClientStatus = "Pendente"
	StatusInactive ClientStatus = "Inativo"
	StatusLead     ClientStatus = "Lead"
)

// ClientStatuses lists the valid statuses in display order.
func ClientStatuses() []ClientStatus {
	return []ClientStatus{StatusActive, StatusPending, StatusInactive, StatusLead}
}

// Known reports whether s is one of the fixed statuses. Persisted data may
// carry values outside the enumeration; they are preserved, not rejected.
func (s ClientStatus) Known() bool {
	for _, v := range ClientStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// ParseClientStatus parses a string into a ClientStatus.
func ParseClientStatus(s string) (ClientStatus, error) {
	if v := ClientStatus(s); v.Known() {
		return v, nil
	}
	return "", fmt.Errorf("unknown client status: %q", s)
}

// DocType identifies the kind of identity document on file.
type DocType string

const (
	DocCPF  DocType = "CPF"
	DocCNPJ DocType = "CNPJ"
	DocRG   DocType = "RG"
)

// ParseDocType parses a string into a DocType.
func ParseDocType(s string) (DocType, error) {
	switch DocType(strings.ToUpper(s)) {
	case DocCPF:
		return DocCPF, nil
	case DocCNPJ:
		return DocCNPJ, nil
	case DocRG:
		return DocRG, nil
	}
	return "", fmt.Errorf("unknown document type: %q", s)
}

// ConnectionType is the electrical connection of the consumer unit.
type ConnectionType string

const (
	SinglePhase ConnectionType = "Monofásico"
	TwoPhase    ConnectionType = "Bifásico"
	ThreePhase  ConnectionType = "Trifásico"
)

// ParseConnectionType parses a string into a ConnectionType.
func ParseConnectionType(s string) (ConnectionType, error) {
	switch ConnectionType(s) {
	case SinglePhase, TwoPhase, ThreePhase:
		return ConnectionType(s), nil
	}
	return "", fmt.Errorf("unknown connection type: %q", s)
}

// ProjectStatus is one step of the fixed project workflow.
type ProjectStatus string

const (
	ProjectAnalysis   ProjectStatus = "Em Análise"
	ProjectApproved   ProjectStatus = "Aprovado"
	ProjectInstalling ProjectStatus = "Em Instalação"
	ProjectInspection ProjectStatus = "Vistoria Solicitada"
	ProjectDone       ProjectStatus = "Finalizado"
)

// ProjectWorkflow lists the workflow steps in order.
func ProjectWorkflow() []ProjectStatus {
	return []ProjectStatus{ProjectAnalysis, ProjectApproved, ProjectInstalling, ProjectInspection, ProjectDone}
}

// Rank returns the position of the status in the workflow, or 0 for values
// outside the workflow (the original form treats those as the first step).
func (p ProjectStatus) Rank() int {
	for i, v := range ProjectWorkflow() {
		if p == v {
			return i
		}
	}
	return 0
}

// ParseProjectStatus parses a string into a ProjectStatus.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	for _, v := range ProjectWorkflow() {
		if ProjectStatus(s) == v {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown project status: %q", s)
}

// Address groups the editable address fields of a client.
type Address struct {
	CEP          string
	Street       string
	Number       string
	Neighborhood string
	City         string
	State        string
	Reference    string
}

// Client is one registered client/project. Field names and JSON keys follow
// the backup file format; all values are persisted as strings.
type Client struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`

	// Personal
	FullName  string       `json:"fullName"`
	Status    ClientStatus `json:"status"`
	DocType   DocType      `json:"docType"`
	DocNumber string       `json:"docNumber"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone"`
	Notes     string       `json:"notes"`

	// Address
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Reference    string `json:"reference"`

	// Technical installation
	Concessionaire string         `json:"concessionaire"`
	UC             string         `json:"uc"`
	InstallType    string         `json:"installType"`
	AvgConsumption string         `json:"avgConsumption"`
	ConnectionType ConnectionType `json:"connectionType"`
	Voltage        string         `json:"voltage"`
	Breaker        string         `json:"breaker"`

	// Location, derived from latitude/longitude. Cleared whenever the
	// address changes: the old coordinates no longer describe it.
	Latitude    string `json:"latitude"`
	Longitude   string `json:"longitude"`
	UTMZone     string `json:"utmZone"`
	UTMEasting  string `json:"utmEasting"`
	UTMNorthing string `json:"utmNorthing"`

	// Project & financial
	ProjectStatus ProjectStatus `json:"projectStatus,omitempty"`
	InstallDate   string        `json:"installDate,omitempty"`
	EquipmentList string        `json:"equipmentList,omitempty"`
	ContractValue string        `json:"contractValue,omitempty"`
	ProjectCost   string        `json:"projectCost,omitempty"`

	Documents []SavedDocument `json:"documents,omitempty"`
}

// Validate checks the fields required before a client can be saved.
func (c *Client) Validate() error {
	if strings.TrimSpace(c.FullName) == "" {
		return fmt.Errorf("client: full name is required")
	}
	if c.Status == "" {
		return fmt.Errorf("client: status is required")
	}
	return nil
}

// AddressFields returns the current address of the client.
func (c *Client) AddressFields() Address {
	return Address{
		CEP:          c.CEP,
		Street:       c.Street,
		Number:       c.Number,
		Neighborhood: c.Neighborhood,
		City:         c.City,
		State:        c.State,
		Reference:    c.Reference,
	}
}

// locationChanged reports whether the address fields that anchor coordinates
// changed between a and b. CEP and reference are descriptive only.
func locationChanged(a, b Address) bool {
	return a.Street != b.Street ||
		a.Number != b.Number ||
		a.Neighborhood != b.Neighborhood ||
		a.City != b.City ||
		a.State != b.State
}

// SetAddress replaces the address of the client. If any field that anchors
// the coordinates changed, the stored location is cleared; a fresh geocoding
// pass is expected to repopulate it asynchronously.
func (c *Client) SetAddress(a Address) {
	if locationChanged(c.AddressFields(), a) {
		c.ClearLocation()
	}
	c.CEP = a.CEP
	c.Street = a.Street
	c.Number = a.Number
	c.Neighborhood = a.Neighborhood
	c.City = a.City
	c.State = a.State
	c.Reference = a.Reference
}

// ClearLocation drops latitude, longitude and the derived UTM fields.
func (c *Client) ClearLocation() {
	c.Latitude = ""
	c.Longitude = ""
	c.UTMZone = ""
	c.UTMEasting = ""
	c.UTMNorthing = ""
}

// SetCoordinates stores the given coordinates and derives the UTM fields
// synchronously. Decimal commas are accepted. When either value does not
// parse as a number the raw strings are kept and the UTM fields cleared,
// never left stale.
func (c *Client) SetCoordinates(lat, lon string) {
	lat = strings.ReplaceAll(strings.TrimSpace(lat), ",", ".")
	lon = strings.ReplaceAll(strings.TrimSpace(lon), ",", ".")
	c.Latitude = lat
	c.Longitude = lon

	latN, errLat := strconv.ParseFloat(lat, 64)
	lonN, errLon := strconv.ParseFloat(lon, 64)
	if errLat != nil || errLon != nil {
		c.UTMZone = ""
		c.UTMEasting = ""
		c.UTMNorthing = ""
		return
	}
	utm := ToUTM(latN, lonN)
	c.UTMZone = utm.ZoneString()
	c.UTMEasting = strconv.FormatFloat(utm.Easting, 'f', 2, 64)
	c.UTMNorthing = strconv.FormatFloat(utm.Northing, 'f', 2, 64)
}

// HasCoordinates reports whether both latitude and longitude parse as numbers.
func (c *Client) HasCoordinates() bool {
	_, errLat := strconv.ParseFloat(c.Latitude, 64)
	_, errLon := strconv.ParseFloat(c.Longitude, 64)
	return errLat == nil && errLon == nil
}
