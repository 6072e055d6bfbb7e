package sgsolar

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// ErrNoMatch is returned by lookups that complete but find nothing. It is
// not a fault: address and technical data stay usable without coordinates.
var ErrNoMatch = errors.New("no match")

const nominatimEnv = "SGS_NOMINATIM_URL"

var nominatimFlag = flag.String("nominatim-url", "",
	"Base URL of the Nominatim geocoding service.\n If missing it will read the environment variable \""+nominatimEnv+"\", then default to the public instance.")

func nominatimURL() string {
	if *nominatimFlag != "" {
		return *nominatimFlag
	}
	if v := os.Getenv(nominatimEnv); v != "" {
		return v
	}
	return "https://nominatim.openstreetmap.org"
}

// Geocoder resolves a free-form address query to coordinates.
type Geocoder interface {
	Search(ctx context.Context, query string) (lat, lon float64, err error)
}

// Nominatim is a Geocoder backed by a Nominatim instance.
type Nominatim struct {
	BaseURL   string
	UserAgent string
	Client    *http.Client
}

// NewNominatim returns a geocoder against the configured instance, with
// responses cached on disk with a daily expiry.
func NewNominatim() *Nominatim {
	return &Nominatim{
		BaseURL:   nominatimURL(),
		UserAgent: "sgsolar/1.0",
		Client:    cachedClient(),
	}
}

// Search queries the service for the first match of the query.
func (n *Nominatim) Search(ctx context.Context, query string) (lat, lon float64, err error) {
	addr := fmt.Sprintf("%s/search?format=json&q=%s&limit=1", n.BaseURL, url.QueryEscape(query))
	jobj, err := jget(ctx, n.Client, addr, n.UserAgent)
	if err != nil {
		return 0, 0, fmt.Errorf("geocoding %q: %w", query, err)
	}
	lat, err = jsonPathFloat(jobj, "$[0].lat")
	if err != nil {
		return 0, 0, ErrNoMatch
	}
	lon, err = jsonPathFloat(jobj, "$[0].lon")
	if err != nil {
		return 0, 0, ErrNoMatch
	}
	return lat, lon, nil
}

// BuildGeocodeQuery assembles the lookup query from an address the way the
// registration form did: the non-empty parts joined with ", " and anchored
// to "Brasil". The boolean is false unless street, number and city are all
// present, the precondition for an automatic lookup.
func BuildGeocodeQuery(a Address) (string, bool) {
	if a.Street == "" || a.Number == "" || a.City == "" {
		return "", false
	}
	parts := make([]string, 0, 6)
	for _, p := range []string{a.Street, a.Number, a.Neighborhood, a.City, a.State} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	parts = append(parts, "Brasil")
	return strings.Join(parts, ", "), true
}

// jget performs an HTTP GET and decodes the JSON response into a generic
// value suitable for jsonpath extraction.
func jget(ctx context.Context, client *http.Client, addr, userAgent string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("cannot parse response: %w", err)
	}
	return jobj, nil
}

// jsonPathFloat extracts a numeric value at path, accepting both JSON
// numbers and numeric strings (Nominatim returns coordinates as strings).
func jsonPathFloat(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error extracting %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer
	// or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("value at %q is not numeric: %q", path, v)
		}
		return f, nil
	}
	return 0, fmt.Errorf("value at %q is not numeric: %v", path, jval)
}

// jsonPathString extracts a string value at path; absent values come back
// as the empty string rather than an error.
func jsonPathString(jobj any, path string) string {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return ""
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, _ := jval.(string)
	return s
}
