package sgsolar

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/PaesslerAG/jsonpath"
)

const viaCEPEnv = "SGS_VIACEP_URL"

var viaCEPFlag = flag.String("viacep-url", "",
	"Base URL of the ViaCEP address service.\n If missing it will read the environment variable \""+viaCEPEnv+"\", then default to the public instance.")

func viaCEPURL() string {
	if *viaCEPFlag != "" {
		return *viaCEPFlag
	}
	if v := os.Getenv(viaCEPEnv); v != "" {
		return v
	}
	return "https://viacep.com.br"
}

// ViaCEP resolves a Brazilian postal code (CEP) to its address fields.
type ViaCEP struct {
	BaseURL string
	Client  *http.Client
}

// NewViaCEP returns a client against the configured instance, with
// responses cached on disk with a daily expiry.
func NewViaCEP() *ViaCEP {
	return &ViaCEP{BaseURL: viaCEPURL(), Client: cachedClient()}
}

// Lookup returns the address registered for the CEP. ErrNoMatch when the
// service does not know it. Number and reference are not part of a CEP;
// they come back empty and the caller keeps whatever the operator typed.
func (v *ViaCEP) Lookup(ctx context.Context, cep string) (Address, error) {
	clean := onlyDigits(cep)
	if len(clean) != 8 {
		return Address{}, fmt.Errorf("CEP must have 8 digits, got %q", cep)
	}
	addr := fmt.Sprintf("%s/ws/%s/json/", v.BaseURL, clean)
	jobj, err := jget(ctx, v.Client, addr, "")
	if err != nil {
		return Address{}, fmt.Errorf("CEP lookup %q: %w", clean, err)
	}
	// ViaCEP signals an unknown CEP with {"erro": true} and a 200 status.
	if jerr, err := jsonpath.Get("$.erro", jobj); err == nil && jerr != nil && jerr != false {
		return Address{}, ErrNoMatch
	}
	return Address{
		CEP:          FormatCEP(clean),
		Street:       jsonPathString(jobj, "$.logradouro"),
		Neighborhood: jsonPathString(jobj, "$.bairro"),
		City:         jsonPathString(jobj, "$.localidade"),
		State:        jsonPathString(jobj, "$.uf"),
	}, nil
}
