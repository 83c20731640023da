// Package holiday fetches public holidays from the Nager.Date API. Failures
// degrade to an empty result so calendar rendering never breaks on network
// problems.
package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Feriado mirrors one entry of the PublicHolidays response.
type Feriado struct {
	Date        string   `json:"date"`
	LocalName   string   `json:"localName"`
	Name        string   `json:"name"`
	CountryCode string   `json:"countryCode"`
	Fixed       bool     `json:"fixed"`
	Global      bool     `json:"global"`
	Counties    []string `json:"counties"`
	LaunchYear  *int     `json:"launchYear"`
	Types       []string `json:"types"`
}

// Client reads holidays for a fixed country. Results are not cached here;
// the calendar view caches them per displayed year.
type Client struct {
	baseURL string
	pais    string
	http    *http.Client
}

func NewClient(baseURL, pais string) *Client {
	return &Client{
		baseURL: baseURL,
		pais:    pais,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Feriados returns the public holidays of the given year, or an empty slice
// on any failure (logged, never propagated).
func (c *Client) Feriados(ctx context.Context, ano int) []Feriado {
	url := fmt.Sprintf("%s/PublicHolidays/%d/%s", c.baseURL, ano, c.pais)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Printf("[warn] feriados %d: %v", ano, err)
		return []Feriado{}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[warn] feriados %d: %v", ano, err)
		return []Feriado{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[warn] feriados %d: status %d", ano, resp.StatusCode)
		return []Feriado{}
	}

	var feriados []Feriado
	if err := json.NewDecoder(resp.Body).Decode(&feriados); err != nil {
		log.Printf("[warn] feriados %d: %v", ano, err)
		return []Feriado{}
	}
	return feriados
}

// Mapa indexes holidays by their "YYYY-MM-DD" date, keeping the local name.
func Mapa(feriados []Feriado) map[string]string {
	m := make(map[string]string, len(feriados))
	for _, f := range feriados {
		m[f.Date] = f.LocalName
	}
	return m
}
