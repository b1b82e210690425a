package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"accessmap/internal/selection"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// ErrNotFound reports a place id the directory does not know.
var ErrNotFound = errors.New("places: not found")

type GoogleDirectory struct {
	APIKey     string
	BaseURL    string
	httpClient *http.Client
}

func NewGoogleDirectory(apiKey string) *GoogleDirectory {
	return &GoogleDirectory{
		APIKey:     apiKey,
		BaseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
}

func (g *GoogleDirectory) Details(ctx context.Context, placeID string) (*Details, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "place_id,name,formatted_address,geometry,url")
	params.Set("key", g.APIKey)

	var res struct {
		Status string `json:"status"`
		Result struct {
			PlaceID          string `json:"place_id"`
			Name             string `json:"name"`
			FormattedAddress string `json:"formatted_address"`
			URL              string `json:"url"`
			Geometry         struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"result"`
	}

	if err := g.get(ctx, "/details/json", params, &res); err != nil {
		return nil, err
	}

	switch res.Status {
	case "OK":
	case "NOT_FOUND", "ZERO_RESULTS", "INVALID_REQUEST":
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("places details: status=%s", res.Status)
	}

	lat := res.Result.Geometry.Location.Lat
	lng := res.Result.Geometry.Location.Lng

	return &Details{
		PlaceID: res.Result.PlaceID,
		Name:    res.Result.Name,
		Address: res.Result.FormattedAddress,
		MapsURL: res.Result.URL,
		Lat:     &lat,
		Lng:     &lng,
	}, nil
}

func (g *GoogleDirectory) Nearby(ctx context.Context, lat, lng float64, radius int) ([]selection.Candidate, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", strconv.Itoa(radius))
	params.Set("key", g.APIKey)

	var res struct {
		Status  string `json:"status"`
		Results []struct {
			PlaceID  string   `json:"place_id"`
			Name     string   `json:"name"`
			Vicinity string   `json:"vicinity"`
			Types    []string `json:"types"`
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}

	if err := g.get(ctx, "/nearbysearch/json", params, &res); err != nil {
		return nil, err
	}

	switch res.Status {
	case "OK":
	case "ZERO_RESULTS":
		return nil, nil
	default:
		return nil, fmt.Errorf("places nearby: status=%s", res.Status)
	}

	candidates := make([]selection.Candidate, 0, len(res.Results))
	for _, r := range res.Results {
		candidates = append(candidates, selection.Candidate{
			PlaceID:  r.PlaceID,
			Name:     r.Name,
			Vicinity: r.Vicinity,
			Types:    r.Types,
			Lat:      r.Geometry.Location.Lat,
			Lng:      r.Geometry.Location.Lng,
		})
	}
	return candidates, nil
}

func (g *GoogleDirectory) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := g.BaseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("places request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("places request failed: http=%d body=%s", resp.StatusCode, string(raw))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("places decode: %w", err)
	}
	return nil
}
