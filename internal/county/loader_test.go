package county

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/mycoleb/WashingtonMinimumWages/internal/fetcher"
)

// nationalDoc builds a small national boundary document containing the
// given (state, county) pairs, each with a one-square-degree polygon.
func nationalDoc(t *testing.T, pairs [][2]string) string {
	t.Helper()

	features := make([]map[string]interface{}, 0, len(pairs))
	for i, p := range pairs {
		x := float64(i)
		features = append(features, map[string]interface{}{
			"type": "Feature",
			"id":   p[0] + p[1],
			"properties": map[string]interface{}{
				"STATE":  p[0],
				"COUNTY": p[1],
			},
			"geometry": map[string]interface{}{
				"type": "Polygon",
				"coordinates": [][][]float64{{
					{-120 + x, 47}, {-120 + x, 48}, {-119 + x, 48}, {-119 + x, 47}, {-120 + x, 47},
				}},
			},
		})
	}

	doc, err := json.Marshal(map[string]interface{}{
		"type":     "FeatureCollection",
		"features": features,
	})
	require.NoError(t, err)
	return string(doc)
}

func newTestLoader(url string) *Loader {
	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent: "test-agent",
		Timeout:   5 * time.Second,
	})
	return NewLoader(f, url, "53")
}

func TestLoad_FiltersAndEnriches(t *testing.T) {
	doc := nationalDoc(t, [][2]string{
		{"06", "037"}, // Los Angeles, filtered out
		{"53", "033"}, // King
		{"41", "051"}, // Multnomah, filtered out
		{"53", "073"}, // Whatcom
		{"53", "999"}, // not in the name table
	})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, doc)
	}))
	defer srv.Close()

	fc, err := newTestLoader(srv.URL).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, fc.Features, 3)

	// Source document order is preserved.
	assert.Equal(t, "King", fc.Features[0].Properties[PropName])
	assert.Equal(t, "King County", fc.Features[0].Properties[PropNameLSAD])
	assert.Equal(t, "Whatcom", fc.Features[1].Properties[PropName])
	assert.Equal(t, "Whatcom County", fc.Features[1].Properties[PropNameLSAD])

	// Unmapped county code resolves to the sentinel.
	assert.Equal(t, UnknownName, fc.Features[2].Properties[PropName])
	assert.Equal(t, "Unknown County", fc.Features[2].Properties[PropNameLSAD])

	// Original code components stay in the property bag.
	assert.Equal(t, "53", fc.Features[0].Properties[PropState])
	assert.Equal(t, "033", fc.Features[0].Properties[PropCounty])
}

func TestLoad_GeometrySurvivesRoundTrip(t *testing.T) {
	doc := nationalDoc(t, [][2]string{{"53", "033"}})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, doc)
	}))
	defer srv.Close()

	fc, err := newTestLoader(srv.URL).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	require.NotNil(t, fc.Features[0].Geometry)

	out, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"coordinates"`)
}

func TestLoad_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestLoader(srv.URL).Load(context.Background())
	require.Error(t, err)

	// The transport status error surfaces unchanged, not wrapped in LoadError.
	var fe *fetcher.FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, http.StatusServiceUnavailable, fe.StatusCode)

	var le *LoadError
	assert.False(t, errors.As(err, &le))
}

func TestLoad_MalformedDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"type":"FeatureCollection","features":[{"bogus`)
	}))
	defer srv.Close()

	_, err := newTestLoader(srv.URL).Load(context.Background())
	require.Error(t, err)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.NotNil(t, le.Unwrap())
}

func TestLoad_UnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	_, err := newTestLoader(srv.URL).Load(context.Background())
	require.Error(t, err)

	var le *LoadError
	assert.True(t, errors.As(err, &le))
}

func TestFilterState_EmptyResult(t *testing.T) {
	doc := nationalDoc(t, [][2]string{{"06", "037"}, {"41", "051"}})

	var national geojson.FeatureCollection
	require.NoError(t, json.Unmarshal([]byte(doc), &national))

	out := FilterState(&national, "53")
	assert.Empty(t, out.Features)
}
