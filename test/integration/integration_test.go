package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/iwvelando/living-cost/internal/server"
	"github.com/iwvelando/living-cost/pkg/format"
	"github.com/iwvelando/living-cost/pkg/livingcost"
	"github.com/iwvelando/living-cost/pkg/output"
	"github.com/iwvelando/living-cost/pkg/testutil"
	"go.uber.org/zap"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(server.NewHandler(zap.NewNop(), server.DefaultConfig(), "integration"))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, region string, size int) (int, output.ResultView) {
	t.Helper()

	body, err := json.Marshal(map[string]interface{}{"region": region, "householdSize": size})
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	resp, err := http.Post(srv.URL+"/api/calculate", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var view output.ResultView
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
	}
	return resp.StatusCode, view
}

func postForm(t *testing.T, srv *httptest.Server, region, size string) (int, string) {
	t.Helper()

	resp, err := http.PostForm(srv.URL+"/", url.Values{"region": {region}, "householdSize": {size}})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return resp.StatusCode, string(data)
}

// TestPublishedScenarios walks the documented example households through
// both the JSON API and the web form.
func TestPublishedScenarios(t *testing.T) {
	srv := newServer(t)

	tests := []struct {
		region     string
		size       int
		wantStatus int
		wantTotal  int64
	}{
		{"台北市", 1, http.StatusOK, 20379},
		{"新北市", 4, http.StatusOK, 67600},
		{"金門縣", 3, http.StatusOK, 43023},
		{"", 2, http.StatusUnprocessableEntity, 0},
		{"台中市", 21, http.StatusUnprocessableEntity, 0},
		{"南投縣", 0, http.StatusUnprocessableEntity, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.region, tt.size), func(t *testing.T) {
			status, view := postJSON(t, srv, tt.region, tt.size)
			if status != tt.wantStatus {
				t.Fatalf("api status = %d, expected %d", status, tt.wantStatus)
			}
			if status == http.StatusOK && view.TotalCost != tt.wantTotal {
				t.Fatalf("api total = %d, expected %d", view.TotalCost, tt.wantTotal)
			}

			formStatus, page := postForm(t, srv, tt.region, fmt.Sprint(tt.size))
			if formStatus != tt.wantStatus {
				t.Fatalf("form status = %d, expected %d", formStatus, tt.wantStatus)
			}
			if formStatus == http.StatusOK && !strings.Contains(page, format.Currency(tt.wantTotal)) {
				t.Fatalf("form page missing total %s", format.Currency(tt.wantTotal))
			}
		})
	}
}

// TestEveryRegionEverySize checks the API against the cost table for the
// whole accepted input domain.
func TestEveryRegionEverySize(t *testing.T) {
	srv := newServer(t)
	table := livingcost.Default()

	for _, region := range table.Regions() {
		cost, err := table.CostOf(region)
		if err != nil {
			t.Fatalf("CostOf(%s) error = %v", region, err)
		}
		for n := 1; n <= 20; n++ {
			status, view := postJSON(t, srv, region.String(), n)
			if status != http.StatusOK {
				t.Fatalf("%s/%d: status %d", region, n, status)
			}
			if view.TotalCost != cost*int64(n) {
				t.Fatalf("%s/%d: total %d, expected %d", region, n, view.TotalCost, cost*int64(n))
			}
		}
	}
}

// TestRegionListingMatchesTable makes sure the listing offered to the UI is
// exactly the set the calculator accepts.
func TestRegionListingMatchesTable(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/api/regions")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var view output.RegionsView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	table := livingcost.Default()
	for _, region := range table.Regions() {
		listed := testutil.FindRegion(view, region.String())
		if listed == nil {
			t.Fatalf("region %s missing from listing", region)
		}
		cost, _ := table.CostOf(region)
		if listed.PerPersonCost != cost {
			t.Errorf("region %s listed at %d, table has %d", region, listed.PerPersonCost, cost)
		}
	}

	for _, name := range []string{livingcost.GroupSpecialMunicipalities, livingcost.GroupTaiwanProvince, livingcost.GroupFujianProvince} {
		if testutil.FindGroup(view, name) == nil {
			t.Errorf("group %s missing from listing", name)
		}
	}
}
