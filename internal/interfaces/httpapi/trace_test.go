package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "handler span", in: "httpapi.Handler.GetStandings", want: true},
		{name: "middleware span", in: "httpapi.RequestLogging", want: false},
		{name: "helper span", in: "httpapi.writeError", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldCreateHTTPAPISpan(tt.in)
			if got != tt.want {
				t.Fatalf("shouldCreateHTTPAPISpan(%q)=%v want=%v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRouteAttrs(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/competitions/cup/standings?sport=%20Futbol%20", nil)
	req.SetPathValue("competitionID", " cup ")
	req.SetPathValue("matchID", "g1")

	attrs := competitionAttrs(req)
	if len(attrs) != 2 || attrs[0].Value.AsString() != "cup" || attrs[1].Value.AsString() != "Futbol" {
		t.Fatalf("unexpected competition attrs: %v", attrs)
	}
	if got := matchAttrs(req); len(got) != 1 || string(got[0].Key) != "match_id" || got[0].Value.AsString() != "g1" {
		t.Fatalf("unexpected match attrs: %v", got)
	}
}
