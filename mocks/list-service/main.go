// Command list-service is a stand-in for the list-management service used by
// local runs and the e2e stack. It knows one open list.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
)

const seededList = "0042000123"

type query struct {
	ListCode string `json:"listCode"`
	StoreID  string `json:"storeId"`
}

type envelope struct {
	IsSuccessful bool   `json:"isSuccessful"`
	ErrorCode    int    `json:"errorCode"`
	Message      string `json:"message,omitempty"`
	Data         struct {
		Lists []map[string]any `json:"lists"`
	} `json:"data"`
}

func main() {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8090"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /lists/query", handleQuery)
	log.Printf("list-service mock listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}

func handleQuery(w http.ResponseWriter, r *http.Request) {
	var q query
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	var resp envelope
	if q.ListCode == seededList {
		resp.IsSuccessful = true
		resp.Data.Lists = []map[string]any{seeded()}
	} else {
		resp.ErrorCode = 2
		resp.Message = "lista non trovata"
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func seeded() map[string]any {
	return map[string]any{
		"list_code":             seededList,
		"mother":                map[string]string{"name": "Anna", "surname": "Rossi"},
		"father":                map[string]string{"name": "Marco", "surname": "Bianchi"},
		"email":                 "anna@example.com",
		"open_date":             "2026-01-10",
		"close_date":            nil,
		"expiration_date":       "2027-01-10",
		"is_closed":             false,
		"donation_total_amount": "150.00",
		"fidelity_code":         "0400123456789",
		"sbs":                   "0042",
		"items": []map[string]any{
			{"alpha_code": "100200", "detail_id": 1, "qty": 2, "unit_price": "19.90", "available_qty": 2, "mandatory": 0, "participate": 1, "importance": 1, "name": "Body neonato"},
			{"alpha_code": "100300", "detail_id": 2, "qty": 1, "unit_price": "249.00", "available_qty": 1, "mandatory": 1, "participate": 1, "importance": 3, "name": "Passeggino"},
			{"alpha_code": "100400", "detail_id": 3, "qty": 1, "unit_price": "34.50", "available_qty": 0, "mandatory": 0, "participate": 0, "importance": 0, "name": "Scaldabiberon"},
		},
	}
}
