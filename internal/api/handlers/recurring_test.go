package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jdewildt/Finance-Ledger-Backend/internal/api/handlers"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/api/request"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/model"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/testutil"
)

// TestRecurringHandler_CreateObligation tests the POST /api/recurring endpoint.
func TestRecurringHandler_CreateObligation(t *testing.T) {
	t.Run("POST /api/recurring creates the obligation with its schedule", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProfileService(t, db, testutil.NewClock())
		handler := handlers.NewRecurringHandler(svc)

		body := request.CreateObligationRequest{
			Description:      "Rent",
			Amount:           1200,
			Direction:        "outflow",
			Category:         "housing",
			Frequency:        "monthly",
			StartDate:        "2024-01-31",
			InstallmentCount: 3,
		}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/recurring/", body)
		w := httptest.NewRecorder()

		// Execute
		handler.CreateObligation(w, req)

		// Assert
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		var response model.RecurringObligation
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(response.Installments) != 3 {
			t.Fatalf("Expected 3 installments, got %d", len(response.Installments))
		}
		// Month-end start dates clamp to the shorter months that follow.
		leapEnd := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
		if !response.Installments[1].ScheduledDate.Equal(leapEnd) {
			t.Errorf("Expected second installment on 2024-02-29, got %v", response.Installments[1].ScheduledDate)
		}
	})

	t.Run("POST /api/recurring with both stop conditions returns 400", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProfileService(t, db, testutil.NewClock())
		handler := handlers.NewRecurringHandler(svc)

		endDate := "2025-01-01"
		body := request.CreateObligationRequest{
			Description:      "Rent",
			Amount:           1200,
			Direction:        "outflow",
			Frequency:        "monthly",
			StartDate:        "2024-01-01",
			EndDate:          &endDate,
			InstallmentCount: 3,
		}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/recurring/", body)
		w := httptest.NewRecorder()

		// Execute
		handler.CreateObligation(w, req)

		// Assert
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
		if len(svc.ListObligations()) != 0 {
			t.Error("Invalid request still created an obligation")
		}
	})
}

// TestRecurringHandler_SettleInstallment tests the
// POST /api/recurring/{uuid}/installment/{sequence}/settle endpoint.
func TestRecurringHandler_SettleInstallment(t *testing.T) {
	t.Run("POST settle marks the installment settled", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProfileService(t, db, testutil.NewClock())
		handler := handlers.NewRecurringHandler(svc)
		ob := testutil.CreateMonthlyObligation(t, svc, "Rent", testutil.TestTime, 3)

		req := testutil.NewJSONRequestWithURLParams(t,
			http.MethodPost,
			"/api/recurring/"+ob.ID+"/installment/1/settle",
			request.SettleInstallmentRequest{},
			map[string]string{"uuid": ob.ID, "sequence": "1"},
		)
		w := httptest.NewRecorder()

		// Execute
		handler.SettleInstallment(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		var response model.Installment
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.Status != model.InstallmentSettled {
			t.Errorf("Expected settled, got %s", response.Status)
		}
		if response.SettledDate == nil {
			t.Error("Expected a settled date")
		}
	})

	t.Run("POST settle with non-positive sequence returns 400", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProfileService(t, db, testutil.NewClock())
		handler := handlers.NewRecurringHandler(svc)
		ob := testutil.CreateMonthlyObligation(t, svc, "Rent", testutil.TestTime, 3)

		req := testutil.NewJSONRequestWithURLParams(t,
			http.MethodPost,
			"/api/recurring/"+ob.ID+"/installment/0/settle",
			request.SettleInstallmentRequest{},
			map[string]string{"uuid": ob.ID, "sequence": "0"},
		)
		w := httptest.NewRecorder()

		// Execute
		handler.SettleInstallment(w, req)

		// Assert
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("POST settle on unknown obligation returns 404", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProfileService(t, db, testutil.NewClock())
		handler := handlers.NewRecurringHandler(svc)

		id := "00000000-0000-0000-0000-000000000000"
		req := testutil.NewJSONRequestWithURLParams(t,
			http.MethodPost,
			"/api/recurring/"+id+"/installment/1/settle",
			request.SettleInstallmentRequest{},
			map[string]string{"uuid": id, "sequence": "1"},
		)
		w := httptest.NewRecorder()

		// Execute
		handler.SettleInstallment(w, req)

		// Assert
		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

// TestRecurringHandler_EditInstallments tests the
// PUT /api/recurring/{uuid}/installment/{sequence} endpoint.
func TestRecurringHandler_EditInstallments(t *testing.T) {
	t.Run("PUT with all mode rewrites future installments", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProfileService(t, db, testutil.NewClock())
		handler := handlers.NewRecurringHandler(svc)
		ob := testutil.CreateMonthlyObligation(t, svc, "Rent", testutil.TestTime, 4)

		amount := 150.0
		req := testutil.NewJSONRequestWithURLParams(t,
			http.MethodPut,
			"/api/recurring/"+ob.ID+"/installment/2",
			request.EditInstallmentsRequest{Mode: "all", Amount: &amount},
			map[string]string{"uuid": ob.ID, "sequence": "2"},
		)
		w := httptest.NewRecorder()

		// Execute
		handler.EditInstallments(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		var response model.RecurringObligation
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.Amount != 150 {
			t.Errorf("Expected template amount 150, got %v", response.Amount)
		}
		for _, inst := range response.Installments {
			want := 150.0
			if inst.Sequence < 2 {
				want = 100
			}
			if inst.Amount != want {
				t.Errorf("Installment %d: expected amount %v, got %v", inst.Sequence, want, inst.Amount)
			}
		}
	})

	t.Run("PUT without any field returns 400", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestProfileService(t, db, testutil.NewClock())
		handler := handlers.NewRecurringHandler(svc)
		ob := testutil.CreateMonthlyObligation(t, svc, "Rent", testutil.TestTime, 3)

		req := testutil.NewJSONRequestWithURLParams(t,
			http.MethodPut,
			"/api/recurring/"+ob.ID+"/installment/1",
			request.EditInstallmentsRequest{Mode: "individual"},
			map[string]string{"uuid": ob.ID, "sequence": "1"},
		)
		w := httptest.NewRecorder()

		// Execute
		handler.EditInstallments(w, req)

		// Assert
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

// TestRecurringHandler_Sweep tests the POST /api/recurring/sweep endpoint.
func TestRecurringHandler_Sweep(t *testing.T) {
	// Setup
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestProfileService(t, db, testutil.NewClock())
	handler := handlers.NewRecurringHandler(svc)
	testutil.CreateMonthlyObligation(t, svc, "Rent", testutil.TestTime.AddDate(0, -2, 0), 3)

	req := httptest.NewRequest(http.MethodPost, "/api/recurring/sweep", nil)
	w := httptest.NewRecorder()

	// Execute
	handler.Sweep(w, req)

	// Assert
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var response map[string]int
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response["changed"] != 2 {
		t.Errorf("Expected 2 changed installments, got %d", response["changed"])
	}

	// The sweep is idempotent at the same instant.
	w = httptest.NewRecorder()
	handler.Sweep(w, httptest.NewRequest(http.MethodPost, "/api/recurring/sweep", nil))
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response["changed"] != 0 {
		t.Errorf("Expected 0 changes on repeat sweep, got %d", response["changed"])
	}
}
