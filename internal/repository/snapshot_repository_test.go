package repository_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/jdewildt/Finance-Ledger-Backend/internal/apperrors"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/model"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/repository"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/testutil"
)

// testEncryptionKey is a fixed base64-encoded 32-byte Fernet key.
const testEncryptionKey = "QUFBQUFBQUFBQUFBQUFBQUFBQUFBQUFBQUFBQUFBQUE="

func sampleSnapshot() model.Snapshot {
	return model.Snapshot{
		Portfolios: []model.Portfolio{
			{
				ID:   "p1",
				Name: "Retirement",
				Investments: []model.Investment{
					{ID: "inv1", Name: "Index Fund", Type: model.InvestmentTypeFunds, InvestedAmount: 5000, CurrentValue: 6200, Active: true},
				},
			},
		},
		Transactions: []model.Transaction{
			{ID: "t1", InvestmentID: "inv1", Kind: model.TransactionBuy, Amount: 5000, Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		},
		SavedAt: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestSQLiteSnapshotRepository(t *testing.T) {
	t.Run("save and load roundtrip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo, err := repository.NewSQLiteSnapshotRepository(db, "")
		if err != nil {
			t.Fatalf("Failed to create repository: %v", err)
		}

		snap := sampleSnapshot()
		if err := repo.Save("alice", snap); err != nil {
			t.Fatalf("Failed to save snapshot: %v", err)
		}

		loaded, err := repo.Load("alice")
		if err != nil {
			t.Fatalf("Failed to load snapshot: %v", err)
		}
		if len(loaded.Portfolios) != 1 || loaded.Portfolios[0].Name != "Retirement" {
			t.Errorf("Unexpected portfolios: %+v", loaded.Portfolios)
		}
		if len(loaded.Portfolios[0].Investments) != 1 || loaded.Portfolios[0].Investments[0].CurrentValue != 6200 {
			t.Errorf("Unexpected investments: %+v", loaded.Portfolios[0].Investments)
		}
		if len(loaded.Transactions) != 1 || loaded.Transactions[0].Kind != model.TransactionBuy {
			t.Errorf("Unexpected transactions: %+v", loaded.Transactions)
		}
		if !loaded.SavedAt.Equal(snap.SavedAt) {
			t.Errorf("Expected SavedAt %v, got %v", snap.SavedAt, loaded.SavedAt)
		}
	})

	t.Run("load unknown profile returns not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo, err := repository.NewSQLiteSnapshotRepository(db, "")
		if err != nil {
			t.Fatalf("Failed to create repository: %v", err)
		}

		_, err = repo.Load("nobody")
		if !errors.Is(err, apperrors.ErrProfileNotFound) {
			t.Errorf("Expected ErrProfileNotFound, got %v", err)
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Errorf("Expected not-found category, got %v", err)
		}
	})

	t.Run("save replaces the previous snapshot", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo, err := repository.NewSQLiteSnapshotRepository(db, "")
		if err != nil {
			t.Fatalf("Failed to create repository: %v", err)
		}

		first := sampleSnapshot()
		if err := repo.Save("alice", first); err != nil {
			t.Fatalf("Failed to save first snapshot: %v", err)
		}
		second := sampleSnapshot()
		second.Portfolios[0].Name = "House Fund"
		if err := repo.Save("alice", second); err != nil {
			t.Fatalf("Failed to save second snapshot: %v", err)
		}

		loaded, err := repo.Load("alice")
		if err != nil {
			t.Fatalf("Failed to load snapshot: %v", err)
		}
		if loaded.Portfolios[0].Name != "House Fund" {
			t.Errorf("Expected replaced snapshot, got portfolio %q", loaded.Portfolios[0].Name)
		}
	})

	t.Run("profiles are isolated", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo, err := repository.NewSQLiteSnapshotRepository(db, "")
		if err != nil {
			t.Fatalf("Failed to create repository: %v", err)
		}

		if err := repo.Save("alice", sampleSnapshot()); err != nil {
			t.Fatalf("Failed to save snapshot: %v", err)
		}
		if _, err := repo.Load("bob"); !errors.Is(err, apperrors.ErrProfileNotFound) {
			t.Errorf("Expected ErrProfileNotFound for other profile, got %v", err)
		}
	})
}

func TestSQLiteSnapshotRepository_Encryption(t *testing.T) {
	t.Run("invalid key is rejected at construction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		if _, err := repository.NewSQLiteSnapshotRepository(db, "not-a-key"); err == nil {
			t.Error("Expected error for invalid encryption key")
		}
	})

	t.Run("encrypted roundtrip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo, err := repository.NewSQLiteSnapshotRepository(db, testEncryptionKey)
		if err != nil {
			t.Fatalf("Failed to create repository: %v", err)
		}

		if err := repo.Save("alice", sampleSnapshot()); err != nil {
			t.Fatalf("Failed to save snapshot: %v", err)
		}

		// The stored blob must not be readable JSON.
		var data []byte
		if err := db.QueryRow(`SELECT data FROM profile_snapshot WHERE profile_id = ?`, "alice").Scan(&data); err != nil {
			t.Fatalf("Failed to read raw blob: %v", err)
		}
		if bytes.Contains(data, []byte("Retirement")) {
			t.Error("Stored blob contains plaintext snapshot data")
		}

		loaded, err := repo.Load("alice")
		if err != nil {
			t.Fatalf("Failed to load encrypted snapshot: %v", err)
		}
		if loaded.Portfolios[0].Name != "Retirement" {
			t.Errorf("Unexpected portfolio after decrypt: %q", loaded.Portfolios[0].Name)
		}
	})

	t.Run("encrypted snapshot cannot be loaded without the key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		keyed, err := repository.NewSQLiteSnapshotRepository(db, testEncryptionKey)
		if err != nil {
			t.Fatalf("Failed to create repository: %v", err)
		}
		if err := keyed.Save("alice", sampleSnapshot()); err != nil {
			t.Fatalf("Failed to save snapshot: %v", err)
		}

		plain, err := repository.NewSQLiteSnapshotRepository(db, "")
		if err != nil {
			t.Fatalf("Failed to create repository: %v", err)
		}
		if _, err := plain.Load("alice"); !errors.Is(err, apperrors.ErrSnapshotLoad) {
			t.Errorf("Expected ErrSnapshotLoad, got %v", err)
		}
	})
}
