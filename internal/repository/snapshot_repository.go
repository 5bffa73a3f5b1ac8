// Package repository implements the persistence gateway: whole-profile
// snapshot load/save on SQLite. The core never touches the storage
// medium directly; it only sees this load/save contract.
package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/fernet/fernet-go"

	"github.com/jdewildt/Finance-Ledger-Backend/internal/apperrors"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/model"
)

// SnapshotRepository is the persistence gateway contract consumed by the
// service layer. The whole snapshot is the unit of durability; there is
// no partial-entity persistence.
type SnapshotRepository interface {
	Load(profileID string) (model.Snapshot, error)
	Save(profileID string, snap model.Snapshot) error
}

// SQLiteSnapshotRepository stores one serialized snapshot row per
// profile. When an encryption key is configured the blob is encrypted
// at rest with Fernet.
type SQLiteSnapshotRepository struct {
	db  *sql.DB
	key *fernet.Key
}

// NewSQLiteSnapshotRepository creates a repository on the given database.
// encryptionKey is an optional base64 Fernet key; an empty string stores
// snapshots in plaintext.
func NewSQLiteSnapshotRepository(db *sql.DB, encryptionKey string) (*SQLiteSnapshotRepository, error) {
	repo := &SQLiteSnapshotRepository{db: db}
	if encryptionKey != "" {
		key, err := fernet.DecodeKey(encryptionKey)
		if err != nil {
			return nil, fmt.Errorf("invalid snapshot encryption key: %w", err)
		}
		repo.key = key
	}
	return repo, nil
}

// Load reads the snapshot stored for a profile. Returns
// apperrors.ErrProfileNotFound when no snapshot has been saved yet.
func (r *SQLiteSnapshotRepository) Load(profileID string) (model.Snapshot, error) {
	query := `
          SELECT data, encrypted
          FROM profile_snapshot
          WHERE profile_id = ?
      `
	var data []byte
	var encrypted bool

	err := r.db.QueryRow(query, profileID).Scan(&data, &encrypted)
	if err == sql.ErrNoRows {
		return model.Snapshot{}, apperrors.ErrProfileNotFound
	}
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: %v", apperrors.ErrSnapshotLoad, err)
	}

	if encrypted {
		if r.key == nil {
			return model.Snapshot{}, fmt.Errorf("%w: snapshot is encrypted but no key is configured", apperrors.ErrSnapshotLoad)
		}
		data = fernet.VerifyAndDecrypt(data, 0, []*fernet.Key{r.key})
		if data == nil {
			return model.Snapshot{}, fmt.Errorf("%w: snapshot decryption failed", apperrors.ErrSnapshotLoad)
		}
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: %v", apperrors.ErrSnapshotLoad, err)
	}
	return snap, nil
}

// Save durably stores the snapshot for a profile, replacing any
// previous snapshot atomically in a single statement.
func (r *SQLiteSnapshotRepository) Save(profileID string, snap model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrSnapshotSave, err)
	}

	encrypted := false
	if r.key != nil {
		data, err = fernet.EncryptAndSign(data, r.key)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrSnapshotSave, err)
		}
		encrypted = true
	}

	query := `
          INSERT INTO profile_snapshot (profile_id, data, encrypted, updated_at)
          VALUES (?, ?, ?, ?)
          ON CONFLICT(profile_id) DO UPDATE SET
              data = excluded.data,
              encrypted = excluded.encrypted,
              updated_at = excluded.updated_at
      `
	if _, err := r.db.Exec(query, profileID, data, encrypted, snap.SavedAt); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrSnapshotSave, err)
	}
	return nil
}
