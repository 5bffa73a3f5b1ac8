// Package testutil provides shared helpers for tests: an in-memory
// database, a controllable clock, and service/entity factories.
package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/jdewildt/Finance-Ledger-Backend/internal/repository"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/service"
)

// TestTime is the instant test clocks start at.
var TestTime = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

// Clock is a controllable clock for tests. Assign Time to travel.
type Clock struct {
	Time time.Time
}

// NewClock returns a Clock pinned at TestTime.
func NewClock() *Clock {
	return &Clock{Time: TestTime}
}

// Now returns the clock's current instant.
func (c *Clock) Now() time.Time { return c.Time }

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) { c.Time = c.Time.Add(d) }

// NewTestProfileService creates a ProfileService on the given test
// database with the given clock, serving the "test" profile.
func NewTestProfileService(t *testing.T, db *sql.DB, c *Clock) *service.ProfileService {
	t.Helper()

	repo, err := repository.NewSQLiteSnapshotRepository(db, "")
	if err != nil {
		t.Fatalf("Failed to create snapshot repository: %v", err)
	}
	svc, err := service.NewProfileService(repo, c, "test", 12)
	if err != nil {
		t.Fatalf("Failed to create profile service: %v", err)
	}
	return svc
}
