//go:build integration

package postgres

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Vinayak4780/Guard/internal/domain"
	"github.com/Vinayak4780/Guard/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := Migrate(ctx, testPool); err != nil {
		fmt.Println("Migrate:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `TRUNCATE TABLE scan_events, qr_locations, identities CASCADE`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func seedLocation(t *testing.T, id, area string) *domain.QRLocation {
	t.Helper()
	loc := &domain.QRLocation{ID: id, AreaID: area, Label: area, SupervisorID: uuid.New()}
	if err := NewQRLocationRepo(testPool, testLogger()).Create(context.Background(), loc); err != nil {
		t.Fatalf("seed location: %v", err)
	}
	return loc
}

func TestMigrate_Idempotent(t *testing.T) {
	if err := Migrate(context.Background(), testPool); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestQRLocation_CreateGet_Unbound(t *testing.T) {
	truncateAll(t)

	repo := NewQRLocationRepo(testPool, testLogger())
	seedLocation(t, "QR-A1", "area-1")

	got, err := repo.Get(context.Background(), "QR-A1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Bound() || got.BoundAt != nil {
		t.Fatalf("new location must be unbound: %+v", got)
	}

	byArea, err := repo.GetByArea(context.Background(), "area-1")
	if err != nil || byArea.ID != "QR-A1" {
		t.Fatalf("GetByArea: %v %+v", err, byArea)
	}

	if _, err := repo.Get(context.Background(), "QR-NOPE"); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestQRLocation_OnePerArea(t *testing.T) {
	truncateAll(t)

	seedLocation(t, "QR-A1", "area-1")
	err := NewQRLocationRepo(testPool, testLogger()).Create(context.Background(),
		&domain.QRLocation{ID: "QR-A2", AreaID: "area-1", SupervisorID: uuid.New()})
	if !errors.Is(err, e.ErrUniqueViolation) {
		t.Fatalf("expected ErrUniqueViolation, got %v", err)
	}
}

func TestQRLocation_BindCoordinates_CompareAndSet(t *testing.T) {
	truncateAll(t)

	ctx := context.Background()
	repo := NewQRLocationRepo(testPool, testLogger())
	seedLocation(t, "QR-A1", "area-1")

	var won, lost int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.BindCoordinates(ctx, "QR-A1", domain.GeoPoint{Lat: 19.0760 + float64(i)/10000, Lng: 72.8777}, time.Now().UTC())
			switch {
			case err == nil:
				atomic.AddInt32(&won, 1)
			case errors.Is(err, e.ErrConflict):
				atomic.AddInt32(&lost, 1)
			default:
				t.Errorf("bind %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	if won != 1 || lost != 9 {
		t.Fatalf("expected exactly one winner, got won=%d lost=%d", won, lost)
	}

	got, err := repo.Get(ctx, "QR-A1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.Bound() || got.BoundAt == nil {
		t.Fatalf("expected bound location: %+v", got)
	}

	if err := repo.BindCoordinates(ctx, "QR-NOPE", domain.GeoPoint{}, time.Now()); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestQRLocation_List_Pagination(t *testing.T) {
	truncateAll(t)

	repo := NewQRLocationRepo(testPool, testLogger())
	for i := 0; i < 3; i++ {
		loc := &domain.QRLocation{
			ID:           fmt.Sprintf("QR-L%d", i),
			AreaID:       fmt.Sprintf("area-%d", i),
			SupervisorID: uuid.New(),
			CreatedAt:    time.Date(2025, 1, 1, 0, 0, i, 0, time.UTC),
		}
		if err := repo.Create(context.Background(), loc); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	list, total, err := repo.List(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 || len(list) != 2 {
		t.Fatalf("expected 2 of 3, got %d of %d", len(list), total)
	}
	if list[0].CreatedAt.Before(list[1].CreatedAt) {
		t.Fatalf("expected DESC order by created_at")
	}
}

func TestScanEvent_SaveListStats(t *testing.T) {
	truncateAll(t)

	ctx := context.Background()
	seedLocation(t, "QR-A1", "area-1")
	events := NewScanEventRepo(testPool, testLogger())
	stats := NewStats(testPool, testLogger())

	guard := uuid.New()
	base := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	zero := 0.0
	far := 1530.42

	inputs := []struct {
		outcome domain.ScanOutcome
		dist    *float64
	}{
		{domain.ScanBound, &zero},
		{domain.ScanAccepted, &zero},
		{domain.ScanRejectedOutOfRange, &far},
		{domain.ScanRejectedStoreUnavailable, nil},
	}
	for i, in := range inputs {
		ev := &domain.ScanEvent{
			ID:              uuid.New(),
			QRID:            "QR-A1",
			AreaID:          "area-1",
			GuardID:         guard,
			GuardEmail:      "g@example.com",
			OriginalContent: "QR-A1",
			DeviceLat:       19.0760,
			DeviceLng:       72.8777,
			DistanceMeters:  in.dist,
			Outcome:         in.outcome,
			ScannedAt:       base.Add(time.Duration(i) * time.Hour),
		}
		if err := events.Save(ctx, ev); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	list, total, err := events.List(ctx, domain.ScanFilter{AreaID: "area-1", GuardID: guard, Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 4 || len(list) != 4 {
		t.Fatalf("expected 4 events, got %d of %d", len(list), total)
	}
	if list[0].Outcome != domain.ScanRejectedStoreUnavailable || list[0].DistanceMeters != nil {
		t.Fatalf("expected newest first with nil distance: %+v", list[0])
	}
	if list[1].DistanceMeters == nil || *list[1].DistanceMeters != far {
		t.Fatalf("distance not round-tripped: %+v", list[1])
	}

	n, err := stats.CountScans(ctx, "area-1", base.Add(90*time.Minute))
	if err != nil || n != 2 {
		t.Fatalf("CountScans since: n=%d err=%v", n, err)
	}
	n, err = stats.CountScans(ctx, "", time.Time{})
	if err != nil || n != 4 {
		t.Fatalf("CountScans all: n=%d err=%v", n, err)
	}

	byOutcome, err := stats.CountByOutcome(ctx, "area-1", time.Time{})
	if err != nil || byOutcome[domain.ScanAccepted] != 1 || byOutcome[domain.ScanRejectedOutOfRange] != 1 {
		t.Fatalf("CountByOutcome: %v %v", byOutcome, err)
	}

	top, err := stats.TopGuards(ctx, "area-1", time.Time{}, 5)
	if err != nil || len(top) != 1 || top[0].ScanCount != 2 {
		t.Fatalf("TopGuards: %+v %v", top, err)
	}

	sums, err := stats.AreaSummaries(ctx)
	if err != nil || len(sums) != 1 || sums[0].Accepted != 2 || sums[0].Rejected != 2 {
		t.Fatalf("AreaSummaries: %+v %v", sums, err)
	}
}

func TestIdentity_CRUD(t *testing.T) {
	truncateAll(t)

	ctx := context.Background()
	repo := NewIdentityRepo(testPool, testLogger())

	sup := &domain.Identity{Email: "sup@example.com", Name: "Sup", Role: domain.RoleSupervisor, AreaID: "area-1", Active: true, PasswordHash: "x"}
	if err := repo.Create(ctx, sup); err != nil {
		t.Fatalf("Create supervisor: %v", err)
	}
	supID := sup.ID
	guard := &domain.Identity{Email: "g@example.com", Name: "G", Role: domain.RoleGuard, AreaID: "area-1", SupervisorID: &supID, Active: true, PasswordHash: "x"}
	if err := repo.Create(ctx, guard); err != nil {
		t.Fatalf("Create guard: %v", err)
	}

	if err := repo.Create(ctx, &domain.Identity{Email: "g@example.com", Name: "dup", Role: domain.RoleGuard, PasswordHash: "x"}); !errors.Is(err, e.ErrUniqueViolation) {
		t.Fatalf("expected ErrUniqueViolation, got %v", err)
	}

	got, err := repo.FindGuardByEmail(ctx, "g@example.com")
	if err != nil || got.SupervisorID == nil || *got.SupervisorID != supID {
		t.Fatalf("FindGuardByEmail: %+v %v", got, err)
	}
	if _, err := repo.FindGuardByEmail(ctx, "sup@example.com"); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("supervisor must not resolve as guard: %v", err)
	}

	n, _ := repo.CountGuardsInArea(ctx, "area-1")
	if n != 1 {
		t.Fatalf("expected 1 guard, got %d", n)
	}

	if err := repo.SetActive(ctx, guard.ID, false); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	n, _ = repo.CountGuardsInArea(ctx, "area-1")
	if n != 0 {
		t.Fatalf("inactive guards must not count, got %d", n)
	}
	if err := repo.SetActive(ctx, uuid.New(), true); !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestIdentity_ListAndSupervisorCascade(t *testing.T) {
	truncateAll(t)

	ctx := context.Background()
	repo := NewIdentityRepo(testPool, testLogger())
	base := time.Now().UTC().Truncate(time.Millisecond)

	sup := &domain.Identity{Email: "sup@example.com", Name: "Sup", Role: domain.RoleSupervisor, AreaID: "area-1", Active: true, PasswordHash: "x", CreatedAt: base}
	if err := repo.Create(ctx, sup); err != nil {
		t.Fatalf("Create supervisor: %v", err)
	}
	supID := sup.ID
	for i, email := range []string{"g1@example.com", "g2@example.com"} {
		g := &domain.Identity{
			Email: email, Name: "G", Role: domain.RoleGuard, AreaID: "area-1", SupervisorID: &supID,
			Active: true, PasswordHash: "x", CreatedAt: base.Add(time.Duration(i+1) * time.Second),
		}
		if err := repo.Create(ctx, g); err != nil {
			t.Fatalf("Create guard: %v", err)
		}
	}

	guards, total, err := repo.List(ctx, domain.IdentityFilter{Role: domain.RoleGuard, SupervisorID: supID, Page: 1, Limit: 1})
	if err != nil || total != 2 || len(guards) != 1 || guards[0].Email != "g1@example.com" {
		t.Fatalf("List guards: total=%d %+v %v", total, guards, err)
	}

	n, err := repo.SetActiveBySupervisor(ctx, supID, false)
	if err != nil || n != 2 {
		t.Fatalf("SetActiveBySupervisor: n=%d err=%v", n, err)
	}
	active := true
	_, total, err = repo.List(ctx, domain.IdentityFilter{Role: domain.RoleGuard, Active: &active})
	if err != nil || total != 0 {
		t.Fatalf("expected no active guards, got %d %v", total, err)
	}
	_, total, _ = repo.List(ctx, domain.IdentityFilter{})
	if total != 3 {
		t.Fatalf("expected 3 identities, got %d", total)
	}
}
