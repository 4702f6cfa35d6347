package dashboard

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/most-gh/mddroner-booking/internal/domain"
	"github.com/most-gh/mddroner-booking/pkg/logger"
	"github.com/most-gh/mddroner-booking/pkg/ptr"
)

type fakeRepo struct {
	bookings []*domain.Booking
	err      error
	calls    int
}

func (r *fakeRepo) List(context.Context) ([]*domain.Booking, error) {
	r.calls++
	return r.bookings, r.err
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

var (
	admin     = &domain.Identity{ID: 1, Role: domain.RoleAdmin}
	createdAt = time.Date(2025, 2, 1, 2, 30, 0, 0, time.UTC) // 10:30:00 HKT
)

func fixture() []*domain.Booking {
	return []*domain.Booking{
		{ID: 1, Route: "經典山道", Name: "李明", Phone: "1", CarModel: "911", BookingDate: "2025-02-15",
			Status: domain.StatusConfirmed, CreatedAt: createdAt},
		{ID: 2, Route: "工業美學", Name: "王芳", Phone: "2", CarModel: "Civic", BookingDate: "2025-02-20",
			Status: domain.StatusPending, CreatedAt: createdAt},
		{ID: 3, Route: "海岸秘境", Name: "陳浩", Phone: "3", CarModel: "M340i", BookingDate: "2025-03-01",
			Status: domain.StatusConfirmed, CreatedAt: createdAt},
		{ID: 4, Route: "經典山道", Name: "張偉", Phone: "4", CarModel: "GR86", BookingDate: "2025-02-28",
			Status: domain.StatusCancelled, CreatedAt: createdAt},
	}
}

func TestFilterBookings(t *testing.T) {
	got := FilterBookings(fixture(), "2025-02", "confirmed")
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	all := FilterBookings(fixture(), "2025-02", domain.StatusFilterAll)
	ids := make([]int64, 0, len(all))
	for _, b := range all {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []int64{1, 2, 4}, ids)

	assert.Empty(t, FilterBookings(fixture(), "2024-12", domain.StatusFilterAll))
}

func TestCountStats(t *testing.T) {
	stats := CountStats(fixture())
	assert.Equal(t, Stats{Total: 4, Pending: 1, Confirmed: 2, Cancelled: 1}, stats)
}

func TestExportCSV(t *testing.T) {
	b := fixture()[0]
	b.CarPlate = ptr.Ptr("AB 1234")
	b.Notes = ptr.Ptr(`客人說 "早上"`)
	b.MultipleVehicles = true

	got := string(ExportCSV([]*domain.Booking{b}))
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, `"ID","地點","姓名","電話","車型","車牌","日期","狀態","多台車","動態影片","備註","建立時間"`, lines[0])
	assert.Equal(t,
		`"1","經典山道","李明","1","911","AB 1234","2025-02-15","confirmed","是","否","客人說 ""早上""","1/2/2025 上午10:30:00"`,
		lines[1])
	assert.False(t, strings.HasSuffix(got, "\n"))
}

func TestExportCSV_ZeroRowsGivesHeaderOnly(t *testing.T) {
	got := string(ExportCSV(nil))
	assert.Equal(t, `"ID","地點","姓名","電話","車型","車牌","日期","狀態","多台車","動態影片","備註","建立時間"`, got)
}

func TestExportXLSX(t *testing.T) {
	body, err := ExportXLSX(fixture()[:2])
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, ExportHeader, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "經典山道", rows[1][1])
	assert.Equal(t, "王芳", rows[2][2])
}

func TestService_View(t *testing.T) {
	svc := NewService(&fakeRepo{bookings: fixture()}, logger.Nop())

	resp, err := svc.View(context.Background(), admin, Filter{Month: "2025-02", Status: "confirmed"})
	require.NoError(t, err)

	assert.Equal(t, "2025-02", resp.Month)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
	// счетчики по полному списку
	assert.Equal(t, 4, resp.Stats.Total)
	assert.Equal(t, 2, resp.Stats.Confirmed)
}

func TestService_View_DefaultsToCurrentHongKongMonth(t *testing.T) {
	// 28 Feb 17:00 UTC is already 1 Mar in Hong Kong
	now := time.Date(2025, 2, 28, 17, 0, 0, 0, time.UTC)
	svc := NewService(&fakeRepo{bookings: fixture()}, logger.Nop()).WithTimeProvider(fixedTime{t: now})

	resp, err := svc.View(context.Background(), admin, Filter{})
	require.NoError(t, err)
	assert.Equal(t, "2025-03", resp.Month)
	assert.Equal(t, domain.StatusFilterAll, resp.Status)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(3), resp.Bookings[0].ID)
}

func TestService_InvalidFilter(t *testing.T) {
	svc := NewService(&fakeRepo{bookings: fixture()}, logger.Nop())
	ctx := context.Background()

	for _, f := range []Filter{
		{Month: "2025-2"},
		{Month: "2025-13"},
		{Month: "February"},
		{Month: "2025-02", Status: "archived"},
	} {
		_, err := svc.View(ctx, admin, f)
		assert.ErrorIs(t, err, ErrInvalidFilter, "%+v", f)
	}

	_, err := svc.Export(ctx, admin, Filter{Month: "2025-02"}, "pdf")
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestService_NonAdminIsForbidden(t *testing.T) {
	repo := &fakeRepo{bookings: fixture()}
	svc := NewService(repo, logger.Nop())
	ctx := context.Background()

	for _, caller := range []*domain.Identity{nil, {ID: 2, Role: domain.RoleUser}} {
		_, err := svc.View(ctx, caller, Filter{Month: "2025-02"})
		assert.ErrorIs(t, err, ErrAccessDenied)

		_, err = svc.Export(ctx, caller, Filter{Month: "2025-02"}, FormatCSV)
		assert.ErrorIs(t, err, ErrAccessDenied)
	}
	assert.Zero(t, repo.calls)
}

func TestService_Export(t *testing.T) {
	svc := NewService(&fakeRepo{bookings: fixture()}, logger.Nop())
	ctx := context.Background()

	csv, err := svc.Export(ctx, admin, Filter{Month: "2025-02", Status: "pending"}, "")
	require.NoError(t, err)
	assert.Equal(t, "bookings-2025-02.csv", csv.Filename)
	assert.Equal(t, ContentTypeCSV, csv.ContentType)
	assert.Len(t, strings.Split(string(csv.Body), "\n"), 2)

	xlsx, err := svc.Export(ctx, admin, Filter{Month: "2025-02"}, FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, "bookings-2025-02.xlsx", xlsx.Filename)
	assert.Equal(t, ContentTypeXLSX, xlsx.ContentType)
	assert.NotEmpty(t, xlsx.Body)
}

func TestService_RepositoryError(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("db down")}, logger.Nop())

	_, err := svc.View(context.Background(), admin, Filter{Month: "2025-02"})
	assert.ErrorIs(t, err, ErrInternal)
}
