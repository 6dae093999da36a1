package serviceImp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"qrproduct/database"
	"qrproduct/entities"
	"qrproduct/pkg/timeline/repositoryImp"
	"qrproduct/pkg/timeline/service"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
}

func newTestService(t *testing.T) (service.TimelineService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewTimelineService(repositoryImp.New(db)), db
}

func TestBuildProjectsGrowthAndJournal(t *testing.T) {
	svc, db := newTestService(t)
	require.NoError(t, db.Create(&entities.GrowthRecord{
		FarmerName: "Asep", HST: 10, HeightCM: 12.5, LeafCount: 8, CreatedAt: "2024-01-02 08:30:00",
	}).Error)
	require.NoError(t, db.Create(&entities.JournalEntry{
		FarmerName: "Asep", Date: "2024-01-01", ActivityType: "Pemupukan", Description: "NPK 10g per tanaman",
	}).Error)

	events, err := svc.Build("Asep")
	require.NoError(t, err)
	require.Len(t, events, 2)

	// journal entry dated a day earlier comes first
	require.Equal(t, service.TimelineEvent{
		Date: "2024-01-01", Event: "Pemupukan", Desc: "NPK 10g per tanaman", Icon: "📝",
	}, events[0])
	require.Equal(t, service.TimelineEvent{
		Date: "2024-01-02", Event: "Monitoring HST 10", Desc: "Tinggi: 12.5cm, Daun: 8 helai", Icon: "📏",
	}, events[1])
}

func TestBuildEmptyCreatedAtSortsFirst(t *testing.T) {
	svc, db := newTestService(t)
	require.NoError(t, db.Create(&entities.GrowthRecord{
		FarmerName: "Asep", HST: 3, HeightCM: 4, LeafCount: 2, CreatedAt: "",
	}).Error)
	require.NoError(t, db.Create(&entities.JournalEntry{
		FarmerName: "Asep", Date: "2024-01-01", ActivityType: "Penyiraman", Description: "pagi",
	}).Error)

	events, err := svc.Build("Asep")
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "", events[0].Date)
	require.Equal(t, "Monitoring HST 3", events[0].Event)
}

func TestBuildStableWithinSameDate(t *testing.T) {
	s, gdb := newTestService(t)
	// two measurements on the same day, inserted out of hst order
	require.NoError(t, gdb.Create(&entities.GrowthRecord{
		FarmerName: "Asep", HST: 7, HeightCM: 9, LeafCount: 6, CreatedAt: "2024-01-05 16:00:00",
	}).Error)
	require.NoError(t, gdb.Create(&entities.GrowthRecord{
		FarmerName: "Asep", HST: 5, HeightCM: 7, LeafCount: 4, CreatedAt: "2024-01-05 08:00:00",
	}).Error)
	require.NoError(t, gdb.Create(&entities.JournalEntry{
		FarmerName: "Asep", Date: "2024-01-05", ActivityType: "Penyemprotan", Description: "fungisida",
	}).Error)

	events, err := s.Build("Asep")
	require.NoError(t, err)
	require.Len(t, events, 3)
	// growth rows keep hst order, journal entries follow on equal dates
	require.Equal(t, "Monitoring HST 5", events[0].Event)
	require.Equal(t, "Monitoring HST 7", events[1].Event)
	require.Equal(t, "Penyemprotan", events[2].Event)
}

func TestBuildFiltersByFarmer(t *testing.T) {
	svc, db := newTestService(t)
	require.NoError(t, db.Create(&entities.GrowthRecord{
		FarmerName: "Asep", HST: 1, HeightCM: 2, LeafCount: 1, CreatedAt: "2024-01-01 07:00:00",
	}).Error)
	require.NoError(t, db.Create(&entities.JournalEntry{
		FarmerName: "Dedi", Date: "2024-01-01", ActivityType: "Tanam", Description: "bibit",
	}).Error)

	events, err := svc.Build("Asep")
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "📏", events[0].Icon)
}

func TestBuildUnknownFarmerIsEmptyNotNil(t *testing.T) {
	svc, _ := newTestService(t)
	events, err := svc.Build("nobody")
	require.NoError(t, err)
	require.NotNil(t, events)
	require.Empty(t, events)
}
