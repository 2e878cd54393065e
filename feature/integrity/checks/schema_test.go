package checks

import (
	"context"
	"errors"
	"testing"

	"poc-availability/core/database"
	"poc-availability/feature/availability/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func showColumns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(context.Background(), nil, models.All())
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_NoTableName(t *testing.T) {
	db, _ := setupMockDB(t)
	type plain struct{ ID int }

	_, err := CheckSchema(context.Background(), db, []any{plain{}})
	assert.Error(t, err)
}

func TestCheckSchema_MySQLMatch(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `poc_schedules`").WillReturnRows(showColumns().
		AddRow("Schedule_ID", "int(11)", "NO", "PRI", nil, "auto_increment").
		AddRow("POC_ID", "int(11)", "NO", "MUL", nil, "").
		AddRow("Day_of_Week", "enum('Sunday','Monday','Tuesday','Wednesday','Thursday','Friday','Saturday')", "NO", "", nil, "").
		AddRow("Start_Time", "time", "NO", "", nil, "").
		AddRow("End_Time", "time", "NO", "", nil, "").
		AddRow("appointments_per_slot", "int(11)", "NO", "", "1", ""))

	report, err := CheckSchema(context.Background(), db, []any{models.ScheduleRule{}})
	require.NoError(t, err)
	assert.Equal(t, "mysql", report.Driver)
	assert.True(t, report.Matched, "%+v", report)
	assert.Equal(t, "ok", report.Tables["poc_schedules"].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckSchema_MissingAndMismatch(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `poc_available_slots`").WillReturnRows(showColumns().
		AddRow("Slot_ID", "int(11)", "NO", "PRI", nil, "auto_increment").
		AddRow("POC_ID", "int(11)", "NO", "", nil, "").
		AddRow("Schedule_Date", "datetime", "NO", "", nil, "").
		AddRow("Start_Time", "time", "NO", "", nil, "").
		AddRow("appointments_per_slot", "int(11)", "NO", "", "0", ""))

	report, err := CheckSchema(context.Background(), db, []any{&models.Slot{}})
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl := report.Tables["poc_available_slots"]
	assert.Equal(t, "error", tbl.Status)
	assert.Equal(t, []string{"End_Time"}, tbl.MissingColumns)
	assert.Equal(t, []string{"Schedule_Date: expected date, got datetime"}, tbl.TypeMismatches)
}

func TestCheckSchema_InspectFailureAndMissingTable(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("SHOW COLUMNS FROM `client`").WillReturnError(errors.New("access denied"))
	mock.ExpectQuery("SHOW COLUMNS FROM `poc`").WillReturnRows(showColumns())

	report, err := CheckSchema(context.Background(), db, []any{models.Client{}, models.Provider{}})
	require.NoError(t, err)
	assert.False(t, report.Matched)
	require.Len(t, report.Errors, 2)
	assert.Contains(t, report.Errors[0], "access denied")
	assert.Equal(t, "Table poc does not exist", report.Errors[1])
	assert.Empty(t, report.Tables)
}

func TestCheckSchema_SQLiteMigrated(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	report, err := CheckSchema(context.Background(), db, models.All())
	require.NoError(t, err)
	assert.Equal(t, "sqlite", report.Driver)
	assert.True(t, report.Matched, "%+v", report)
	assert.Len(t, report.Tables, 4)
}

func TestTypeMatches(t *testing.T) {
	tests := []struct {
		expected, actual string
		want             bool
	}{
		{"int", "int(11)", true},
		{"int", "bigint(20) unsigned", true},
		{"varchar(10)", "varchar(9)", true},
		{"varchar(10)", "enum('monday')", true},
		{"varchar(100)", "int(11)", false},
		{"time", "time", true},
		{"date", "datetime", false},
		{"decimal(10,2)", "decimal(12,4)", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, typeMatches(tt.expected, tt.actual), "%s vs %s", tt.expected, tt.actual)
	}
}

func TestParseGormTags(t *testing.T) {
	assert.Equal(t, "Slot_ID", parseGormColumn("column:Slot_ID;primaryKey"))
	assert.Equal(t, "POC_Name", parseGormColumn("primaryKey;column:POC_Name;type:varchar(100)"))
	assert.Equal(t, "varchar(100)", parseGormType("column:POC_Name;type:varchar(100)"))
	assert.Equal(t, "", parseGormType("column:Slot_ID"))
}
