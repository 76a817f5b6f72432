package checks

import (
	"regexp"
	"testing"

	"stock-counter/feature/inventory/models"
	"stock-counter/feature/inventory/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func showColumns(table string) string {
	return regexp.QuoteMeta("SHOW COLUMNS FROM `" + table + "`")
}

func columnRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_FreshSQLite(t *testing.T) {
	db := testutil.NewDB(t)

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", report.Driver)
	assert.True(t, report.Matched, "%+v", report)
	assert.Empty(t, report.Errors)
	assert.Equal(t, "ok", report.Tables[models.ProductsTable].Status)
	assert.Equal(t, "ok", report.Tables[models.HistoryTable].Status)
}

func TestCheckSchema_MissingTable(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.CountHistory{}))

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl := report.Tables[models.HistoryTable]
	assert.Equal(t, "error", tbl.Status)
	assert.ElementsMatch(t, []string{"id", "produto_id", "codigo_barra_lido", "quantidade", "data_hora"}, tbl.MissingColumns)
}

func TestCheckSchema_MySQLMismatch(t *testing.T) {
	db, mock := testutil.NewMockDB(t)

	mock.ExpectQuery(showColumns(models.ProductsTable)).WillReturnRows(columnRows().
		AddRow("id", "bigint unsigned", "NO", "PRI", nil, "auto_increment").
		AddRow("codigo_barra", "varchar(64)", "NO", "UNI", nil, "").
		AddRow("nome", "varchar(255)", "NO", "", nil, "").
		AddRow("estoque_atual", "bigint", "NO", "", "0", ""))
	mock.ExpectQuery(showColumns(models.HistoryTable)).WillReturnRows(columnRows().
		AddRow("id", "bigint unsigned", "NO", "PRI", nil, "auto_increment").
		AddRow("produto_id", "bigint unsigned", "YES", "MUL", nil, "").
		AddRow("codigo_barra_lido", "varchar(128)", "NO", "", nil, "").
		AddRow("quantidade", "bigint", "NO", "", nil, ""))

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)

	products := report.Tables[models.ProductsTable]
	assert.Equal(t, "error", products.Status)
	assert.Empty(t, products.MissingColumns)
	assert.Equal(t, []string{"codigo_barra: expected varchar(128), got varchar(64)"}, products.TypeMismatches)

	history := report.Tables[models.HistoryTable]
	assert.Equal(t, []string{"data_hora"}, history.MissingColumns)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckSchema_InspectError(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	mock.ExpectQuery(showColumns(models.ProductsTable)).WillReturnError(assert.AnError)
	mock.ExpectQuery(showColumns(models.HistoryTable)).WillReturnError(assert.AnError)

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Len(t, report.Errors, 2)
}

func TestExpectedType(t *testing.T) {
	tests := []struct {
		tag, driver, want string
	}{
		{"varchar(128)", "sqlite", "varchar(128)"},
		{"VARCHAR(128)", "mysql", "varchar(128)"},
		{"varchar(128)", "postgres", "character varying"},
		{"text", "postgres", "text"},
		{"", "postgres", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, expectedType(tt.tag, tt.driver), tt.tag+"/"+tt.driver)
	}
}

func TestParseGormTag(t *testing.T) {
	tag := "column:codigo_barra;type:varchar(128);uniqueIndex;not null"
	assert.Equal(t, "codigo_barra", parseGormTag(tag, "column"))
	assert.Equal(t, "varchar(128)", parseGormTag(tag, "type"))
	assert.Equal(t, "", parseGormTag(tag, "default"))
}
