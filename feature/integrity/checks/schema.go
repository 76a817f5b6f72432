package checks

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"stock-counter/core/database"
	"stock-counter/feature/inventory/models"

	"gorm.io/gorm"
)

// SchemaReport strictly types the result of a schema check.
type SchemaReport struct {
	Driver  string                 `json:"driver"`
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

var sizedType = regexp.MustCompile(`^([a-z ]+)\(\d+\)$`)

// CheckSchema compares the live inventory tables with the gorm models.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Driver:  db.Dialector.Name(),
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	for _, model := range models.All() {
		tabler, ok := model.(interface{ TableName() string })
		if !ok {
			return nil, fmt.Errorf("model %T does not implement TableName", model)
		}
		tableName := tabler.TableName()

		actualCols, err := database.GetTableColumns(db, tableName)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", tableName, err))
			report.Matched = false
			continue
		}

		tblReport := compareTable(reflect.TypeOf(model).Elem(), actualCols, report.Driver)
		if tblReport.Status != "ok" {
			report.Matched = false
		}
		report.Tables[tableName] = tblReport
	}

	return report, nil
}

func compareTable(typ reflect.Type, actualCols []database.ColumnInfo, driver string) TableReport {
	tblReport := TableReport{
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         "ok",
	}

	// sqlite reports no columns for a table that does not exist
	actualMap := make(map[string]database.ColumnInfo, len(actualCols))
	for _, col := range actualCols {
		actualMap[col.Field] = col
	}

	for i := 0; i < typ.NumField(); i++ {
		gormTag := typ.Field(i).Tag.Get("gorm")
		colName := strings.ToLower(parseGormTag(gormTag, "column"))
		if colName == "" {
			continue
		}

		actCol, exists := actualMap[colName]
		if !exists {
			tblReport.MissingColumns = append(tblReport.MissingColumns, colName)
			tblReport.Status = "error"
			continue
		}

		expType := expectedType(parseGormTag(gormTag, "type"), driver)
		if expType != "" && !strings.Contains(actCol.Type, expType) {
			mismatch := fmt.Sprintf("%s: expected %s, got %s", colName, expType, actCol.Type)
			tblReport.TypeMismatches = append(tblReport.TypeMismatches, mismatch)
			tblReport.Status = "error"
		}
	}

	return tblReport
}

// expectedType lowers a tag type to what the driver reports for it.
// information_schema drops the size of character columns.
func expectedType(tagType, driver string) string {
	t := strings.ToLower(tagType)
	if t == "" || driver != database.DriverPostgres {
		return t
	}
	if m := sizedType.FindStringSubmatch(t); m != nil {
		t = m[1]
	}
	if t == "varchar" {
		return "character varying"
	}
	return t
}

func parseGormTag(tag, key string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, key+":") {
			return strings.TrimPrefix(p, key+":")
		}
	}
	return ""
}
