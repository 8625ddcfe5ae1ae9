package checks

import (
	"fmt"
	"reflect"
	"strings"

	"wardrobe-manager/core/cache"
	"wardrobe-manager/core/database"

	"gorm.io/gorm"
)

// ServerReport strictly types the result of a server integrity check.
type ServerReport struct {
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

// ExpectedModels are the GORM models whose tables the service relies on.
var ExpectedModels = []any{cache.Record{}}

// CheckServerIntegrity verifies the database schema using GORM models as the source of truth.
// Only columns named in a gorm column tag are checked; types only when the tag carries one.
func CheckServerIntegrity(db *gorm.DB, models ...any) (*ServerReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if len(models) == 0 {
		models = ExpectedModels
	}

	report := &ServerReport{
		Driver:  db.Dialector.Name(),
		Tables:  make(map[string]TableReport),
		Matched: true,
		Errors:  []string{},
	}

	for _, model := range models {
		val := reflect.TypeOf(model)
		if val.Kind() == reflect.Ptr {
			val = val.Elem()
		}
		if val.Kind() != reflect.Struct {
			return nil, fmt.Errorf("model %s is not a struct", val)
		}

		tabler, ok := reflect.New(val).Interface().(interface{ TableName() string })
		if !ok {
			return nil, fmt.Errorf("model %s does not implement TableName", val.Name())
		}
		tableName := tabler.TableName()

		actualCols, err := database.GetTableColumns(db, tableName)
		if err == nil && len(actualCols) == 0 {
			err = fmt.Errorf("table does not exist")
		}
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", tableName, err))
			report.Matched = false
			report.Tables[tableName] = TableReport{MissingColumns: []string{}, TypeMismatches: []string{}, Status: "error"}
			continue
		}

		report.Tables[tableName] = compareColumns(val, actualCols, report)
	}

	return report, nil
}

func compareColumns(val reflect.Type, actualCols []database.ColumnInfo, report *ServerReport) TableReport {
	tblReport := TableReport{
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         "ok",
	}

	actualMap := make(map[string]database.ColumnInfo, len(actualCols))
	for _, col := range actualCols {
		actualMap[col.Field] = col
	}

	for i := 0; i < val.NumField(); i++ {
		gormTag := val.Field(i).Tag.Get("gorm")

		colName := parseGormColumn(gormTag)
		if colName == "" {
			continue
		}

		actCol, exists := actualMap[colName]
		if !exists {
			tblReport.MissingColumns = append(tblReport.MissingColumns, colName)
			tblReport.Status = "error"
			report.Matched = false
			continue
		}

		expType := strings.ToLower(parseGormType(gormTag))
		if expType == "" {
			continue
		}
		// Enum value lists differ in ordering and quoting between servers.
		if strings.HasPrefix(expType, "enum") && strings.HasPrefix(actCol.Type, "enum") {
			continue
		}
		if !strings.Contains(actCol.Type, expType) {
			mismatch := fmt.Sprintf("%s: expected %s, got %s", colName, expType, actCol.Type)
			tblReport.TypeMismatches = append(tblReport.TypeMismatches, mismatch)
			tblReport.Status = "error"
			report.Matched = false
		}
	}

	return tblReport
}

// Helpers to parse simple GORM tags
func parseGormColumn(tag string) string {
	return gormSetting(tag, "column:")
}

func parseGormType(tag string) string {
	return gormSetting(tag, "type:")
}

func gormSetting(tag, key string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, key) {
			return strings.TrimPrefix(p, key)
		}
	}
	return ""
}
