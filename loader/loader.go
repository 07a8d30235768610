package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"planboard/database"
	"planboard/model"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

// InitDatabase applies the schema and imports the seed CSVs.
func InitDatabase(db *sqlx.DB, seedDir string) error {
	log.Println("Applying database schema...")
	if err := applySchema(db); err != nil {
		return fmt.Errorf("failed to apply schema.sql: %w", err)
	}
	log.Println("Schema applied successfully.")

	return LoadSeedData(db, seedDir)
}

// LoadSeedData imports every seed CSV found under seedDir. Missing files are
// skipped with a warning so the server can run against an empty database.
func LoadSeedData(db *sqlx.DB, seedDir string) error {
	seeds := []struct {
		name string
		load func(*sqlx.DB, string) (int, error)
	}{
		{"stores.csv", loadStoresCSV},
		{"skus.csv", loadSKUsCSV},
		{"calendar.csv", loadCalendarCSV},
		{"planning.csv", loadPlanningCSV},
	}

	for _, seed := range seeds {
		path := filepath.Join(seedDir, seed.name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			log.Printf("WARN: %s not found, skipping.", path)
			continue
		}
		log.Printf("Loading %s...", path)
		n, err := seed.load(db, path)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		log.Printf("Loaded %d rows from %s.", n, path)
	}
	return nil
}

func applySchema(db *sqlx.DB) error {
	schemaBytes, err := os.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("could not read schema.sql: %w", err)
	}
	_, err = db.Exec(string(schemaBytes))
	if err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// readSeedCSV opens a seed file, skips its header, and returns all rows that
// carry at least expectedColumns fields. Short rows are skipped with a warning
// rather than aborting the whole import.
func readSeedCSV(path string, expectedColumns int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to skip header in %s: %w", path, err)
	}

	var rows [][]string
	for {
		row, readErr := r.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			log.Printf("WARN: Error reading row in %s (skipping): %v", path, readErr)
			continue
		}
		if len(row) < expectedColumns {
			log.Printf("WARN: Skipping short row in %s (expected %d columns, got %d)", path, expectedColumns, len(row))
			continue
		}
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
		rows = append(rows, row[:expectedColumns])
	}
	return rows, nil
}

func withTx(db *sqlx.DB, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	return fn(tx)
}

// stores.csv: id,label,city,state
func loadStoresCSV(db *sqlx.DB, path string) (int, error) {
	rows, err := readSeedCSV(path, 4)
	if err != nil {
		return 0, err
	}
	err = withTx(db, func(tx *sqlx.Tx) error {
		for _, row := range rows {
			s := model.Store{StoreID: row[0], Label: row[1], City: row[2], State: row[3]}
			if err := database.UpsertStoreInTx(tx, s); err != nil {
				return err
			}
		}
		return nil
	})
	return len(rows), err
}

// skus.csv: id,label,class,department,price,cost
func loadSKUsCSV(db *sqlx.DB, path string) (int, error) {
	rows, err := readSeedCSV(path, 6)
	if err != nil {
		return 0, err
	}
	err = withTx(db, func(tx *sqlx.Tx) error {
		for _, row := range rows {
			price, parseErr := strconv.ParseFloat(row[4], 64)
			if parseErr != nil {
				log.Printf("WARN: bad price %q for SKU %s, using 0", row[4], row[0])
			}
			cost, parseErr := strconv.ParseFloat(row[5], 64)
			if parseErr != nil {
				log.Printf("WARN: bad cost %q for SKU %s, using 0", row[5], row[0])
			}
			s := model.SKU{SkuID: row[0], Label: row[1], Class: row[2], Department: row[3], Price: price, Cost: cost}
			if err := database.UpsertSKUInTx(tx, s); err != nil {
				return err
			}
		}
		return nil
	})
	return len(rows), err
}

// calendar.csv: id,week,weekLabel,month,monthLabel
func loadCalendarCSV(db *sqlx.DB, path string) (int, error) {
	rows, err := readSeedCSV(path, 5)
	if err != nil {
		return 0, err
	}
	err = withTx(db, func(tx *sqlx.Tx) error {
		for _, row := range rows {
			id, parseErr := strconv.Atoi(row[0])
			if parseErr != nil {
				log.Printf("WARN: bad calendar id %q, skipping row", row[0])
				continue
			}
			w := model.CalendarWeek{CalendarID: id, Week: row[1], WeekLabel: row[2], Month: row[3], MonthLabel: row[4]}
			if err := database.UpsertCalendarWeekInTx(tx, w); err != nil {
				return err
			}
		}
		return nil
	})
	return len(rows), err
}

// planning.csv: storeId,skuId,week,salesUnits
func loadPlanningCSV(db *sqlx.DB, path string) (int, error) {
	rows, err := readSeedCSV(path, 4)
	if err != nil {
		return 0, err
	}
	err = withTx(db, func(tx *sqlx.Tx) error {
		for _, row := range rows {
			units, parseErr := strconv.Atoi(row[3])
			if parseErr != nil {
				log.Printf("WARN: bad salesUnits %q for (%s, %s, %s), using 0", row[3], row[0], row[1], row[2])
			}
			r := model.PlanningRow{StoreID: row[0], SkuID: row[1], Week: row[2], SalesUnits: units}
			if err := database.UpsertPlanningRowInTx(tx, r); err != nil {
				return err
			}
		}
		return nil
	})
	return len(rows), err
}
