package service

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type BackupInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
}

type DoctorReport struct {
	ExtraActivePeriods   int `json:"extra_active_periods"`
	OrphanEntries        int `json:"orphan_entries"`
	OrphanScheduleItems  int `json:"orphan_schedule_items"`
	OrphanDisabledDays   int `json:"orphan_disabled_days"`
	OutOfRangeDisabled   int `json:"out_of_range_disabled_days"`
	FixedActivePeriods   int `json:"fixed_active_periods,omitempty"`
	RemovedOrphanRows    int `json:"removed_orphan_rows,omitempty"`
	RemovedOutOfRangeRow int `json:"removed_out_of_range_rows,omitempty"`
}

func CreateBackup(dbPath, outPath string) (BackupInfo, error) {
	if strings.TrimSpace(dbPath) == "" {
		return BackupInfo{}, fmt.Errorf("db path is required")
	}
	if strings.TrimSpace(outPath) == "" {
		return BackupInfo{}, fmt.Errorf("backup output path is required")
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return BackupInfo{}, fmt.Errorf("create backup directory: %w", err)
	}
	if err := copyFile(dbPath, outPath); err != nil {
		return BackupInfo{}, err
	}
	checksum, err := fileSHA256(outPath)
	if err != nil {
		return BackupInfo{}, err
	}
	if err := os.WriteFile(outPath+".sha256", []byte(checksum+"\n"), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write checksum file: %w", err)
	}
	st, err := os.Stat(outPath)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("stat backup: %w", err)
	}
	return BackupInfo{Path: outPath, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()}, nil
}

func RestoreBackup(backupPath, dbPath string, force bool) error {
	if strings.TrimSpace(backupPath) == "" || strings.TrimSpace(dbPath) == "" {
		return fmt.Errorf("backup path and db path are required")
	}
	if !force {
		if _, err := os.Stat(dbPath); err == nil {
			return fmt.Errorf("target db already exists; use --force to overwrite")
		}
	}
	checksumFile := backupPath + ".sha256"
	if expected, err := os.ReadFile(checksumFile); err == nil {
		actual, err := fileSHA256(backupPath)
		if err != nil {
			return err
		}
		if strings.TrimSpace(string(expected)) != actual {
			return fmt.Errorf("backup checksum mismatch")
		}
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return copyFile(backupPath, dbPath)
}

func ListBackups(dir string) ([]BackupInfo, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}
	out := make([]BackupInfo, 0)
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".db") {
			continue
		}
		full := filepath.Join(dir, f.Name())
		st, err := os.Stat(full)
		if err != nil {
			continue
		}
		checksum := ""
		if b, err := os.ReadFile(full + ".sha256"); err == nil {
			checksum = strings.TrimSpace(string(b))
		}
		out = append(out, BackupInfo{Path: full, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// RunDoctor checks the invariants the store relies on: one active period,
// no rows referencing missing periods, no disabled days outside their
// period's range. With fix set it applies the safe repairs.
func RunDoctor(db *sql.DB, fix bool) (DoctorReport, error) {
	report := DoctorReport{}

	var activeCount int
	if err := db.QueryRow(`SELECT COUNT(1) FROM periods WHERE is_active = 1`).Scan(&activeCount); err != nil {
		return report, fmt.Errorf("doctor active period check: %w", err)
	}
	if activeCount > 1 {
		report.ExtraActivePeriods = activeCount - 1
	}

	orphanChecks := []struct {
		table string
		count *int
	}{
		{"meal_entries", &report.OrphanEntries},
		{"schedule", &report.OrphanScheduleItems},
		{"disabled_days", &report.OrphanDisabledDays},
	}
	for _, check := range orphanChecks {
		query := fmt.Sprintf(`
SELECT COUNT(1) FROM %s t
LEFT JOIN periods p ON p.id = t.period_id
WHERE p.id IS NULL
`, check.table)
		if err := db.QueryRow(query).Scan(check.count); err != nil {
			return report, fmt.Errorf("doctor orphan check (%s): %w", check.table, err)
		}
	}

	if err := db.QueryRow(`
SELECT COUNT(1)
FROM disabled_days d
JOIN periods p ON p.id = d.period_id
WHERE d.date < p.start_date OR d.date > p.end_date
`).Scan(&report.OutOfRangeDisabled); err != nil {
		return report, fmt.Errorf("doctor out-of-range check: %w", err)
	}

	if !fix {
		return report, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return report, fmt.Errorf("doctor fix begin tx: %w", err)
	}
	if report.ExtraActivePeriods > 0 {
		// Keep the most recently created active period.
		res, err := tx.Exec(`
UPDATE periods SET is_active = 0
WHERE is_active = 1 AND id != (SELECT MAX(id) FROM periods WHERE is_active = 1)
`)
		if err != nil {
			_ = tx.Rollback()
			return report, fmt.Errorf("doctor fix active periods: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil {
			report.FixedActivePeriods = int(n)
		}
	}
	for _, table := range []string{"meal_entries", "schedule", "disabled_days"} {
		res, err := tx.Exec(fmt.Sprintf(`
DELETE FROM %s WHERE period_id NOT IN (SELECT id FROM periods)
`, table))
		if err != nil {
			_ = tx.Rollback()
			return report, fmt.Errorf("doctor fix orphan rows (%s): %w", table, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			report.RemovedOrphanRows += int(n)
		}
	}
	res, err := tx.Exec(`
DELETE FROM disabled_days
WHERE id IN (
  SELECT d.id FROM disabled_days d
  JOIN periods p ON p.id = d.period_id
  WHERE d.date < p.start_date OR d.date > p.end_date
)
`)
	if err != nil {
		_ = tx.Rollback()
		return report, fmt.Errorf("doctor fix out-of-range rows: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil {
		report.RemovedOutOfRangeRow = int(n)
	}
	if err := tx.Commit(); err != nil {
		return report, fmt.Errorf("doctor fix commit: %w", err)
	}
	return report, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source file: %w", err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy file: %w", err)
	}
	if err := out.Sync(); err != nil {
		return fmt.Errorf("sync destination file: %w", err)
	}
	return nil
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for checksum: %w", err)
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
