package archive

import (
	"bytes"
	"compress/gzip"
	"database/sql"
	"fmt"
	"io"
	"strconv"
)

// Reader reads swatches from an archive database.
type Reader struct {
	db   *sql.DB
	path string
}

// OpenReader opens an archive database for reading.
func OpenReader(path string) (*Reader, error) {
	// Open in read-only mode with immutable flag
	db, err := sql.Open("sqlite", path+"?mode=ro&immutable=1")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify schema exists
	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='swatches'").Scan(&count)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to verify schema: %w", err)
	}
	if count == 0 {
		db.Close()
		return nil, fmt.Errorf("database does not contain swatches table")
	}

	return &Reader{
		db:   db,
		path: path,
	}, nil
}

// ReadSwatch reads a swatch from the database and returns ungzipped image data.
func (r *Reader) ReadSwatch(kind string, hue int) ([]byte, error) {
	var compressedData []byte
	err := r.db.QueryRow(
		"SELECT data FROM swatches WHERE kind=? AND hue=?",
		kind, hue,
	).Scan(&compressedData)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("swatch not found: %s/%d", kind, hue)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query swatch: %w", err)
	}

	// Decompress gzip data
	uncompressed, err := gzipDecompress(compressedData)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress swatch: %w", err)
	}

	return uncompressed, nil
}

// Hues lists the hue keys stored for a swatch kind, ascending.
func (r *Reader) Hues(kind string) ([]int, error) {
	rows, err := r.db.Query("SELECT hue FROM swatches WHERE kind=? ORDER BY hue", kind)
	if err != nil {
		return nil, fmt.Errorf("failed to query hues: %w", err)
	}
	defer rows.Close()

	var hues []int
	for rows.Next() {
		var hue int
		if err := rows.Scan(&hue); err != nil {
			return nil, fmt.Errorf("failed to scan hue row: %w", err)
		}
		hues = append(hues, hue)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hues: %w", err)
	}

	return hues, nil
}

// Metadata reads metadata from the database.
func (r *Reader) Metadata() (Metadata, error) {
	rows, err := r.db.Query("SELECT name, value FROM metadata")
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to query metadata: %w", err)
	}
	defer rows.Close()

	meta := Metadata{}
	metaMap := make(map[string]string)

	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return Metadata{}, fmt.Errorf("failed to scan metadata row: %w", err)
		}
		metaMap[name] = value
	}

	if err := rows.Err(); err != nil {
		return Metadata{}, fmt.Errorf("error iterating metadata: %w", err)
	}

	// Parse metadata fields
	meta.Name = metaMap["name"]
	meta.Format = metaMap["format"]
	meta.Description = metaMap["description"]
	meta.Version = metaMap["version"]

	if v, ok := metaMap["hue_step"]; ok {
		if i, err := strconv.Atoi(v); err == nil {
			meta.HueStep = i
		}
	}
	if v, ok := metaMap["steps"]; ok {
		if i, err := strconv.Atoi(v); err == nil {
			meta.Steps = i
		}
	}
	if v, ok := metaMap["cell"]; ok {
		if i, err := strconv.Atoi(v); err == nil {
			meta.Cell = i
		}
	}

	return meta, nil
}

// Close closes the database connection.
func (r *Reader) Close() error {
	if err := r.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// gzipDecompress decompresses gzip data.
func gzipDecompress(data []byte) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gr.Close()

	uncompressed, err := io.ReadAll(gr)
	if err != nil {
		return nil, err
	}

	return uncompressed, nil
}
