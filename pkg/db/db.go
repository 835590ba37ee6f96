package db

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

//DB wraps the sqlite handle used to persist resolved plates per processed video
type DB struct {
	*sql.DB
}

func NewDB(path string) (*DB, error) {
	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = database.Exec(`
		CREATE TABLE IF NOT EXISTS plates (
			video TEXT,
			car_id INTEGER,
			plate TEXT,
			frame INTEGER,
			x1 DOUBLE, y1 DOUBLE, x2 DOUBLE, y2 DOUBLE,
			created TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS plates_video ON plates (video);
	`)
	if err != nil {
		return nil, err
	}

	return &DB{database}, nil
}

//RecordPlate stores the canonical plate resolved for one car in given video
func (db *DB) RecordPlate(videoName string, carID int, plateText string, frame int, box [4]float64) error {
	_, err := db.Exec("INSERT INTO plates (video, car_id, plate, frame, x1, y1, x2, y2) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		videoName, carID, plateText, frame,
		box[0], box[1], box[2], box[3])
	if err != nil {
		return err
	}
	return nil
}

//ResolvedPlate is one row returned to API consumers
type ResolvedPlate struct {
	CarID int    `json:"car_id"`
	Plate string `json:"plate"`
	Frame int    `json:"frame"`
}

//PlatesForVideo returns the resolved plates recorded for given video, one per car
func (db *DB) PlatesForVideo(videoName string) ([]ResolvedPlate, error) {
	rows, err := db.Query("SELECT car_id, plate, frame FROM plates WHERE video = ? ORDER BY car_id", videoName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plates := make([]ResolvedPlate, 0)
	for rows.Next() {
		var p ResolvedPlate
		if err := rows.Scan(&p.CarID, &p.Plate, &p.Frame); err != nil {
			return nil, err
		}
		plates = append(plates, p)
	}

	return plates, rows.Err()
}
