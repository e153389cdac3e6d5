// Command download saves every uploaded playthrough from the database into
// a local folder per user, so they can be replayed by passing the file to
// the game.
package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

func main() {
	DownloadRecordings()
}

func DownloadRecordings() {
	db := ConnectToDbSql()
	defer func(db *sql.DB) { Check(db.Close()) }(db)

	rows, err := db.Query("SELECT " +
		"start_moment, " +
		"user, " +
		"release_version, " +
		"simulation_version, " +
		"input_version, " +
		"id, " +
		"playthrough " +
		"FROM playthroughs " +
		"WHERE playthrough IS NOT NULL")
	Check(err)
	defer func(rows *sql.Rows) { Check(rows.Close()) }(rows)

	dbRows := []dbRow{}
	for rows.Next() {
		row := dbRow{}
		err = rows.Scan(&row.startMoment, &row.user, &row.releaseVersion,
			&row.simulationVersion, &row.inputVersion, &row.id, &row.data)
		Check(err)
		dbRows = append(dbRows, row)
	}
	Check(rows.Err())

	for i := range dbRows {
		dir := dbRows[i].user
		Check(os.MkdirAll(dir, 0755))
		WriteFile(dbRows[i].Filename(), dbRows[i].data)
	}
	log.Info("downloaded playthroughs", "count", len(dbRows))
}

// Filename is <user>/<start moment>.catch-<simulation>-<input>. The versions
// in the extension tell which executables can replay the file.
func (r *dbRow) Filename() string {
	m := r.startMoment
	return fmt.Sprintf("%s/%d%02d%02d-%02d%02d%02d.catch-%d-%d", r.user,
		m.Year(), m.Month(), m.Day(), m.Hour(), m.Minute(), m.Second(),
		r.simulationVersion, r.inputVersion)
}

func ConnectToDbSql() *sql.DB {
	cfg := mysql.Config{
		User:                 os.Getenv("CATCH_DBUSER"),
		Passwd:               os.Getenv("CATCH_DBPASSWORD"),
		Net:                  "tcp",
		Addr:                 os.Getenv("CATCH_DBADDR"),
		DBName:               os.Getenv("CATCH_DBNAME"),
		AllowNativePasswords: true,
		ParseTime:            true,
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	Check(err)
	err = db.Ping()
	Check(err)
	return db
}

func Check(e error) {
	if e != nil {
		log.Error("download failed", "err", e)
		panic(e)
	}
}

type dbRow struct {
	startMoment       time.Time
	user              string
	releaseVersion    int64
	simulationVersion int64
	inputVersion      int64
	id                uuid.UUID
	data              []byte
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}
