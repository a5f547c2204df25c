package database

import (
	"context"
	"fmt"

	"attendance-sf2/src/models"
	"attendance-sf2/src/services/attendance"
	"attendance-sf2/src/services/roster"
)

// Store is what the services need from a backing database.
type Store interface {
	attendance.EventSource
	roster.Source
	roster.Writer
	InsertScanEvents(ctx context.Context, events []models.RawScanEvent) error
}

var (
	_ Store = (*MongoStore)(nil)
	_ Store = (*FirestoreStore)(nil)
)

// Store drivers
const (
	DriverMongo     = "mongo"
	DriverFirestore = "firestore"
)

func ValidateDriver(driver string) error {
	switch driver {
	case DriverMongo, DriverFirestore:
		return nil
	}
	return fmt.Errorf("unknown STORE_DRIVER %q (want %s or %s)", driver, DriverMongo, DriverFirestore)
}
