package mongodb

import (
	"fmt"
	"time"
)

const (
	clientsCollection = "clients"

	fieldID        = "id"
	fieldCreatedAt = "createdAt"

	dbConnectTimeout = 10 * time.Second
	dbPingTimeout    = 5 * time.Second

	errClientNotFound = "client not found"

	errFailedConnectDatabaseFmt = "failed to connect to database: %w"
	errFailedPingDatabaseFmt    = "failed to ping database: %w"

	errFailedCreateClientFmt  = "failed to create client: %w"
	errFailedListClientsFmt   = "failed to list clients: %w"
	errFailedDecodeClientsFmt = "failed to decode clients: %w"
	errFailedUpdateClientFmt  = "failed to update client: %w"
	errFailedDeleteClientFmt  = "failed to delete client: %w"
)

var (
	errFailedConnectDatabase = func(err error) error { return fmt.Errorf(errFailedConnectDatabaseFmt, err) }
	errFailedPingDatabase    = func(err error) error { return fmt.Errorf(errFailedPingDatabaseFmt, err) }
	errFailedCreateClient    = func(err error) error { return fmt.Errorf(errFailedCreateClientFmt, err) }
	errFailedListClients     = func(err error) error { return fmt.Errorf(errFailedListClientsFmt, err) }
	errFailedDecodeClients   = func(err error) error { return fmt.Errorf(errFailedDecodeClientsFmt, err) }
	errFailedUpdateClient    = func(err error) error { return fmt.Errorf(errFailedUpdateClientFmt, err) }
	errFailedDeleteClient    = func(err error) error { return fmt.Errorf(errFailedDeleteClientFmt, err) }
)
