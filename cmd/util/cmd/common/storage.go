package common

import (
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/dgraph-io/badger/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"

	"github.com/onflow/flow-witness/module"
	"github.com/onflow/flow-witness/storage"
	bstorage "github.com/onflow/flow-witness/storage/badger"
	pstorage "github.com/onflow/flow-witness/storage/pebble"
)

// Storages are the databases opened by a command, with the storage on top.
type Storages struct {
	*storage.All
	db        *badger.DB
	witnessDB *pebble.DB
}

// InitBadgerDB opens the chain database. It fails the command on error.
func InitBadgerDB(dir string) *badger.DB {
	opts := badger.
		DefaultOptions(dir).
		WithKeepL0InMemory(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal().Err(err).Str("datadir", dir).Msg("could not open chain database")
	}
	return db
}

// InitStorages opens the chain database in datadir and, if witnessDir is not
// empty, the latest witness database.
func InitStorages(collector module.CacheMetrics, datadir string, witnessDir string) *Storages {
	s := &Storages{db: InitBadgerDB(datadir)}
	s.All = bstorage.InitAll(collector, s.db)

	if witnessDir != "" {
		db, err := pstorage.OpenLatestWitnessDB(witnessDir)
		if err != nil {
			log.Fatal().Err(err).Str("witness_dir", witnessDir).Msg("could not open latest witness database")
		}
		s.witnessDB = db
		s.LatestWitnesses = pstorage.NewLatestWitnesses(db)
	}

	return s
}

// Close closes every opened database.
func (s *Storages) Close() error {
	var errs *multierror.Error
	if s.witnessDB != nil {
		if err := s.witnessDB.Close(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("could not close latest witness database: %w", err))
		}
	}
	if err := s.db.Close(); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("could not close chain database: %w", err))
	}
	return errs.ErrorOrNil()
}
