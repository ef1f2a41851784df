// Package executor turns parsed CREATE statements into catalog state and
// backing physical storage objects. Creation is all-or-nothing per statement:
// validation runs unlocked on unshared objects, only the final
// lookup-then-insert into the shared container takes that container's lock.
package executor

import (
	"errors"

	"github.com/linpingchuan/peloton"
	"github.com/linpingchuan/peloton/catalog"
	"github.com/linpingchuan/peloton/parser"
	"github.com/linpingchuan/peloton/storage"
	"github.com/zhiqiangxu/util/logger"
	"go.uber.org/zap"
)

var (
	// ErrNameConflict when the target name already exists
	ErrNameConflict = errors.New("name already exists")
	// ErrUnknownReference when a referenced column, table or sink column does not exist
	ErrUnknownReference = errors.New("unknown reference")
	// ErrDuplicateColumn when a column name repeats within one statement
	ErrDuplicateColumn = errors.New("duplicate column name")
	// ErrRegistrationFailure when a container rejects an otherwise valid object
	ErrRegistrationFailure = errors.New("registration failure")
	// ErrNoIndexAttributes when a CREATE INDEX statement carries no key attributes
	ErrNoIndexAttributes = errors.New("no index attributes")
)

// CreateExecutor realizes CREATE DATABASE, CREATE TABLE and CREATE INDEX
// statements against a catalog and a kv provider for physical storage.
type CreateExecutor struct {
	catalog *catalog.Catalog
	kvdb    peloton.KVDB
	dbName  string
}

// NewCreateExecutor is ctor for CreateExecutor.
// TABLE and INDEX statements run against database dbName, which must already
// exist by the time such a statement is executed.
func NewCreateExecutor(c *catalog.Catalog, kvdb peloton.KVDB, dbName string) *CreateExecutor {
	return &CreateExecutor{
		catalog: c,
		kvdb:    kvdb,
		dbName:  dbName,
	}
}

// Execute runs one parsed CREATE statement and reports whether it succeeded.
// Failures are logged and leave the catalog exactly as it was; a malformed
// statement (missing required fields) is an upstream defect and panics.
func (e *CreateExecutor) Execute(stmt *parser.CreateStatement) bool {
	if stmt == nil || stmt.Name == "" {
		panic("create statement missing required fields")
	}

	switch stmt.Kind {
	case parser.CreateKindDatabase:
		err := e.createDatabase(stmt)
		if err != nil {
			logger.Instance().Error("create database", zap.String("database", stmt.Name), zap.Error(err))
			return false
		}
		logger.Instance().Info("created database", zap.String("database", stmt.Name))
		return true

	case parser.CreateKindTable:
		err := e.createTable(stmt)
		if err != nil {
			logger.Instance().Error("create table", zap.String("table", stmt.Name), zap.Error(err))
			return false
		}
		logger.Instance().Info("created table", zap.String("table", stmt.Name))
		return true

	case parser.CreateKindIndex:
		err := e.createIndex(stmt)
		if err != nil {
			logger.Instance().Error("create index",
				zap.String("index", stmt.Name), zap.String("table", stmt.TableName), zap.Error(err))
			return false
		}
		logger.Instance().Info("created index",
			zap.String("index", stmt.Name), zap.String("table", stmt.TableName))
		return true

	default:
		logger.Instance().Error("unknown create statement kind", zap.Int("kind", int(stmt.Kind)))
		return false
	}
}

// database resolves the executor's target database; its absence is an
// upstream wiring defect, not a user error.
func (e *CreateExecutor) database() *catalog.Database {
	db := e.catalog.GetDatabase(e.dbName)
	if db == nil {
		panic("target database not in catalog: " + e.dbName)
	}
	return db
}

func (e *CreateExecutor) createDatabase(stmt *parser.CreateStatement) (err error) {
	// fast reject; the authoritative check is inside AddDatabase
	if e.catalog.GetDatabase(stmt.Name) != nil {
		err = ErrNameConflict
		return
	}

	database := catalog.NewDatabase(stmt.Name)
	err = e.catalog.AddDatabase(database)
	if err != nil {
		err = ErrRegistrationFailure
		return
	}
	return
}

func (e *CreateExecutor) createTable(stmt *parser.CreateStatement) (err error) {
	if stmt.Columns == nil {
		panic("create table statement missing column definitions")
	}

	db := e.database()

	err = e.validateCreateTable(db, stmt)
	if err != nil {
		return
	}

	if existing := db.GetTable(stmt.Name); existing != nil && stmt.ExistenceGuard {
		err = ErrNameConflict
		return
	}

	// construction happens on an unshared table; any failure just drops it
	table := catalog.NewTable(stmt.Name)

	var (
		physicalColumns []catalog.ColumnInfo
		offset          int
		constraintID    int
		indexID         int
	)

	for _, def := range stmt.Columns {
		switch def.Kind {
		case parser.ColumnKindPrimary:
			err = e.buildPrimary(table, def, &constraintID, &indexID)
		case parser.ColumnKindForeign:
			err = e.buildForeign(db, table, def, &constraintID)
		case parser.ColumnKindNormal:
			err = e.buildColumn(table, def, &offset, &physicalColumns)
		default:
			panic("unknown column definition kind")
		}
		if err != nil {
			return
		}
	}

	schema := catalog.NewSchema(physicalColumns)
	physicalTable, err := storage.NewTable(e.kvdb, db.Name()+"/"+stmt.Name, schema)
	if err != nil {
		return
	}
	err = table.SetPhysicalTable(physicalTable)
	if err != nil {
		physicalTable.Close()
		err = ErrRegistrationFailure
		return
	}

	err = db.AddTable(table)
	if err != nil {
		physicalTable.Close()
		err = ErrRegistrationFailure
		return
	}
	return
}

// validateCreateTable is the structural pass: it walks the column definitions
// in order, mutating nothing, and rejects forward references, unknown sink
// tables/columns and duplicate column names.
func (e *CreateExecutor) validateCreateTable(db *catalog.Database, stmt *parser.CreateStatement) (err error) {
	seen := make(map[string]struct{}, len(stmt.Columns))

	for _, def := range stmt.Columns {
		switch def.Kind {
		case parser.ColumnKindPrimary:
			if len(def.PrimaryKey) == 0 {
				panic("primary key marker without key columns")
			}
			for _, key := range def.PrimaryKey {
				if _, ok := seen[key]; !ok {
					err = ErrUnknownReference
					return
				}
			}

		case parser.ColumnKindForeign:
			if len(def.ForeignKeySource) == 0 || len(def.ForeignKeySink) == 0 {
				panic("foreign key marker without key columns")
			}
			for _, key := range def.ForeignKeySource {
				if _, ok := seen[key]; !ok {
					err = ErrUnknownReference
					return
				}
			}
			sinkTable := db.GetTable(def.SinkTable)
			if sinkTable == nil {
				err = ErrUnknownReference
				return
			}
			for _, key := range def.ForeignKeySink {
				if sinkTable.GetColumn(key) == nil {
					err = ErrUnknownReference
					return
				}
			}

		case parser.ColumnKindNormal:
			if def.Name == "" {
				panic("column definition missing name")
			}
			if _, ok := seen[def.Name]; ok {
				err = ErrDuplicateColumn
				return
			}
			seen[def.Name] = struct{}{}

		default:
			panic("unknown column definition kind")
		}
	}
	return
}
