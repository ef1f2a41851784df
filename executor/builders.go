package executor

import (
	"fmt"

	"github.com/linpingchuan/peloton/catalog"
	"github.com/linpingchuan/peloton/index"
	"github.com/linpingchuan/peloton/parser"
	"github.com/linpingchuan/peloton/types"
)

// buildPrimary materializes a PRIMARY KEY marker: the key columns resolve to
// already-registered columns of the table under construction, the generated
// index and the constraint owning it register together or not at all.
func (e *CreateExecutor) buildPrimary(table *catalog.Table, def *parser.ColumnDefinition, constraintID, indexID *int) (err error) {
	columns := make([]*catalog.Column, 0, len(def.PrimaryKey))
	for _, key := range def.PrimaryKey {
		columns = append(columns, table.GetColumn(key))
	}

	indexName := fmt.Sprintf("INDEX_%d", *indexID)
	*indexID++
	constraintName := fmt.Sprintf("PK_%d", *constraintID)
	*constraintID++

	keyIndex := catalog.NewIndex(indexName, catalog.IndexTypeBTreeMultimap, def.Unique, columns)
	constraint := catalog.NewPrimaryConstraint(constraintName, keyIndex, columns)

	err = table.AddConstraint(constraint)
	if err != nil {
		err = ErrRegistrationFailure
		return
	}
	err = table.AddIndex(keyIndex)
	if err != nil {
		err = ErrRegistrationFailure
		return
	}
	return
}

// buildForeign materializes a FOREIGN KEY marker: source columns resolve from
// the table under construction, sink columns from the already-visible sink
// table validated in the structural pass.
func (e *CreateExecutor) buildForeign(db *catalog.Database, table *catalog.Table, def *parser.ColumnDefinition, constraintID *int) (err error) {
	sinkTable := db.GetTable(def.SinkTable)

	source := make([]*catalog.Column, 0, len(def.ForeignKeySource))
	for _, key := range def.ForeignKeySource {
		source = append(source, table.GetColumn(key))
	}
	sink := make([]*catalog.Column, 0, len(def.ForeignKeySink))
	for _, key := range def.ForeignKeySink {
		sink = append(sink, sinkTable.GetColumn(key))
	}

	constraintName := fmt.Sprintf("FK_%d", *constraintID)
	*constraintID++

	constraint := catalog.NewForeignConstraint(constraintName, sinkTable, source, sink)
	err = table.AddConstraint(constraint)
	if err != nil {
		err = ErrRegistrationFailure
		return
	}
	return
}

// buildColumn materializes a normal column definition: the next sequential
// offset, the physical width per type (CHAR is fixed at width 1, the
// variable-length types take their declared length) and the parallel physical
// descriptor the table schema is assembled from.
func (e *CreateExecutor) buildColumn(table *catalog.Table, def *parser.ColumnDefinition, offset *int, physicalColumns *[]catalog.ColumnInfo) (err error) {
	width := def.Type.Size()
	if def.Type == types.Char {
		width = 1
	}
	if def.Type == types.Varchar || def.Type == types.Varbinary {
		width = def.Varlen
	}

	column := catalog.NewColumn(def.Name, def.Type, *offset, width, def.NotNull)
	*offset++

	*physicalColumns = append(*physicalColumns, catalog.ColumnInfo{
		Type:     def.Type,
		Size:     width,
		Name:     def.Name,
		Nullable: !def.NotNull,
		Varlen:   def.Varlen != 0,
	})

	err = table.AddColumn(column)
	if err != nil {
		err = ErrRegistrationFailure
		return
	}
	return
}

// createIndex realizes a standalone CREATE INDEX against an existing table:
// key attributes resolve to columns, the key schema is the positional
// projection of the table schema in declared attribute order, and the
// physical index attaches to the logical one only after registration.
func (e *CreateExecutor) createIndex(stmt *parser.CreateStatement) (err error) {
	if stmt.TableName == "" {
		panic("create index statement missing table name")
	}

	db := e.database()

	table := db.GetTable(stmt.TableName)
	if table == nil {
		err = ErrUnknownReference
		return
	}
	if len(stmt.IndexAttrs) == 0 {
		err = ErrNoIndexAttributes
		return
	}

	keyColumns := make([]*catalog.Column, 0, len(stmt.IndexAttrs))
	keyOffsets := make([]int, 0, len(stmt.IndexAttrs))
	for _, attr := range stmt.IndexAttrs {
		column := table.GetColumn(attr)
		if column == nil {
			err = ErrUnknownReference
			return
		}
		keyColumns = append(keyColumns, column)
		keyOffsets = append(keyOffsets, column.Offset())
	}

	tupleSchema := table.PhysicalTable().Schema()
	keySchema, err := tupleSchema.Project(keyOffsets)
	if err != nil {
		return
	}

	physicalIndex, err := index.NewIndex(e.kvdb, db.Name()+"/"+stmt.TableName, index.Metadata{
		Name:        stmt.Name,
		Type:        catalog.IndexTypeBTreeMultimap,
		TupleSchema: tupleSchema,
		KeySchema:   keySchema,
		Unique:      stmt.Unique,
	})
	if err != nil {
		return
	}

	logicalIndex := catalog.NewIndex(stmt.Name, catalog.IndexTypeBTreeMultimap, stmt.Unique, keyColumns)
	err = table.AddIndex(logicalIndex)
	if err != nil {
		err = ErrRegistrationFailure
		return
	}
	logicalIndex.SetPhysicalIndex(physicalIndex)
	return
}
