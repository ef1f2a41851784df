// Package parser holds the statement surface the executors consume.
// Building these statements from SQL text is somebody else's job.
package parser

import "github.com/linpingchuan/peloton/types"

// CreateKind discriminates what a CreateStatement creates.
type CreateKind int

const (
	// CreateKindTable for CREATE TABLE
	CreateKindTable CreateKind = iota
	// CreateKindDatabase for CREATE DATABASE
	CreateKindDatabase
	// CreateKindIndex for CREATE INDEX
	CreateKindIndex
)

// ColumnKind tags one entry of a CREATE TABLE column list.
type ColumnKind int

const (
	// ColumnKindNormal is a plain column definition
	ColumnKindNormal ColumnKind = iota
	// ColumnKindPrimary is a PRIMARY KEY marker
	ColumnKindPrimary
	// ColumnKindForeign is a FOREIGN KEY marker
	ColumnKindForeign
)

// ColumnDefinition is one entry of a CREATE TABLE column list.
// Which fields are meaningful depends on Kind.
type ColumnDefinition struct {
	Kind ColumnKind

	// normal column fields
	Name    string
	Type    types.ValueType
	Varlen  int
	NotNull bool

	// primary key marker fields
	Unique     bool
	PrimaryKey []string

	// foreign key marker fields
	ForeignKeySource []string
	ForeignKeySink   []string
	SinkTable        string
}

// CreateStatement is the parsed form of a CREATE statement.
type CreateStatement struct {
	Kind CreateKind
	Name string

	// table fields.
	// ExistenceGuard makes creation fail when the table already exists.
	ExistenceGuard bool
	Columns        []*ColumnDefinition

	// index fields
	TableName  string
	IndexAttrs []string
	Unique     bool
}
