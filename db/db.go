// Package db holds the state shared by every query: the table catalog, the
// console that print writes to, the logger, and the dump formatting settings.
// A Database is built explicitly and passed to each query, so independent
// databases can live side by side in one process.
package db

import (
	"io"
	"log/slog"
	"os"

	"github.com/rizalta/tabledb/catalog"
	"github.com/rizalta/tabledb/codec"
	"github.com/rizalta/tabledb/table"
)

type Database struct {
	catalog     *catalog.Manager
	console     io.Writer
	logger      *slog.Logger
	dumpWidth   int
	maxLineSize int
}

type Option func(*Database)

func WithCatalog(m *catalog.Manager) Option {
	return func(db *Database) {
		if m != nil {
			db.catalog = m
		}
	}
}

// WithConsole sets where print and overview output goes. Defaults to stdout.
func WithConsole(w io.Writer) Option {
	return func(db *Database) {
		if w != nil {
			db.console = w
		}
	}
}

// WithLogger sets the logger. Defaults to a logger that discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(db *Database) {
		if l != nil {
			db.logger = l
		}
	}
}

// WithDumpWidth sets the column width of dump and print. Zero disables padding.
func WithDumpWidth(width int) Option {
	return func(db *Database) {
		if width >= 0 {
			db.dumpWidth = width
		}
	}
}

func WithMaxLineSize(n int) Option {
	return func(db *Database) {
		if n > 0 {
			db.maxLineSize = n
		}
	}
}

func New(opts ...Option) *Database {
	db := &Database{
		catalog:     catalog.NewManager(),
		console:     os.Stdout,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		dumpWidth:   codec.DefaultWidth,
		maxLineSize: codec.DefaultMaxLineSize,
	}

	for _, opt := range opts {
		opt(db)
	}

	return db
}

func (db *Database) Catalog() *catalog.Manager {
	return db.catalog
}

func (db *Database) Console() io.Writer {
	return db.console
}

func (db *Database) Logger() *slog.Logger {
	return db.logger
}

func (db *Database) DumpWidth() int {
	return db.dumpWidth
}

func (db *Database) MaxLineSize() int {
	return db.maxLineSize
}

// Table is a shorthand for Catalog().Get.
func (db *Database) Table(name string) (*table.Table, error) {
	return db.catalog.Get(name)
}

// Encoder returns an encoder using the database's dump width.
func (db *Database) Encoder(w io.Writer) *codec.Encoder {
	return codec.NewEncoder(w, db.dumpWidth)
}

// Decoder returns a decoder using the database's line size limit.
func (db *Database) Decoder(r io.Reader, source string) *codec.Decoder {
	return codec.NewDecoder(r, source, db.maxLineSize)
}
