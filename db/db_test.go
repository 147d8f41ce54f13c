package db

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/rizalta/tabledb/catalog"
	"github.com/rizalta/tabledb/codec"
	"github.com/rizalta/tabledb/table"
	"github.com/rizalta/tabledb/tuple"
)

func TestNewDefaults(t *testing.T) {
	db := New()

	if db.Catalog() == nil {
		t.Fatalf("expected a catalog to be created")
	}
	if db.Console() == nil || db.Logger() == nil {
		t.Fatalf("expected console and logger defaults")
	}
	if db.DumpWidth() != codec.DefaultWidth {
		t.Errorf("expected dump width %d, but got %d", codec.DefaultWidth, db.DumpWidth())
	}
	if db.MaxLineSize() != codec.DefaultMaxLineSize {
		t.Errorf("expected max line size %d, but got %d", codec.DefaultMaxLineSize, db.MaxLineSize())
	}
}

func TestOptions(t *testing.T) {
	var console, logs bytes.Buffer
	manager := catalog.NewManager()
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	db := New(
		WithCatalog(manager),
		WithConsole(&console),
		WithLogger(logger),
		WithDumpWidth(0),
		WithMaxLineSize(128),
	)

	if db.Catalog() != manager {
		t.Errorf("expected catalog option to be applied")
	}
	if db.Console() != &console {
		t.Errorf("expected console option to be applied")
	}
	if db.Logger() != logger {
		t.Errorf("expected logger option to be applied")
	}
	if db.DumpWidth() != 0 {
		t.Errorf("expected dump width 0, but got %d", db.DumpWidth())
	}
	if db.MaxLineSize() != 128 {
		t.Errorf("expected max line size 128, but got %d", db.MaxLineSize())
	}

	ignored := New(WithCatalog(nil), WithConsole(nil), WithLogger(nil), WithDumpWidth(-1), WithMaxLineSize(0))
	if ignored.Catalog() == nil || ignored.Console() == nil || ignored.Logger() == nil {
		t.Errorf("expected nil options to be ignored")
	}
	if ignored.DumpWidth() != codec.DefaultWidth || ignored.MaxLineSize() != codec.DefaultMaxLineSize {
		t.Errorf("expected invalid sizes to be ignored")
	}
}

func TestIndependentDatabases(t *testing.T) {
	db1 := New()
	db2 := New()

	tbl, err := table.New("users", []string{"age"})
	if err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if _, err := db1.Catalog().Register(tbl); err != nil {
		t.Fatalf("failed to register: %v", err)
	}

	if _, err := db1.Table("users"); err != nil {
		t.Errorf("expected users in db1: %v", err)
	}
	if _, err := db2.Table("users"); !errors.Is(err, catalog.ErrTableNotFound) {
		t.Errorf("expected users to be absent from db2, but got %v", err)
	}
}

func TestEncoderDecoderUseSettings(t *testing.T) {
	db := New(WithDumpWidth(0), WithMaxLineSize(16))

	tbl, err := table.New("t", []string{"a"})
	if err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if err := tbl.Insert("k", tuple.Tuple{1}); err != nil {
		t.Fatalf("failed to insert: %v", err)
	}

	var buf bytes.Buffer
	if err := db.Encoder(&buf).Encode(tbl); err != nil {
		t.Fatalf("failed to encode: %v", err)
	}
	if buf.String() != "t 2\nKEY a\nk 1\n" {
		t.Errorf("expected unpadded output, but got %q", buf.String())
	}

	long := "t 2\nKEY a\n" + strings.Repeat("x", 32) + " 1\n"
	if _, err := db.Decoder(strings.NewReader(long), "").Decode(); !errors.Is(err, codec.ErrMalformedInput) {
		t.Errorf("expected line limit to apply, but got %v", err)
	}
}
