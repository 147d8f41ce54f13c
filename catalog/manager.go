package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/rizalta/tabledb/table"
)

var (
	ErrAlreadyExists = errors.New("catalog: table already exists")
	ErrTableNotFound = errors.New("catalog: table not found")
	ErrNilTable      = errors.New("catalog: nil table")
)

type entry struct {
	id    uuid.UUID
	table *table.Table
}

type Manager struct {
	mu         sync.RWMutex
	tables     map[string]entry
	fileTables map[string]string
}

func NewManager() *Manager {
	return &Manager{
		tables:     make(map[string]entry),
		fileTables: make(map[string]string),
	}
}

func (m *Manager) CheckAvailable(name string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.checkAvailable(name)
}

func (m *Manager) checkAvailable(name string) error {
	if _, exists := m.tables[name]; exists {
		return fmt.Errorf("error when inserting table %q: %w", name, ErrAlreadyExists)
	}
	return nil
}

// Register adds t under its own name. A rejected table never replaces the
// registered one.
func (m *Manager) Register(t *table.Table) (*table.Table, error) {
	if t == nil {
		return nil, ErrNilTable
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkAvailable(t.Name()); err != nil {
		return nil, err
	}

	m.tables[t.Name()] = entry{id: uuid.New(), table: t}

	return t, nil
}

func (m *Manager) Get(name string) (*table.Table, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.tables[name]
	if !ok {
		return nil, fmt.Errorf("error accessing table %q: %w", name, ErrTableNotFound)
	}

	return e.table, nil
}

func (m *Manager) ID(name string) (uuid.UUID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.tables[name]
	if !ok {
		return uuid.Nil, fmt.Errorf("error accessing table %q: %w", name, ErrTableNotFound)
	}

	return e.id, nil
}

func (m *Manager) Drop(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tables[name]; !ok {
		return fmt.Errorf("error when trying to drop table %q: %w", name, ErrTableNotFound)
	}
	delete(m.tables, name)

	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.tables)
}

// Overview lists every registered table sorted by name.
func (m *Manager) Overview() []TableInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	infos := make([]TableInfo, 0, len(m.tables))
	for name, e := range m.tables {
		infos = append(infos, TableInfo{
			ID:     e.id,
			Name:   name,
			Fields: e.table.FieldCount() + 1,
			Rows:   e.table.Len(),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})

	return infos
}

func (m *Manager) SetFileTableName(path, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fileTables[path] = name
}

// FileTableName returns the table name a dump file declares. The first token
// of the file is read once and cached; an empty file yields "".
func (m *Manager) FileTableName(path string) (string, error) {
	m.mu.RLock()
	name, ok := m.fileTables[path]
	m.mu.RUnlock()
	if ok {
		return name, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("catalog: failed to open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	if scanner.Scan() {
		name = strings.TrimSpace(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("catalog: failed to read %s: %w", path, err)
	}

	m.SetFileTableName(path, name)

	return name, nil
}
