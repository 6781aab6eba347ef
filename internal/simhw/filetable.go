package simhw

import (
	"sync"

	"github.com/minikern/minikern/internal/proc"
)

// FileTable is an in-memory stand-in for open_files[0..NOFILE]/cwd: a
// labeled set of "open files" with no real file or inode backing them.
type FileTable struct {
	mu   sync.Mutex
	open []string
}

// NewFileTable returns an empty FileTable.
func NewFileTable() *FileTable { return &FileTable{} }

// FileTableAllocator constructs fresh, empty FileTable fakes for the first
// process; every later process gets one via FileTable.Dup instead.
type FileTableAllocator struct{}

func (FileTableAllocator) New() proc.FileTable { return NewFileTable() }

// Open appends a fake open-file label, as a process's own init code might
// open stdin/stdout/stderr before fork.
func (f *FileTable) Open(label string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = append(f.open, label)
}

func (f *FileTable) Dup() proc.FileTable {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := append([]string(nil), f.open...)
	return &FileTable{open: cp}
}

func (f *FileTable) CloseAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = nil
}
