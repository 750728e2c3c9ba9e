// Package persistence provides file-based data persistence for biome
// catalogues and noise octave presets.
//
// This package handles YAML storage with atomic writes and file locking to
// ensure data integrity and protection against corruption from concurrent
// access or crashes.
//
// # FileStore
//
// FileStore is the primary interface for persisting catalogue data:
//
//	store, err := persistence.NewFileStore("/path/to/data")
//	if err != nil {
//	    return err
//	}
//
//	// Save a biome catalogue
//	err := store.Save("biomes.yaml", catalog)
//
//	// Load a biome catalogue
//	var loaded BiomeCatalog
//	err := store.Load("biomes.yaml", &loaded)
//
// # Atomic Writes
//
// All write operations use atomic file replacement to prevent corruption:
//
//  1. Data is written to a temporary file
//  2. Temporary file is synced to disk
//  3. Temporary file is renamed to target (atomic operation)
//
// This ensures that even if a crash occurs during save, the original file
// remains intact.
//
// # File Locking
//
// FileLock provides cross-process synchronization using flock syscalls:
//
//	lock, err := persistence.NewFileLock("/path/to/file")
//	if err != nil {
//	    return err
//	}
//	defer lock.Close()
//
//	// Blocking lock acquisition
//	if err := lock.Lock(); err != nil {
//	    return err
//	}
//	defer lock.Unlock()
//
//	// Non-blocking lock attempt
//	acquired, err := lock.TryLock()
//	if !acquired {
//	    return errors.New("resource busy")
//	}
//
// # File Operations
//
// Additional file management methods:
//
//	// Check existence
//	if store.Exists("octaves.yaml") {
//	    // File exists
//	}
//
//	// Delete file and associated lock
//	err := store.Delete("old-preset.yaml")
//
//	// List files matching pattern
//	files, err := store.List("presets/*.yaml")
//
// # YAML Serialization
//
// Data is serialized using YAML for human-readable storage. Types should
// use yaml struct tags for field mapping:
//
//	type BiomeEntry struct {
//	    Biome int32   `yaml:"biome"`
//	    TemperatureMin float64 `yaml:"temperature_min"`
//	}
//
// # Thread Safety
//
// FileStore operations are protected by internal mutexes for safe concurrent
// access within a single process. FileLock extends protection across processes.
//
// # Platform Support
//
// File locking uses Unix flock syscalls directly. There are no build tags
// and no implementation for platforms without flock.
package persistence
