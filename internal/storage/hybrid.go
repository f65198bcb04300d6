package storage

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/somma-dev/somma/internal/model"
)

// Entry is one ledger row together with its snapshot row ID. IDs are
// minted per snapshot generation: any successful mutation (or cache
// expiry) starts a new generation, and IDs from a superseded
// generation are rejected instead of silently addressing whatever row
// now occupies the old position.
type Entry struct {
	ID int
	Tx model.Transaction
}

const cacheKey = "ledger"

// DefaultCacheTTL bounds how stale a cached Load may be.
const DefaultCacheTTL = 60 * time.Second

// Options configures Hybrid. Remote may be nil when no credentials are
// configured; LocalPath is always required (it is also the file the
// memory state bootstraps into).
type Options struct {
	Remote    RowService
	LocalPath string
	CacheTTL  time.Duration
	Logger    zerolog.Logger
}

// Hybrid selects a backend at startup and transparently downgrades on
// remote failure. Read access is fronted by a short-lived cache,
// invalidated after every successful mutation. Hybrid assumes a single
// active session; there is no cross-process locking (see the project
// design notes).
type Hybrid struct {
	mode   Mode
	remote *RemoteBackend
	local  *LocalBackend
	mem    *MemoryBackend
	data   *gocache.Cache
	log    zerolog.Logger

	nextID int
	ids    map[int]int // snapshot row ID -> current index
}

// Open probes backends in order (remote, local file, memory) and
// returns a Hybrid pinned to the first one available.
func Open(opts Options) *Hybrid {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	h := &Hybrid{
		local:  NewLocal(opts.LocalPath),
		mem:    NewMemory(),
		data:   gocache.New(ttl, 2*ttl),
		log:    opts.Logger,
		nextID: 1,
	}

	if opts.Remote != nil {
		remote := NewRemote(opts.Remote)
		err := remote.Ping()
		if err == nil {
			h.mode = ModeRemote
			h.remote = remote
			h.log.Info().Msg("storage: connected to remote table")
			return h
		}
		h.log.Warn().Err(err).Msg("storage: remote unreachable, falling back")
	}

	if h.local.Exists() {
		h.mode = ModeLocal
		h.log.Info().Str("path", opts.LocalPath).Msg("storage: using local ledger file")
	} else {
		h.mode = ModeMemory
		h.log.Warn().Msg("storage: no remote and no local file, starting in memory")
	}
	return h
}

// Mode returns the current backend state.
func (h *Hybrid) Mode() Mode { return h.mode }

// Status reports the current backend for display.
func (h *Hybrid) Status() Status {
	switch h.mode {
	case ModeRemote:
		return Status{Mode: ModeRemote, Label: "Connected to cloud (remote table)", Severity: SeverityOK, Durable: true}
	case ModeLocal:
		return Status{Mode: ModeLocal, Label: "Offline mode (local CSV)", Severity: SeverityWarning, Durable: false}
	default:
		return Status{Mode: ModeMemory, Label: "Temporary memory (no persistence)", Severity: SeverityError, Durable: false}
	}
}

// Load returns the current ledger snapshot. It never fails: a remote
// error downgrades to local for the rest of the session, a local error
// degrades to an empty table.
func (h *Hybrid) Load() []Entry {
	if cached, ok := h.data.Get(cacheKey); ok {
		return copyEntries(cached.([]Entry))
	}

	var txs []model.Transaction
	switch h.mode {
	case ModeRemote:
		loaded, err := h.remote.Load()
		if err != nil {
			h.downgrade("load", err)
			txs = h.loadLocalBestEffort()
		} else {
			txs = loaded
		}
	case ModeLocal:
		txs = h.loadLocalBestEffort()
	default:
		txs, _ = h.mem.Load()
	}

	entries := h.snapshot(txs)
	h.data.SetDefault(cacheKey, entries)
	return copyEntries(entries)
}

// copyEntries shields the cached snapshot from callers that sort or
// otherwise mutate the returned slice.
func copyEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Transactions returns the current snapshot without row IDs, for
// callers that only aggregate.
func (h *Hybrid) Transactions() []model.Transaction {
	entries := h.Load()
	txs := make([]model.Transaction, len(entries))
	for i, e := range entries {
		txs[i] = e.Tx
	}
	return txs
}

// Append validates and persists a new transaction. In memory mode the
// write creates the local ledger file and transitions to local.
func (h *Hybrid) Append(tx model.Transaction) (bool, string) {
	if err := ValidateTransaction(tx); err != nil {
		return false, err.Error()
	}

	switch h.mode {
	case ModeRemote:
		if err := h.remote.Append(tx); err != nil {
			h.downgrade("append", err)
			// Retry the in-flight write once against the local file.
			if lerr := h.local.Append(tx); lerr != nil {
				return false, fmt.Sprintf("remote failed and local retry failed: %v", lerr)
			}
			h.invalidate()
			return true, "remote unavailable, transaction saved to local file"
		}
	case ModeLocal:
		if err := h.local.Append(tx); err != nil {
			return false, err.Error()
		}
	default:
		// Bootstrap: the first write creates the local ledger file.
		// Only if even that fails does the row stay in memory.
		if err := h.local.Append(tx); err != nil {
			h.log.Warn().Err(err).Msg("storage: cannot create local ledger, keeping transaction in memory")
			if merr := h.mem.Append(tx); merr != nil {
				return false, merr.Error()
			}
			h.invalidate()
			return true, "local file unavailable, transaction kept in memory for this session"
		}
		h.mode = ModeLocal
		h.invalidate()
		return true, "local ledger file created, transaction saved"
	}

	h.invalidate()
	return true, "transaction saved"
}

// Update validates and rewrites the row addressed by a snapshot ID.
func (h *Hybrid) Update(id int, tx model.Transaction) (bool, string) {
	if err := ValidateTransaction(tx); err != nil {
		return false, err.Error()
	}
	if h.mode == ModeMemory {
		return false, "nothing to edit in memory mode"
	}

	index, ok := h.resolve(id)
	if !ok {
		return false, "row no longer current, reload and retry"
	}
	if err := h.active().Update(index, tx); err != nil {
		if h.mode == ModeRemote {
			// The index addresses the remote snapshot; the local file
			// may hold different rows from an earlier offline session,
			// so an index replay against it could hit an unrelated row.
			// Rewrite the full intended table instead.
			snap, ok := h.cachedTransactions()
			h.downgrade("update", err)
			if !ok {
				return false, "remote unavailable, reload and retry"
			}
			snap[index] = tx
			if lerr := h.local.Save(snap); lerr != nil {
				return false, fmt.Sprintf("remote failed and local retry failed: %v", lerr)
			}
			h.invalidate()
			return true, "remote unavailable, ledger saved to local file"
		}
		return false, err.Error()
	}
	h.invalidate()
	return true, "transaction updated"
}

// Delete removes the row addressed by a snapshot ID.
func (h *Hybrid) Delete(id int) (bool, string) {
	if h.mode == ModeMemory {
		return false, "nothing to delete in memory mode"
	}

	index, ok := h.resolve(id)
	if !ok {
		return false, "row no longer current, reload and retry"
	}
	if err := h.active().Delete(index); err != nil {
		if h.mode == ModeRemote {
			// Same divergence hazard as Update: never replay the remote
			// index against the local file.
			snap, ok := h.cachedTransactions()
			h.downgrade("delete", err)
			if !ok {
				return false, "remote unavailable, reload and retry"
			}
			snap = append(snap[:index], snap[index+1:]...)
			if lerr := h.local.Save(snap); lerr != nil {
				return false, fmt.Sprintf("remote failed and local retry failed: %v", lerr)
			}
			h.invalidate()
			return true, "remote unavailable, ledger saved to local file"
		}
		return false, err.Error()
	}
	h.invalidate()
	return true, "transaction deleted"
}

func (h *Hybrid) active() Backend {
	if h.mode == ModeRemote {
		return h.remote
	}
	return h.local
}

// downgrade pins the session to the local backend after a remote
// transport failure. Remote is never re-probed within the session.
func (h *Hybrid) downgrade(op string, err error) {
	h.log.Warn().Err(err).Str("op", op).Msg("storage: remote failure, downgrading to local")
	h.mode = ModeLocal
	h.invalidate()
}

func (h *Hybrid) invalidate() {
	h.data.Delete(cacheKey)
	h.ids = nil
}

// cachedTransactions returns the transactions of the snapshot the
// current row IDs were minted from, or false when the cache entry has
// expired since.
func (h *Hybrid) cachedTransactions() ([]model.Transaction, bool) {
	cached, ok := h.data.Get(cacheKey)
	if !ok {
		return nil, false
	}
	entries := cached.([]Entry)
	txs := make([]model.Transaction, len(entries))
	for i, e := range entries {
		txs[i] = e.Tx
	}
	return txs, true
}

func (h *Hybrid) loadLocalBestEffort() []model.Transaction {
	txs, err := h.local.Load()
	if err != nil {
		h.log.Error().Err(err).Msg("storage: local load failed, serving empty ledger")
		return nil
	}
	return txs
}

func (h *Hybrid) snapshot(txs []model.Transaction) []Entry {
	entries := make([]Entry, len(txs))
	h.ids = make(map[int]int, len(txs))
	for i, tx := range txs {
		id := h.nextID
		h.nextID++
		entries[i] = Entry{ID: id, Tx: tx}
		h.ids[id] = i
	}
	return entries
}

func (h *Hybrid) resolve(id int) (int, bool) {
	if h.ids == nil {
		return 0, false
	}
	index, ok := h.ids[id]
	return index, ok
}
