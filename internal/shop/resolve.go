package shop

import (
	"context"
	"log/slog"
	"slices"
)

// Resolve reconciles the persisted session against the directory. It runs
// once at startup, before any other operation.
//
// Precedence: a directory entry beats the session snapshot, and the session
// snapshot beats nothing. When the directory holds no entry for the
// session's email, the snapshot is written back into the directory as a
// repair seed. That trusts unverified session data; it is the deliberate
// trade for surviving a wiped directory while the session survived.
func (s *Shop) Resolve(ctx context.Context) error {
	snapshot, err := s.session.Restore(ctx)
	if err != nil {
		return err
	}
	if snapshot == nil {
		items, err := s.guest.Load(ctx)
		if err != nil {
			return err
		}
		s.user = nil
		s.cart = items
		slog.Debug("No active session, adopting guest cart", "items", len(items))
		return nil
	}

	entry, err := s.directory.Lookup(ctx, snapshot.Email)
	if err != nil {
		return err
	}
	if entry != nil {
		// Divergent data carried only in the snapshot is discarded.
		if err := s.session.Activate(ctx, entry); err != nil {
			return err
		}
		s.user = entry
		s.cart = slices.Clone(entry.Cart)
		slog.Debug("Session resolved against directory", "email", entry.Email)
		return nil
	}

	slog.Warn("Session account missing from directory, repairing", "email", snapshot.Email)
	if err := s.directory.Upsert(ctx, snapshot); err != nil {
		return err
	}
	s.metrics.SessionRepaired()
	s.user = snapshot
	s.cart = slices.Clone(snapshot.Cart)
	return nil
}
