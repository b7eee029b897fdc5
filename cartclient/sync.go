package cartclient

import (
	"context"
	"fmt"
)

// Session is a signed-in user as seen by the client. Token is asked for a
// fresh bearer token on every request.
type Session struct {
	UID   string
	Token TokenSource
}

// Sync keeps the local cart consistent across sign-in and sign-out. The
// server is authoritative on sign-in; nothing is merged.
type Sync struct {
	store  *Store
	remote Remote
}

func NewSync(store *Store, remote Remote) *Sync {
	return &Sync{store: store, remote: remote}
}

// OnAuthStateChanged is called whenever authentication resolves. A nil
// session means signed out. If the server cart cannot be fetched the local
// cart is left as it was and no session is started.
func (s *Sync) OnAuthStateChanged(ctx context.Context, session *Session) error {
	if session == nil || session.Token == nil {
		s.store.EndSession()
		s.store.ClearCart()
		return nil
	}

	token, err := session.Token(ctx)
	if err != nil {
		return fmt.Errorf("get token: %w", err)
	}
	items, err := s.remote.Fetch(ctx, token)
	if err != nil {
		return fmt.Errorf("fetch server cart: %w", err)
	}
	s.store.SetCart(items)
	s.store.StartSession(session.Token)
	return nil
}
