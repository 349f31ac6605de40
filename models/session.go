package models

import "encoding/gob"

func init() {
	// Session stores encode values with gob, which needs concrete types registered
	gob.Register(SessionState{})
}

// SessionState is everything the application keeps in a visitor's session
type SessionState struct {
	Admin bool
	Cart  []CartItem
}

// ClearCart empties the cart while keeping the admin flag
func (s *SessionState) ClearCart() {
	s.Cart = []CartItem{}
}
