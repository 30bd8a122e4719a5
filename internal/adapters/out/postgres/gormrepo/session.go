package gormrepo

import (
	"errors"
	"strconv"

	"gorm.io/gorm"
)

var (
	ErrSessionNotActive = errors.New("session is not active")
	ErrSessionClosed    = errors.New("session is closed")
	ErrSessionAttached  = errors.New("session was already attached")
)

type sessionState int

const (
	sessionUnopened sessionState = iota
	sessionActive
	sessionClosed
)

// Session is the transaction handle a unit of work shares with the
// repositories it hands out. It is created before the transaction exists so
// the repositories can be bound once; Attach and Detach move it through the
// unopened, active and closed states. A Session is not safe for concurrent
// use.
type Session struct {
	tx         *gorm.DB
	state      sessionState
	savepoints int
}

func NewSession() *Session {
	return &Session{}
}

// Attach binds an open transaction. A session accepts exactly one.
func (s *Session) Attach(tx *gorm.DB) error {
	if s.state != sessionUnopened {
		return ErrSessionAttached
	}

	s.tx = tx
	s.state = sessionActive
	return nil
}

// Detach releases the transaction and closes the session for good.
func (s *Session) Detach() {
	s.tx = nil
	s.state = sessionClosed
}

func (s *Session) IsActive() bool {
	return s.state == sessionActive
}

func (s *Session) IsClosed() bool {
	return s.state == sessionClosed
}

// Tx returns the bound transaction or the reason there is none.
func (s *Session) Tx() (*gorm.DB, error) {
	switch s.state {
	case sessionActive:
		return s.tx, nil
	case sessionClosed:
		return nil, ErrSessionClosed
	default:
		return nil, ErrSessionNotActive
	}
}

func (s *Session) nextSavepoint() string {
	s.savepoints++
	return "sp_" + strconv.Itoa(s.savepoints)
}
