package repository

import "habitd/internal/db"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Storage is satisfied by db.PostgresDB and by the per-transaction handles
// it passes into Transaction callbacks.
//
//counterfeiter:generate -o fake -fake-name Storage habitd/internal/db.Storage
type Storage = db.Storage
