// Package persistence implements the domain repositories on GORM.
// Every repository maps between domain entities and the row types in models,
// runs its queries with the request context, and reports missing rows as
// apperr.ErrNotFound and unique key clashes as apperr.ErrConflict.
package persistence
