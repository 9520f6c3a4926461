// Package models contains GORM database models for infrastructure layer.
// These models handle database persistence and are separated from domain entities
// to maintain Clean Architecture principles. Content tables embed SoftDeleteBase
// so deletes keep the row; submission tables embed Base.
package models
