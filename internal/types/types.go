// internal/types/types.go
package types

// EntityID — уникальный идентификатор живой сущности (враг, башня, снаряд).
type EntityID uint64
